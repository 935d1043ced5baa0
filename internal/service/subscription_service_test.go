package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scamwise-backend/internal/models"
)

func TestPlanExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	monthly, err := planExpiry(models.PlanMonthly, now)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if want := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC); !monthly.Equal(want) {
		t.Errorf("monthly expiry = %v, want %v", monthly, want)
	}

	annual, err := planExpiry(models.PlanAnnual, now)
	if err != nil {
		t.Fatalf("annual: %v", err)
	}
	if want := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC); !annual.Equal(want) {
		t.Errorf("annual expiry = %v, want %v", annual, want)
	}

	if _, err := planExpiry("lifetime", now); err != models.ErrInvalidPlan {
		t.Errorf("expected ErrInvalidPlan, got %v", err)
	}
}

func TestLazyDowngrade(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	user := models.User{
		IsPremium:             true,
		SubscriptionPlan:      models.PlanMonthly,
		SubscriptionExpiresAt: &past,
	}
	if !user.ApplyLazyDowngrade(now) {
		t.Fatal("expired premium user should be downgraded")
	}
	if user.IsPremium {
		t.Error("isPremium should be cleared")
	}
	if user.SubscriptionPlan != models.PlanNone {
		t.Errorf("plan should reset to none, got %q", user.SubscriptionPlan)
	}
	if user.SubscriptionExpiresAt != nil {
		t.Error("expiry should be cleared")
	}

	// idempotent second call
	if user.ApplyLazyDowngrade(now) {
		t.Error("second downgrade should report no change")
	}

	future := now.Add(time.Hour)
	active := models.User{IsPremium: true, SubscriptionPlan: models.PlanAnnual, SubscriptionExpiresAt: &future}
	if active.ApplyLazyDowngrade(now) {
		t.Error("active subscription must not be downgraded")
	}
}

func verifyService(t *testing.T, data string) *SubscriptionService {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":` + data + `}`))
	}))
	t.Cleanup(server.Close)
	return NewSubscriptionService(nil, NewPaystackClient("sk_test_secret", server.URL), nil, nil, "")
}

func TestVerifyPaymentRejectsAnotherUsersReference(t *testing.T) {
	// A successful transaction paid by userA, quoted by userB. One payment
	// must not activate two accounts.
	subs := verifyService(t, `{"reference":"sw-ref-1","status":"success","amount":250000,"metadata":{"plan":"monthly","user_id":"userA"},"customer":{"email":"a@b.c"}}`)

	_, err := subs.VerifyPayment(context.Background(), "userB", "sw-ref-1")
	if err != models.ErrPaymentMismatch {
		t.Errorf("expected ErrPaymentMismatch for another user's reference, got %v", err)
	}
}

func TestVerifyPaymentRejectsUnsuccessfulTransaction(t *testing.T) {
	subs := verifyService(t, `{"reference":"sw-ref-2","status":"abandoned","amount":250000,"metadata":{"plan":"monthly","user_id":"userA"},"customer":{"email":"a@b.c"}}`)

	_, err := subs.VerifyPayment(context.Background(), "userA", "sw-ref-2")
	if err != models.ErrPaymentNotVerified {
		t.Errorf("expected ErrPaymentNotVerified, got %v", err)
	}
}
