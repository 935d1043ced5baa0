package models

import (
	"testing"
	"time"
)

func TestSubscriptionActive(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name string
		user User
		want bool
	}{
		{"premium with future expiry", User{IsPremium: true, SubscriptionExpiresAt: &future}, true},
		// stale flag: expiry passed but downgrade has not run yet
		{"premium expired yesterday", User{IsPremium: true, SubscriptionExpiresAt: &past}, false},
		{"premium without expiry", User{IsPremium: true}, false},
		{"not premium", User{SubscriptionExpiresAt: &future}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.SubscriptionActive(now); got != tc.want {
				t.Errorf("SubscriptionActive = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasPaymentReference(t *testing.T) {
	u := User{PaymentHistory: []PaymentRecord{{Reference: "sw-abc"}}}
	if !u.HasPaymentReference("sw-abc") {
		t.Error("expected existing reference to be found")
	}
	if u.HasPaymentReference("sw-xyz") {
		t.Error("unexpected match for unseen reference")
	}
}
