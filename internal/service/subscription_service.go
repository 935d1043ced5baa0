package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"scamwise-backend/internal/event"
	"scamwise-backend/internal/models"
	"scamwise-backend/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Plan prices in kobo, the provider's smallest currency unit.
var planAmounts = map[string]int64{
	models.PlanMonthly: 250000,
	models.PlanAnnual:  2400000,
}

type SubscriptionService struct {
	Users     *repository.UserRepository
	Paystack  *PaystackClient
	Email     *EmailService
	Publisher Publisher
	Callback  string
}

// Publisher is the slice of the event publisher the services need; nil means
// events are disabled.
type Publisher interface {
	Publish(eventType string, payload interface{}) error
}

func NewSubscriptionService(users *repository.UserRepository, paystack *PaystackClient, email *EmailService, publisher Publisher, callbackURL string) *SubscriptionService {
	return &SubscriptionService{
		Users:     users,
		Paystack:  paystack,
		Email:     email,
		Publisher: publisher,
		Callback:  callbackURL,
	}
}

type SubscriptionStatus struct {
	IsPremium             bool       `json:"isPremium"`
	SubscriptionPlan      string     `json:"subscriptionPlan"`
	SubscriptionExpiresAt *time.Time `json:"subscriptionExpiresAt,omitempty"`
}

// Status reports the user's subscription, after applying the lazy downgrade.
// There is no background sweep: an expired premium flag is corrected here,
// the next time anything asks.
func (s *SubscriptionService) Status(ctx context.Context, userID string) (*SubscriptionStatus, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.CheckAndDowngrade(ctx, user); err != nil {
		return nil, err
	}
	return &SubscriptionStatus{
		IsPremium:             user.IsPremium,
		SubscriptionPlan:      user.SubscriptionPlan,
		SubscriptionExpiresAt: user.SubscriptionExpiresAt,
	}, nil
}

// CheckAndDowngrade clears the premium fields of a logically expired user and
// persists the change. No-op for active or non-premium users.
func (s *SubscriptionService) CheckAndDowngrade(ctx context.Context, user *models.User) error {
	if !user.ApplyLazyDowngrade(time.Now()) {
		return nil
	}
	return s.Users.Save(ctx, user)
}

// InitializePayment creates a provider checkout session for the chosen plan
// and returns the reference plus the URL the client should redirect to.
func (s *SubscriptionService) InitializePayment(ctx context.Context, userID, plan string) (reference, authorizationURL string, err error) {
	amount, ok := planAmounts[plan]
	if !ok {
		return "", "", models.ErrInvalidPlan
	}
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	reference = "sw-" + uuid.NewString()
	authorizationURL, err = s.Paystack.InitializeTransaction(ctx, user.Email, plan, user.ID, reference, s.Callback, amount)
	if err != nil {
		return "", "", err
	}
	return reference, authorizationURL, nil
}

// VerifyPayment confirms a transaction with the provider and activates
// premium when it succeeded.
func (s *SubscriptionService) VerifyPayment(ctx context.Context, userID, reference string) (*SubscriptionStatus, error) {
	tx, err := s.Paystack.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, err
	}
	if tx.Status != "success" {
		return nil, models.ErrPaymentNotVerified
	}
	// The transaction carries the paying user's id in its metadata. Anyone
	// else quoting the same reference must not get premium on that payment.
	if tx.Metadata.UserID != userID {
		return nil, models.ErrPaymentMismatch
	}
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	plan := tx.Metadata.Plan
	if err := s.ActivatePremium(ctx, user, plan, reference, tx.Amount/100); err != nil {
		return nil, err
	}
	return &SubscriptionStatus{
		IsPremium:             user.IsPremium,
		SubscriptionPlan:      user.SubscriptionPlan,
		SubscriptionExpiresAt: user.SubscriptionExpiresAt,
	}, nil
}

// ActivatePremium grants the plan's entitlement and appends the payment to
// the history. A reference already present in the history is rejected so a
// replayed verification cannot extend the expiry twice.
func (s *SubscriptionService) ActivatePremium(ctx context.Context, user *models.User, plan, reference string, amount float64) error {
	if user.HasPaymentReference(reference) {
		return models.ErrDuplicateReference
	}

	now := time.Now()
	expires, err := planExpiry(plan, now)
	if err != nil {
		return err
	}

	user.IsPremium = true
	user.SubscriptionPlan = plan
	user.SubscriptionStartedAt = &now
	user.SubscriptionExpiresAt = &expires
	user.LastPaymentAmount = amount
	user.PaymentHistory = append(user.PaymentHistory, models.PaymentRecord{
		Reference: reference,
		Amount:    amount,
		Plan:      plan,
		PaidAt:    now,
	})
	if err := s.Users.Save(ctx, user); err != nil {
		return err
	}

	if s.Publisher != nil {
		s.Publisher.Publish(event.PaymentCompleted, map[string]interface{}{
			"user_id":   user.ID,
			"plan":      plan,
			"reference": reference,
		})
	}
	if s.Email != nil {
		go func() {
			subject := "Welcome to ScamWise Premium"
			body := fmt.Sprintf("Hi %s,\n\nYour %s subscription is active until %s.\n", user.Name, plan, expires.Format("2 January 2006"))
			if err := s.Email.SendEmail(subject, body, []string{user.Email}); err != nil {
				log.Printf("subscription email to %s failed: %v", user.Email, err)
			}
		}()
	}
	return nil
}

// planExpiry computes when a subscription bought at now runs out.
func planExpiry(plan string, now time.Time) (time.Time, error) {
	switch plan {
	case models.PlanMonthly:
		return now.AddDate(0, 1, 0), nil
	case models.PlanAnnual:
		return now.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, models.ErrInvalidPlan
	}
}

// CancelSubscription removes the premium entitlement immediately.
func (s *SubscriptionService) CancelSubscription(ctx context.Context, userID string) error {
	if _, err := s.Users.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.Users.Update(ctx, userID, bson.M{
		"is_premium":              false,
		"subscription_plan":       models.PlanNone,
		"subscription_expires_at": nil,
	})
}

type webhookEvent struct {
	Event string              `json:"event"`
	Data  PaystackTransaction `json:"data"`
}

// HandleWebhook processes a provider webhook whose signature has already been
// checked by the handler. Only charge.success is acted on; a reference seen
// before is treated as already processed.
func (s *SubscriptionService) HandleWebhook(ctx context.Context, body []byte) error {
	var evt webhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return err
	}
	if evt.Event != "charge.success" {
		return nil
	}

	user, err := s.Users.FindByEmail(ctx, evt.Data.Customer.Email)
	if err != nil {
		return err
	}
	err = s.ActivatePremium(ctx, user, evt.Data.Metadata.Plan, evt.Data.Reference, evt.Data.Amount/100)
	if err == models.ErrDuplicateReference {
		log.Printf("webhook replay for reference %s ignored", evt.Data.Reference)
		return nil
	}
	return err
}
