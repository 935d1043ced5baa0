package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	PlanMonthly = "monthly"
	PlanAnnual  = "annual"
	PlanNone    = "none"
)

type PaymentRecord struct {
	Reference string    `bson:"reference" json:"reference"`
	Amount    float64   `bson:"amount" json:"amount"`
	Plan      string    `bson:"plan" json:"plan"`
	PaidAt    time.Time `bson:"paid_at" json:"paidAt"`
}

type User struct {
	ID                    string          `bson:"_id,omitempty" json:"id"`
	Name                  string          `bson:"name" json:"name"`
	Email                 string          `bson:"email" json:"email"`
	PasswordHash          string          `bson:"password_hash" json:"-"`
	Role                  string          `bson:"role" json:"role"`
	IsPremium             bool            `bson:"is_premium" json:"isPremium"`
	SubscriptionPlan      string          `bson:"subscription_plan" json:"subscriptionPlan"`
	SubscriptionStartedAt *time.Time      `bson:"subscription_started_at,omitempty" json:"subscriptionStartedAt,omitempty"`
	SubscriptionExpiresAt *time.Time      `bson:"subscription_expires_at,omitempty" json:"subscriptionExpiresAt,omitempty"`
	LastPaymentAmount     float64         `bson:"last_payment_amount" json:"lastPaymentAmount"`
	PaymentHistory        []PaymentRecord `bson:"payment_history" json:"paymentHistory"`
	CreatedAt             time.Time       `bson:"created_at" json:"createdAt"`
}

// SubscriptionActive reports whether the subscription is active at the given
// instant. The stored is_premium flag is never trusted on its own: a premium
// user whose expiry date has passed is logically expired even before the
// lazy downgrade writes the flag back.
func (u *User) SubscriptionActive(now time.Time) bool {
	return u.IsPremium && u.SubscriptionExpiresAt != nil && u.SubscriptionExpiresAt.After(now)
}

// ApplyLazyDowngrade clears the premium fields of a logically expired user
// and reports whether anything changed. Pure struct mutation; persisting the
// change is the caller's job.
func (u *User) ApplyLazyDowngrade(now time.Time) bool {
	if !u.IsPremium || u.SubscriptionActive(now) {
		return false
	}
	u.IsPremium = false
	u.SubscriptionPlan = PlanNone
	u.SubscriptionExpiresAt = nil
	return true
}

// HasPaymentReference reports whether the reference already appears in the
// payment history. Used to guard premium activation against replays.
func (u *User) HasPaymentReference(reference string) bool {
	for _, p := range u.PaymentHistory {
		if p.Reference == reference {
			return true
		}
	}
	return false
}
