package entities

import "time"

// SubscriptionStatus represents the subscription lifecycle. Only activation
// is modeled; deactivation is out of scope for the billing flow.

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
)

// Subscription is the durable per-user subscription document.
//
// Storage model (DynamoDB):
//   - PK: user_id (one document per user)
//
// Writes are create-or-merge: a completed payment overwrites the fields below
// but preserves attributes it does not name. Last writer wins by arrival
// order. PaymentID references the last activating PaymentRecord.
type Subscription struct {
	UserID    string             `json:"user_id"`
	PlanID    string             `json:"plan_id"`
	PlanName  string             `json:"plan_name"`
	Status    SubscriptionStatus `json:"status"`
	PaymentID string             `json:"payment_id"`
	Amount    float64            `json:"amount"`
	Currency  string             `json:"currency"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
