package entities

import "time"

// PaymentStatus is the system's internal (canonical) payment status,
// distinct from the processor's raw vocabulary.

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
)

// CanonicalStatus maps the processor's raw status into the internal one:
// "approved" becomes "completed", an absent status defaults to "pending",
// any other non-empty status passes through unchanged.
func CanonicalStatus(raw string) PaymentStatus {
	switch raw {
	case "approved":
		return PaymentStatusCompleted
	case "":
		return PaymentStatusPending
	default:
		return PaymentStatus(raw)
	}
}

// PaymentRecord is the durable, append-only audit entry for one accepted
// PaymentEvent. Records are immutable once written; redelivered signals
// append new records rather than updating old ones.
//
// Storage model (DynamoDB):
//   - PK: id (uuid, assigned at write time)
//   - GSI user_id-index (PK: user_id)
//   - GSI payment_id-index (PK: payment_id), used by the optional dedup check
type PaymentRecord struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	PlanID          string        `json:"plan_id"`
	PlanName        string        `json:"plan_name"`
	UserEmail       string        `json:"user_email,omitempty"`
	PaymentID       string        `json:"payment_id,omitempty"`
	Status          PaymentStatus `json:"status"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	MerchantOrderID string        `json:"merchant_order_id,omitempty"`
	PreferenceID    string        `json:"preference_id,omitempty"`
	Source          EventSource   `json:"source"`
	CreatedAt       time.Time     `json:"created_at"`
}
