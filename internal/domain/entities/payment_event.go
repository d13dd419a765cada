package entities

// EventSource tags where a payment signal entered the system. It is kept for
// audit only and never drives authorization decisions.

type EventSource string

const (
	EventSourceNotification EventSource = "notification"
	EventSourceRedirect     EventSource = "redirect"
)

// PaymentEvent is the canonical in-memory form of one inbound payment signal.
//
// Both receivers (processor webhook and browser redirect) normalize into this
// value before reconciliation. UserID and PlanID travel as round-trip
// parameters set at preference-creation time; they are trusted but not
// cryptographically verified.
type PaymentEvent struct {
	UserID          string      `json:"user_id"`
	PlanID          string      `json:"plan_id"`
	UserEmail       string      `json:"user_email,omitempty"`
	PaymentID       string      `json:"payment_id,omitempty"`
	Status          string      `json:"status,omitempty"`
	Amount          float64     `json:"amount,omitempty"`
	Currency        string      `json:"currency,omitempty"`
	MerchantOrderID string      `json:"merchant_order_id,omitempty"`
	PreferenceID    string      `json:"preference_id,omitempty"`
	Source          EventSource `json:"source"`
}

// PaymentDetails is the processor's authoritative view of one payment, as
// returned by the status fetcher. Metadata echoes the key/value pairs set on
// the preference at checkout time.
type PaymentDetails struct {
	Status          string
	Amount          float64
	Currency        string
	MerchantOrderID string
	Metadata        map[string]string
}
