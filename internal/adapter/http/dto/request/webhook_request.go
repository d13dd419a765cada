package request

import (
	"encoding/json"
	"fmt"
	"strings"

	"subscription_billing/internal/domain/entities"
)

// WebhookNotification is the processor's server-to-server payload:
// { "type": "payment", "data": { "id": <paymentId> } }.
//
// Only type "payment" yields a candidate event. The id arrives as a string or
// a number depending on the processor's delivery channel, so Data.ID is kept
// loose and resolved through PaymentID().

type WebhookNotification struct {
	Type   string      `json:"type"`
	Action string      `json:"action,omitempty"`
	Data   WebhookData `json:"data"`
}

type WebhookData struct {
	ID any `json:"id"`
}

func (n WebhookNotification) IsPayment() bool {
	return n.Type == "payment"
}

func (n WebhookNotification) PaymentID() string {
	switch v := n.Data.ID.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%.0f", v), ".")
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// ToPaymentEvent builds the canonical event for the notification path. The
// round-trip identifiers come from the notification URL's query string; the
// status fetcher later fills status/amount/currency and can backfill the
// identifiers from preference metadata.
func (n WebhookNotification) ToPaymentEvent(userID, planID, userEmail string) entities.PaymentEvent {
	return entities.PaymentEvent{
		UserID:    strings.TrimSpace(userID),
		PlanID:    strings.TrimSpace(planID),
		UserEmail: strings.TrimSpace(userEmail),
		PaymentID: n.PaymentID(),
		Source:    entities.EventSourceNotification,
	}
}
