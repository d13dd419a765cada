package request

import (
	"errors"
	"strings"

	"subscription_billing/internal/domain/entities"
)

var (
	ErrMissingRedirectUserID    = errors.New("missing user_id")
	ErrMissingRedirectPlanID    = errors.New("missing plan_id")
	ErrMissingRedirectUserEmail = errors.New("missing user_email")
)

// unsetPlaceholder is the stringified-undefined value URL templating leaks
// when a round-trip parameter was never set.
const unsetPlaceholder = "undefined"

func isUnset(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == unsetPlaceholder
}

// RedirectQuery captures the browser-return query string. The processor may
// deliver the payment identifier under payment_id or collection_id and the
// status under status or collection_status; the Resolve* accessors apply the
// fixed precedence (primary name first, fallback second).

type RedirectQuery struct {
	PaymentID        string `form:"payment_id"`
	CollectionID     string `form:"collection_id"`
	Status           string `form:"status"`
	CollectionStatus string `form:"collection_status"`
	UserID           string `form:"user_id"`
	PlanID           string `form:"plan_id"`
	UserEmail        string `form:"user_email"`
	MerchantOrderID  string `form:"merchant_order_id"`
	PreferenceID     string `form:"preference_id"`
}

func (q RedirectQuery) ResolvePaymentID() string {
	if v := strings.TrimSpace(q.PaymentID); v != "" {
		return v
	}
	return strings.TrimSpace(q.CollectionID)
}

func (q RedirectQuery) ResolveStatus() string {
	if v := strings.TrimSpace(q.Status); v != "" {
		return v
	}
	return strings.TrimSpace(q.CollectionStatus)
}

func (q RedirectQuery) Validate() error {
	if isUnset(q.UserID) {
		return ErrMissingRedirectUserID
	}
	if isUnset(q.PlanID) {
		return ErrMissingRedirectPlanID
	}
	if strings.TrimSpace(q.UserEmail) == "" {
		return ErrMissingRedirectUserEmail
	}
	return nil
}

func (q RedirectQuery) ToPaymentEvent() entities.PaymentEvent {
	return entities.PaymentEvent{
		UserID:          strings.TrimSpace(q.UserID),
		PlanID:          strings.TrimSpace(q.PlanID),
		UserEmail:       strings.TrimSpace(q.UserEmail),
		PaymentID:       q.ResolvePaymentID(),
		Status:          q.ResolveStatus(),
		MerchantOrderID: strings.TrimSpace(q.MerchantOrderID),
		PreferenceID:    strings.TrimSpace(q.PreferenceID),
		Source:          entities.EventSourceRedirect,
	}
}
