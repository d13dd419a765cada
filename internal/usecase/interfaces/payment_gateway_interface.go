package interfaces

import (
	"context"
	"subscription_billing/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment processor (Mercado Pago).
//
// CreatePreference opens a checkout for one plan. GetPayment is the status
// fetcher: one outbound call, no retries; a failure or timeout surfaces as an
// error and callers fall back to plan defaults rather than aborting.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, pref entities.CheckoutPreference) (entities.CheckoutSession, error)
	GetPayment(ctx context.Context, paymentID string) (entities.PaymentDetails, error)
}
