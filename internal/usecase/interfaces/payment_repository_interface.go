package interfaces

import (
	"context"
	"subscription_billing/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for PaymentRecord.
//
// Create appends; records are never updated in place. GetByPaymentID resolves
// the processor-assigned id through the payment_id-index and backs the
// optional dedup check.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.PaymentRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.PaymentRecord, error)
}
