package interfaces

import (
	"context"
	"subscription_billing/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription.
//
// Upsert is create-or-merge by user_id: fields named by the subscription are
// overwritten, everything else on the document is preserved. The store
// serializes per-document writes; there is no cross-document coordination
// with the payments table.

type ISubscriptionRepository interface {
	Upsert(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	GetByUserID(ctx context.Context, userID string) (entities.Subscription, error)
}
