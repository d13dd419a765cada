package response

import (
	"time"

	"subscription_billing/internal/domain/entities"
)

type SubscriptionResponse struct {
	UserID    string    `json:"user_id"`
	PlanID    string    `json:"plan_id"`
	PlanName  string    `json:"plan_name"`
	Status    string    `json:"status"`
	PaymentID string    `json:"payment_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromSubscription(s entities.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		UserID:    s.UserID,
		PlanID:    s.PlanID,
		PlanName:  s.PlanName,
		Status:    string(s.Status),
		PaymentID: s.PaymentID,
		Amount:    s.Amount,
		Currency:  s.Currency,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
