package response

import (
	"time"

	"subscription_billing/internal/domain/entities"
)

type PaymentRecordResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	PlanID          string    `json:"plan_id"`
	PlanName        string    `json:"plan_name"`
	UserEmail       string    `json:"user_email,omitempty"`
	PaymentID       string    `json:"payment_id,omitempty"`
	Status          string    `json:"status"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	MerchantOrderID string    `json:"merchant_order_id,omitempty"`
	PreferenceID    string    `json:"preference_id,omitempty"`
	Source          string    `json:"source"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		PlanID:          p.PlanID,
		PlanName:        p.PlanName,
		UserEmail:       p.UserEmail,
		PaymentID:       p.PaymentID,
		Status:          string(p.Status),
		Amount:          p.Amount,
		Currency:        p.Currency,
		MerchantOrderID: p.MerchantOrderID,
		PreferenceID:    p.PreferenceID,
		Source:          string(p.Source),
		CreatedAt:       p.CreatedAt,
	}
}

func FromPaymentRecords(list []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPaymentRecord(p))
	}
	return out
}
