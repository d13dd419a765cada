package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

func TestPaymentDetails(t *testing.T) {
	t.Run("maps processor fields", func(t *testing.T) {
		resp := &payment.Response{
			Status:            "approved",
			TransactionAmount: 5999,
			CurrencyID:        "ARS",
			Order:             payment.OrderResponse{ID: "mo-1", Type: "mercadopago"},
			Metadata:          map[string]any{"user_id": "u1", "plan_id": "premium", "attempt": 2},
		}

		details := paymentDetails(resp)
		if details.Status != "approved" || details.Amount != 5999 || details.Currency != "ARS" {
			t.Fatalf("unexpected details %+v", details)
		}
		if details.MerchantOrderID != "mo-1" {
			t.Fatalf("unexpected merchant order id %q", details.MerchantOrderID)
		}
		if details.Metadata["user_id"] != "u1" || details.Metadata["attempt"] != "2" {
			t.Fatalf("unexpected metadata %+v", details.Metadata)
		}
	})

	t.Run("empty order id leaves merchant order unset", func(t *testing.T) {
		details := paymentDetails(&payment.Response{Status: "pending"})
		if details.MerchantOrderID != "" {
			t.Fatalf("expected empty merchant order id, got %q", details.MerchantOrderID)
		}
		if details.Metadata != nil {
			t.Fatalf("expected nil metadata, got %+v", details.Metadata)
		}
	})
}

func TestMercadoPagoGateway_GetPayment_InvalidID(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	g, err := NewMercadoPagoGateway("TEST-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = g.GetPayment(context.Background(), "not-a-number")
	if !errors.Is(err, ErrInvalidPaymentID) {
		t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
	}
}

func TestMercadoPagoGateway_MissingToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	details, err := g.GetPayment(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Status != "approved" || details.Currency != "ARS" {
		t.Fatalf("unexpected mock details %+v", details)
	}
}
