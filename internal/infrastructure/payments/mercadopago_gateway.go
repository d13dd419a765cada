package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"subscription_billing/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidPaymentID = errors.New("invalid mercado pago payment id")

const defaultLookupTimeout = 5 * time.Second

type MercadoPagoGateway struct {
	paymentClient    payment.Client
	preferenceClient preference.Client
	lookupTimeout    time.Duration
	mockMode         bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payments][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, lookupTimeout: defaultLookupTimeout}, nil
	}

	if accessToken == "" {
		log.Printf("[payments][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payments][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payments][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		paymentClient:    payment.NewClient(cfg),
		preferenceClient: preference.NewClient(cfg),
		lookupTimeout:    lookupTimeoutFromEnv(),
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, pref entities.CheckoutPreference) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payments][gateway] mock preference created id=%s title=%q", id, pref.Title)
		return entities.CheckoutSession{ID: id, InitPoint: "https://sandbox.mercadopago.local/checkout/" + id}, nil
	}
	if g == nil || g.preferenceClient == nil {
		log.Printf("[payments][gateway] gateway not configured")
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      pref.Title,
				UnitPrice:  pref.Price,
				Quantity:   pref.Quantity,
				CurrencyID: pref.Currency,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: pref.BackURLs.Success,
			Pending: pref.BackURLs.Pending,
			Failure: pref.BackURLs.Failure,
		},
		AutoReturn:        "approved",
		NotificationURL:   pref.NotificationURL,
		ExternalReference: pref.ExternalReference,
		Metadata:          pref.Metadata,
	}

	log.Printf("[payments][gateway] preference create start title=%q price=%.2f", pref.Title, pref.Price)
	resp, err := g.preferenceClient.Create(ctx, req)
	if err != nil {
		log.Printf("[payments][gateway] preference create failed err=%v", err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[payments][gateway] preference create success preference_id=%s", resp.ID)

	return entities.CheckoutSession{ID: resp.ID, InitPoint: resp.InitPoint}, nil
}

// GetPayment fetches the processor's authoritative status for one payment.
// Single call, no retries; the timeout bounds how long a receiver can stall
// on enrichment.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.PaymentDetails, error) {
	if g != nil && g.mockMode {
		log.Printf("[payments][gateway] mock payment lookup payment_id=%s", paymentID)
		return entities.PaymentDetails{Status: "approved", Currency: "ARS"}, nil
	}
	if g == nil || g.paymentClient == nil {
		return entities.PaymentDetails{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		log.Printf("[payments][gateway] non-numeric payment_id=%q", paymentID)
		return entities.PaymentDetails{}, ErrInvalidPaymentID
	}

	ctx, cancel := context.WithTimeout(ctx, g.lookupTimeout)
	defer cancel()

	log.Printf("[payments][gateway] payment lookup start payment_id=%d", id)
	resp, err := g.paymentClient.Get(ctx, id)
	if err != nil {
		log.Printf("[payments][gateway] payment lookup failed payment_id=%d err=%v", id, err)
		return entities.PaymentDetails{}, err
	}
	log.Printf("[payments][gateway] payment lookup success payment_id=%d status=%s amount=%.2f", id, resp.Status, resp.TransactionAmount)

	return paymentDetails(resp), nil
}

func paymentDetails(resp *payment.Response) entities.PaymentDetails {
	details := entities.PaymentDetails{
		Status:   resp.Status,
		Amount:   resp.TransactionAmount,
		Currency: resp.CurrencyID,
		Metadata: stringMetadata(resp.Metadata),
	}
	if resp.Order.ID != "" {
		details.MerchantOrderID = resp.Order.ID
	}
	return details
}

func stringMetadata(md map[string]any) map[string]string {
	if len(md) == 0 {
		return nil
	}
	out := make(map[string]string, len(md))
	for k, v := range md {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}

func lookupTimeoutFromEnv() time.Duration {
	v := strings.TrimSpace(os.Getenv("MERCADOPAGO_TIMEOUT_SECONDS"))
	if v == "" {
		return defaultLookupTimeout
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return defaultLookupTimeout
	}
	return time.Duration(secs) * time.Second
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
