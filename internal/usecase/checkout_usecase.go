package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"subscription_billing/internal/domain/entities"
	"subscription_billing/internal/usecase/interfaces"
)

var (
	ErrUnknownPlan          = errors.New("unknown plan")
	ErrCheckoutNotAvailable = errors.New("payment gateway not configured")
)

const (
	webhookPath  = "/v1/payments/webhook"
	redirectPath = "/v1/payments/success"
)

// ICheckoutUseCase opens a processor checkout (payment preference) for one
// plan. The round-trip identifiers (user_id, plan_id, user_email) are baked
// into the back URLs, the notification URL and the preference metadata so
// both receivers can reconcile the eventual payment.

type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, userID, planID, userEmail string) (entities.CheckoutSession, error)
	ListPlans() []entities.Plan
}

type CheckoutUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, userID, planID, userEmail string) (entities.CheckoutSession, error) {
	userID = strings.TrimSpace(userID)
	planID = strings.TrimSpace(planID)
	userEmail = strings.TrimSpace(userEmail)

	log.Printf("[checkout][usecase] create start user_id=%q plan_id=%q", userID, planID)
	if isUnset(userID) {
		return entities.CheckoutSession{}, ErrMissingUserID
	}
	if isUnset(planID) {
		return entities.CheckoutSession{}, ErrMissingPlanID
	}
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured user_id=%s", userID)
		return entities.CheckoutSession{}, ErrCheckoutNotAvailable
	}

	// Unlike reconciliation, checkout has nothing to sell for an unknown code.
	plan, ok := entities.LookupPlan(planID)
	if !ok {
		log.Printf("[checkout][usecase] unknown plan_id=%s user_id=%s", planID, userID)
		return entities.CheckoutSession{}, ErrUnknownPlan
	}

	roundTrip := url.Values{}
	roundTrip.Set("user_id", userID)
	roundTrip.Set("plan_id", planID)
	if userEmail != "" {
		roundTrip.Set("user_email", userEmail)
	}

	pref := entities.CheckoutPreference{
		Title:    plan.Name,
		Price:    plan.Price,
		Currency: entities.DefaultCurrency,
		Quantity: 1,
		// The success return lands on our own redirect receiver, which
		// reconciles and then forwards the browser to SUCCESS_URL. Pending and
		// failure returns go straight to the frontend pages.
		BackURLs: entities.CheckoutBackURLs{
			Success: serviceURL(redirectPath, roundTrip),
			Pending: withQueryParams(os.Getenv("PENDING_URL"), roundTrip),
			Failure: withQueryParams(os.Getenv("FAILURE_URL"), roundTrip),
		},
		NotificationURL:   serviceURL(webhookPath, roundTrip),
		ExternalReference: fmt.Sprintf("%s:%s", userID, planID),
		Metadata: map[string]any{
			"user_id":    userID,
			"plan_id":    planID,
			"user_email": userEmail,
		},
	}

	session, err := u.gateway.CreatePreference(ctx, pref)
	if err != nil {
		log.Printf("[checkout][usecase] preference create failed user_id=%s plan_id=%s err=%v", userID, planID, err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[checkout][usecase] preference created user_id=%s plan_id=%s preference_id=%s", userID, planID, session.ID)
	return session, nil
}

func (u *CheckoutUseCase) ListPlans() []entities.Plan {
	return entities.ListPlans()
}

// withQueryParams appends params to a base URL, keeping any query it already
// carries. A base that does not parse is returned untouched.
func withQueryParams(base string, params url.Values) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := parsed.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	parsed.RawQuery = q.Encode()
	return parsed.String()
}

func serviceURL(path string, params url.Values) string {
	base := strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL"))
	if base == "" {
		return ""
	}
	return withQueryParams(strings.TrimRight(base, "/")+path, params)
}
