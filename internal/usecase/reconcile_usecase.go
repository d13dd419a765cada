package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"subscription_billing/internal/domain/entities"
	"subscription_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingUserID = errors.New("missing user_id")
	ErrMissingPlanID = errors.New("missing plan_id")
	ErrInvalidUserID = errors.New("invalid user id")
)

// unsetPlaceholder is the stringified-undefined value frontends leak through
// URL templating when a round-trip parameter was never set.
const unsetPlaceholder = "undefined"

func isUnset(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == unsetPlaceholder
}

// IReconcileUseCase is the reconciliation engine: the single writer of
// durable payment and subscription state.
//
// ReconcileSignal is what the receivers call: it enriches the event with a
// live processor lookup (when possible) and then reconciles. Reconcile is the
// engine proper and never performs outbound calls.

type IReconcileUseCase interface {
	ReconcileSignal(ctx context.Context, ev entities.PaymentEvent) (entities.PaymentRecord, error)
	Reconcile(ctx context.Context, ev entities.PaymentEvent) (entities.PaymentRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.PaymentRecord, error)
}

type ReconcileUseCase struct {
	paymentRepo      interfaces.IPaymentRepository
	subscriptionRepo interfaces.ISubscriptionRepository
	gateway          interfaces.IPaymentGateway
	dedupe           bool
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(paymentRepo interfaces.IPaymentRepository, subscriptionRepo interfaces.ISubscriptionRepository, gateway interfaces.IPaymentGateway) *ReconcileUseCase {
	return &ReconcileUseCase{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		dedupe:           isPaymentDedupeEnabled(),
	}
}

func (u *ReconcileUseCase) ReconcileSignal(ctx context.Context, ev entities.PaymentEvent) (entities.PaymentRecord, error) {
	return u.Reconcile(ctx, u.enrich(ctx, ev))
}

// enrich fills in fields the signal itself did not carry from the processor's
// authoritative view. A lookup failure is not fatal: the event proceeds with
// plan-derived defaults applied later in Reconcile.
func (u *ReconcileUseCase) enrich(ctx context.Context, ev entities.PaymentEvent) entities.PaymentEvent {
	paymentID := strings.TrimSpace(ev.PaymentID)
	if u.gateway == nil || paymentID == "" {
		return ev
	}

	details, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[reconcile][usecase] processor lookup unavailable payment_id=%s source=%s err=%v; using plan defaults", paymentID, ev.Source, err)
		return ev
	}

	if ev.Status == "" {
		ev.Status = details.Status
	}
	if details.Amount > 0 {
		ev.Amount = details.Amount
	}
	if details.Currency != "" {
		ev.Currency = details.Currency
	}
	if ev.MerchantOrderID == "" {
		ev.MerchantOrderID = details.MerchantOrderID
	}
	if isUnset(ev.UserID) {
		ev.UserID = details.Metadata["user_id"]
	}
	if isUnset(ev.PlanID) {
		ev.PlanID = details.Metadata["plan_id"]
	}
	if ev.UserEmail == "" {
		ev.UserEmail = details.Metadata["user_email"]
	}
	return ev
}

func (u *ReconcileUseCase) Reconcile(ctx context.Context, ev entities.PaymentEvent) (entities.PaymentRecord, error) {
	log.Printf("[reconcile][usecase] reconcile start user_id=%q plan_id=%q payment_id=%q status=%q source=%s", ev.UserID, ev.PlanID, ev.PaymentID, ev.Status, ev.Source)

	// Mirrors the normalizer guard: this engine may be invoked from more than
	// one receiver.
	if isUnset(ev.UserID) {
		log.Printf("[reconcile][usecase] rejected: missing user_id source=%s", ev.Source)
		return entities.PaymentRecord{}, ErrMissingUserID
	}
	if isUnset(ev.PlanID) {
		log.Printf("[reconcile][usecase] rejected: missing plan_id user_id=%s source=%s", ev.UserID, ev.Source)
		return entities.PaymentRecord{}, ErrMissingPlanID
	}
	if u.paymentRepo == nil {
		return entities.PaymentRecord{}, errors.New("payment repository not configured")
	}
	if u.subscriptionRepo == nil {
		return entities.PaymentRecord{}, errors.New("subscription repository not configured")
	}

	userID := strings.TrimSpace(ev.UserID)
	planID := strings.TrimSpace(ev.PlanID)
	paymentID := strings.TrimSpace(ev.PaymentID)

	plan := entities.ResolvePlan(planID)
	if plan.Name == entities.UnknownPlanName {
		log.Printf("[reconcile][usecase] unrecognized plan_id=%s user_id=%s; recording with sentinel plan", planID, userID)
	}

	status := entities.CanonicalStatus(strings.TrimSpace(ev.Status))

	amount := ev.Amount
	if amount <= 0 {
		amount = plan.Price
	}
	currency := strings.TrimSpace(ev.Currency)
	if currency == "" {
		currency = entities.DefaultCurrency
	}

	if u.dedupe && paymentID != "" {
		existing, err := u.paymentRepo.GetByPaymentID(ctx, paymentID)
		if err != nil {
			log.Printf("[reconcile][usecase] dedup lookup failed payment_id=%s err=%v", paymentID, err)
			return entities.PaymentRecord{}, err
		}
		if existing.ID != "" {
			log.Printf("[reconcile][usecase] duplicate payment_id=%s record_id=%s; skipping append", paymentID, existing.ID)
			return existing, nil
		}
	}

	now := time.Now().UTC()
	rec := entities.PaymentRecord{
		ID:              uuid.NewString(),
		UserID:          userID,
		PlanID:          planID,
		PlanName:        plan.Name,
		UserEmail:       strings.TrimSpace(ev.UserEmail),
		PaymentID:       paymentID,
		Status:          status,
		Amount:          amount,
		Currency:        currency,
		MerchantOrderID: strings.TrimSpace(ev.MerchantOrderID),
		PreferenceID:    strings.TrimSpace(ev.PreferenceID),
		Source:          ev.Source,
		CreatedAt:       now,
	}

	created, err := u.paymentRepo.Create(ctx, rec)
	if err != nil {
		log.Printf("[reconcile][usecase] payment record create failed user_id=%s payment_id=%s err=%v", userID, paymentID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[reconcile][usecase] payment recorded record_id=%s user_id=%s status=%s", created.ID, userID, created.Status)

	if status != entities.PaymentStatusCompleted {
		return created, nil
	}

	sub := entities.Subscription{
		UserID:    userID,
		PlanID:    planID,
		PlanName:  plan.Name,
		Status:    entities.SubscriptionStatusActive,
		PaymentID: paymentID,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := u.subscriptionRepo.Upsert(ctx, sub); err != nil {
		log.Printf("[reconcile][usecase] subscription upsert failed user_id=%s payment_id=%s err=%v", userID, paymentID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[reconcile][usecase] subscription active user_id=%s plan_id=%s payment_id=%s", userID, planID, paymentID)

	return created, nil
}

func (u *ReconcileUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.PaymentRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.paymentRepo.ListByUserID(ctx, userID)
}

func isPaymentDedupeEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_DEDUPE")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
