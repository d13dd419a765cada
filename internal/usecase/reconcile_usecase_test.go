package usecase

import (
	"context"
	"errors"
	"testing"

	"subscription_billing/internal/domain/entities"
	mock_interfaces "subscription_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedEvent() entities.PaymentEvent {
	return entities.PaymentEvent{
		UserID:    "u1",
		PlanID:    "premium",
		UserEmail: "u1@test.com",
		PaymentID: "p1",
		Status:    "approved",
		Amount:    5999,
		Currency:  "ARS",
		Source:    entities.EventSourceNotification,
	}
}

func TestReconcileUseCase_Reconcile_Validations(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "")

	cases := []struct {
		name string
		ev   entities.PaymentEvent
		want error
	}{
		{"empty user_id", entities.PaymentEvent{PlanID: "basic", Status: "approved"}, ErrMissingUserID},
		{"whitespace user_id", entities.PaymentEvent{UserID: "  ", PlanID: "basic"}, ErrMissingUserID},
		{"placeholder user_id", entities.PaymentEvent{UserID: "undefined", PlanID: "basic", Status: "approved"}, ErrMissingUserID},
		{"empty plan_id", entities.PaymentEvent{UserID: "u1", Status: "approved"}, ErrMissingPlanID},
		{"placeholder plan_id", entities.PaymentEvent{UserID: "u1", PlanID: "undefined"}, ErrMissingPlanID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			// No EXPECT calls: a rejected event must never touch storage.
			paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
			subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
			uc := NewReconcileUseCase(paymentRepo, subRepo, nil)

			_, err := uc.Reconcile(context.Background(), tc.ev)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestReconcileUseCase_Reconcile_CompletedActivatesSubscription(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
	uc := NewReconcileUseCase(paymentRepo, subRepo, nil)

	var gotRecord entities.PaymentRecord
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
			gotRecord = p
			return p, nil
		})

	var gotSub entities.Subscription
	subRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
			gotSub = s
			return s, nil
		})

	created, err := uc.Reconcile(context.Background(), approvedEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected generated record id")
	}
	if gotRecord.Status != entities.PaymentStatusCompleted {
		t.Fatalf("expected completed status, got %s", gotRecord.Status)
	}
	if gotRecord.PlanName != "Plan Premium" {
		t.Fatalf("unexpected plan name %q", gotRecord.PlanName)
	}
	if gotSub.Status != entities.SubscriptionStatusActive {
		t.Fatalf("expected active subscription, got %s", gotSub.Status)
	}
	if gotSub.UserID != "u1" || gotSub.PlanID != "premium" || gotSub.PaymentID != "p1" {
		t.Fatalf("unexpected subscription %+v", gotSub)
	}
	if gotSub.Amount != 5999 || gotSub.Currency != "ARS" {
		t.Fatalf("unexpected subscription amount %v %s", gotSub.Amount, gotSub.Currency)
	}
}

func TestReconcileUseCase_Reconcile_NonCompletedLeavesSubscriptionUntouched(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "")

	for _, status := range []string{"pending", "rejected", "in_process", ""} {
		t.Run("status "+status, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
			// No Upsert expectation: subscription must stay untouched.
			subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
			uc := NewReconcileUseCase(paymentRepo, subRepo, nil)

			ev := approvedEvent()
			ev.Status = status

			var gotRecord entities.PaymentRecord
			paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
					gotRecord = p
					return p, nil
				})

			if _, err := uc.Reconcile(context.Background(), ev); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want := entities.PaymentStatusPending
			if status != "" {
				want = entities.PaymentStatus(status)
			}
			if gotRecord.Status != want {
				t.Fatalf("expected status %s, got %s", want, gotRecord.Status)
			}
		})
	}
}

func TestReconcileUseCase_Reconcile_DuplicateDeliveryAppends(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
	uc := NewReconcileUseCase(paymentRepo, subRepo, nil)

	recordIDs := map[string]bool{}
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
			recordIDs[p.ID] = true
			return p, nil
		})

	var lastSub entities.Subscription
	subRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
			lastSub = s
			return s, nil
		})

	ev := approvedEvent()
	for i := 0; i < 2; i++ {
		if _, err := uc.Reconcile(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error on delivery %d: %v", i, err)
		}
	}

	if len(recordIDs) != 2 {
		t.Fatalf("expected 2 distinct appended records, got %d", len(recordIDs))
	}
	if lastSub.Status != entities.SubscriptionStatusActive || lastSub.PaymentID != "p1" {
		t.Fatalf("unexpected final subscription %+v", lastSub)
	}
}

func TestReconcileUseCase_Reconcile_DedupeEnabledSkipsAppend(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "true")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
	uc := NewReconcileUseCase(paymentRepo, subRepo, nil)

	existing := entities.PaymentRecord{ID: "rec-1", UserID: "u1", PaymentID: "p1", Status: entities.PaymentStatusCompleted}
	paymentRepo.EXPECT().GetByPaymentID(gomock.Any(), "p1").Return(existing, nil)

	got, err := uc.Reconcile(context.Background(), approvedEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "rec-1" {
		t.Fatalf("expected existing record, got %+v", got)
	}
}

func TestReconcileUseCase_Reconcile_DedupeEnabledFirstDeliveryAppends(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "on")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
	uc := NewReconcileUseCase(paymentRepo, subRepo, nil)

	paymentRepo.EXPECT().GetByPaymentID(gomock.Any(), "p1").Return(entities.PaymentRecord{}, nil)
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
			return p, nil
		})
	subRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
			return s, nil
		})

	if _, err := uc.Reconcile(context.Background(), approvedEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcileUseCase_Reconcile_UnknownPlanUsesSentinel(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
	uc := NewReconcileUseCase(paymentRepo, subRepo, nil)

	var gotRecord entities.PaymentRecord
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
			gotRecord = p
			return p, nil
		})
	var gotSub entities.Subscription
	subRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
			gotSub = s
			return s, nil
		})

	ev := entities.PaymentEvent{UserID: "u1", PlanID: "unknown_plan", Status: "approved", Source: entities.EventSourceRedirect}
	if _, err := uc.Reconcile(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotRecord.PlanName != entities.UnknownPlanName {
		t.Fatalf("expected sentinel plan name, got %q", gotRecord.PlanName)
	}
	if gotSub.Status != entities.SubscriptionStatusActive {
		t.Fatalf("expected activated subscription, got %s", gotSub.Status)
	}
}

func TestReconcileUseCase_Reconcile_StorageFailures(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "")

	t.Run("payment record create fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewReconcileUseCase(paymentRepo, subRepo, nil)

		paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, errors.New("dynamo down"))

		_, err := uc.Reconcile(context.Background(), approvedEvent())
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected storage error, got %v", err)
		}
	})

	t.Run("subscription upsert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewReconcileUseCase(paymentRepo, subRepo, nil)

		paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
				return p, nil
			})
		subRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.Subscription{}, errors.New("dynamo down"))

		_, err := uc.Reconcile(context.Background(), approvedEvent())
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected storage error, got %v", err)
		}
	})
}

func TestReconcileUseCase_ReconcileSignal_EnrichesFromProcessor(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewReconcileUseCase(paymentRepo, subRepo, gateway)

	// Notification path: the body carries only the payment id; identifiers
	// come from the round-trip query params or, failing that, preference
	// metadata echoed on the payment.
	gateway.EXPECT().GetPayment(gomock.Any(), "p9").Return(entities.PaymentDetails{
		Status:          "approved",
		Amount:          2999,
		Currency:        "ARS",
		MerchantOrderID: "mo-1",
		Metadata:        map[string]string{"user_id": "u2", "plan_id": "basic", "user_email": "u2@test.com"},
	}, nil)

	var gotRecord entities.PaymentRecord
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
			gotRecord = p
			return p, nil
		})
	subRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
			return s, nil
		})

	ev := entities.PaymentEvent{PaymentID: "p9", Source: entities.EventSourceNotification}
	if _, err := uc.ReconcileSignal(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotRecord.UserID != "u2" || gotRecord.PlanID != "basic" {
		t.Fatalf("expected identifiers backfilled from metadata, got %+v", gotRecord)
	}
	if gotRecord.Status != entities.PaymentStatusCompleted || gotRecord.Amount != 2999 {
		t.Fatalf("expected enriched status/amount, got %+v", gotRecord)
	}
	if gotRecord.MerchantOrderID != "mo-1" {
		t.Fatalf("expected merchant order id, got %q", gotRecord.MerchantOrderID)
	}
}

func TestReconcileUseCase_ReconcileSignal_FetcherUnavailableFallsBack(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewReconcileUseCase(paymentRepo, subRepo, gateway)

	gateway.EXPECT().GetPayment(gomock.Any(), "p2").Return(entities.PaymentDetails{}, errors.New("timeout"))

	var gotRecord entities.PaymentRecord
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
			gotRecord = p
			return p, nil
		})
	subRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
			return s, nil
		})

	ev := entities.PaymentEvent{
		UserID:    "u1",
		PlanID:    "premium",
		PaymentID: "p2",
		Status:    "approved",
		Source:    entities.EventSourceRedirect,
	}
	if _, err := uc.ReconcileSignal(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotRecord.Amount != 5999 {
		t.Fatalf("expected plan list price fallback, got %v", gotRecord.Amount)
	}
	if gotRecord.Currency != entities.DefaultCurrency {
		t.Fatalf("expected ARS fallback, got %q", gotRecord.Currency)
	}
}

func TestReconcileUseCase_ReconcileSignal_NoPaymentIDSkipsLookup(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	subRepo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
	// No GetPayment expectation: nothing to look up without an id.
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewReconcileUseCase(paymentRepo, subRepo, gateway)

	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
			return p, nil
		})

	ev := entities.PaymentEvent{UserID: "u1", PlanID: "basic", Status: "pending", Source: entities.EventSourceRedirect}
	if _, err := uc.ReconcileSignal(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcileUseCase_ListByUserID(t *testing.T) {
	t.Setenv("PAYMENT_DEDUPE", "")

	t.Run("invalid user id", func(t *testing.T) {
		uc := NewReconcileUseCase(nil, nil, nil)
		_, err := uc.ListByUserID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewReconcileUseCase(paymentRepo, nil, nil)

		paymentRepo.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.PaymentRecord{{ID: "r1"}}, nil)

		got, err := uc.ListByUserID(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "r1" {
			t.Fatalf("unexpected result %+v", got)
		}
	})
}
