package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"subscription_billing/internal/adapter/http/handlers/mocks"
	"subscription_billing/internal/domain/entities"
	"subscription_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/checkout", h.CreateCheckout)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/checkout", bytes.NewBufferString(`{"user_id":"u1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), "u1", "gold", "u1@test.com").Return(entities.CheckoutSession{}, usecase.ErrUnknownPlan)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/checkout", bytes.NewBufferString(`{"user_id":"u1","plan_id":"gold","user_email":"u1@test.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), "u1", "premium", "u1@test.com").Return(entities.CheckoutSession{}, usecase.ErrCheckoutNotAvailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/checkout", bytes.NewBufferString(`{"user_id":"u1","plan_id":"premium","user_email":"u1@test.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), "u1", "premium", "u1@test.com").Return(entities.CheckoutSession{ID: "pref-1", InitPoint: "https://mp.test/init"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/checkout", bytes.NewBufferString(`{"user_id":"u1","plan_id":"premium","user_email":"u1@test.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response not json: %v", err)
		}
		if body["id"] != "pref-1" || body["init_point"] != "https://mp.test/init" {
			t.Fatalf("unexpected response body %v", body)
		}
	})
}

func TestCheckoutHandler_ListPlans(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	h := NewCheckoutHandler(uc)

	r := gin.New()
	r.GET("/v1/plans", h.ListPlans)

	uc.EXPECT().ListPlans().Return([]entities.Plan{{ID: "basic", Name: "Plan Básico", Price: 2999}})

	req := httptest.NewRequest(http.MethodGet, "/v1/plans", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "basic" {
		t.Fatalf("unexpected response body %v", body)
	}
}
