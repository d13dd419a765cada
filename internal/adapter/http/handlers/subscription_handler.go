package handlers

import (
	"errors"
	"log"
	"net/http"

	response "subscription_billing/internal/adapter/http/dto/response"
	"subscription_billing/internal/usecase"
	"subscription_billing/pkg"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler exposes the read model: the per-user subscription
// document and the payment audit log.

type SubscriptionHandler struct {
	subscriptions usecase.ISubscriptionUseCase
	payments      usecase.IReconcileUseCase
}

func NewSubscriptionHandler(subs usecase.ISubscriptionUseCase, payments usecase.IReconcileUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subs, payments: payments}
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	userID := c.Param("user_id")

	s, err := h.subscriptions.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[subscription][handler] get failed user_id=%s err=%v", userID, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubscription(s))
}

func (h *SubscriptionHandler) ListUserPayments(c *gin.Context) {
	userID := c.Param("user_id")

	payments, err := h.payments.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[subscription][handler] list payments failed user_id=%s err=%v", userID, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecords(payments))
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
