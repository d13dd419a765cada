package handlers

import (
	"errors"
	"log"
	"net/http"

	request "subscription_billing/internal/adapter/http/dto/request"
	response "subscription_billing/internal/adapter/http/dto/response"
	"subscription_billing/internal/usecase"
	"subscription_billing/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles preference creation and the plan catalog.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[checkout][handler] create start user_id=%s plan_id=%s", payload.UserID, payload.PlanID)
	session, err := h.usecase.CreateCheckout(c.Request.Context(), payload.UserID, payload.PlanID, payload.UserEmail)
	if err != nil {
		log.Printf("[checkout][handler] create failed user_id=%s plan_id=%s err=%v", payload.UserID, payload.PlanID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success user_id=%s preference_id=%s", payload.UserID, session.ID)

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func (h *CheckoutHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPlans(h.usecase.ListPlans()))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingUserID), errors.Is(err, usecase.ErrMissingPlanID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownPlan):
		return pkg.NewDomainErrorSimple("UNKNOWN_PLAN", "Unknown plan", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutNotAvailable):
		return pkg.NewDomainErrorSimple("CHECKOUT_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
