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

// PaymentWebhookHandler is the notification receiver: the processor's
// asynchronous server-to-server path.
//
// The acknowledgement status drives the processor's redelivery: 2xx
// suppresses it, 5xx triggers it. Validation failures answer 4xx so a
// permanently broken notification is not redelivered forever.

type PaymentWebhookHandler struct {
	usecase usecase.IReconcileUseCase
}

func NewPaymentWebhookHandler(uc usecase.IReconcileUseCase) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{usecase: uc}
}

func (h *PaymentWebhookHandler) HandleNotification(c *gin.Context) {
	var payload request.WebhookNotification
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !payload.IsPayment() {
		// Other event types (merchant_order, plan, ...) are acknowledged so
		// the processor stops redelivering them.
		log.Printf("[webhook][handler] ignoring notification type=%q", payload.Type)
		c.Status(http.StatusOK)
		return
	}

	ev := payload.ToPaymentEvent(c.Query("user_id"), c.Query("plan_id"), c.Query("user_email"))
	log.Printf("[webhook][handler] notification start payment_id=%s user_id=%q plan_id=%q", ev.PaymentID, ev.UserID, ev.PlanID)

	rec, err := h.usecase.ReconcileSignal(c.Request.Context(), ev)
	if err != nil {
		log.Printf("[webhook][handler] reconcile failed payment_id=%s err=%v", ev.PaymentID, err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] notification recorded payment_id=%s record_id=%s status=%s", ev.PaymentID, rec.ID, rec.Status)

	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

func mapReconcileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingUserID), errors.Is(err, usecase.ErrMissingPlanID), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_EVENT", "Missing required payment identifiers", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
