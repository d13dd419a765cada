package handlers

import (
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	request "subscription_billing/internal/adapter/http/dto/request"
	response "subscription_billing/internal/adapter/http/dto/response"
	"subscription_billing/internal/usecase"
	"subscription_billing/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentRedirectHandler is the redirect receiver: the synchronous browser
// return after checkout. It reconciles the reported payment and then forwards
// the browser to the configured success page with echoed identifiers.

type PaymentRedirectHandler struct {
	usecase usecase.IReconcileUseCase
}

func NewPaymentRedirectHandler(uc usecase.IReconcileUseCase) *PaymentRedirectHandler {
	return &PaymentRedirectHandler{usecase: uc}
}

func (h *PaymentRedirectHandler) HandleSuccessRedirect(c *gin.Context) {
	var query request.RedirectQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := query.Validate(); err != nil {
		log.Printf("[redirect][handler] missing required parameter err=%v", err)
		appErr := pkg.NewDomainErrorSimple("MISSING_PARAMETER", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ev := query.ToPaymentEvent()
	log.Printf("[redirect][handler] redirect start user_id=%s plan_id=%s payment_id=%s status=%s", ev.UserID, ev.PlanID, ev.PaymentID, ev.Status)

	rec, err := h.usecase.ReconcileSignal(c.Request.Context(), ev)
	if err != nil {
		log.Printf("[redirect][handler] reconcile failed user_id=%s payment_id=%s err=%v", ev.UserID, ev.PaymentID, err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[redirect][handler] redirect recorded user_id=%s record_id=%s status=%s", ev.UserID, rec.ID, rec.Status)

	target := successPageURL(rec.PaymentID, string(rec.Status), rec.PlanID, rec.UserID)
	if target == "" {
		// No success page configured; answer the record directly.
		c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
		return
	}
	c.Redirect(http.StatusFound, target)
}

func successPageURL(paymentID, status, planID, userID string) string {
	base := strings.TrimSpace(os.Getenv("SUCCESS_URL"))
	if base == "" {
		return ""
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := parsed.Query()
	q.Set("payment_id", paymentID)
	q.Set("status", status)
	q.Set("plan_id", planID)
	q.Set("user_id", userID)
	parsed.RawQuery = q.Encode()
	return parsed.String()
}
