package routes

import (
	"subscription_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments      = "/payments"
	PathSubscriptions = "/subscriptions"
	PathPlans         = "/plans"
)

func addPaymentRoutes(
	rg *gin.RouterGroup,
	checkoutHandler *handlers.CheckoutHandler,
	webhookHandler *handlers.PaymentWebhookHandler,
	redirectHandler *handlers.PaymentRedirectHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/checkout", checkoutHandler.CreateCheckout)

		// Two independent signal paths converging on the same engine.
		payments.POST("/webhook", webhookHandler.HandleNotification)
		payments.GET("/success", redirectHandler.HandleSuccessRedirect)

		payments.GET("/user/:user_id", subscriptionHandler.ListUserPayments)
	}

	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.GET("/:user_id", subscriptionHandler.GetSubscription)
	}

	rg.GET(PathPlans, checkoutHandler.ListPlans)
}
