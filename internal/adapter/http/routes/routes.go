package routes

import (
	"log"
	"net/http"
	"os"

	_ "subscription_billing/docs" // This will be auto-generated
	"subscription_billing/internal/adapter/http/handlers"
	repository2 "subscription_billing/internal/adapter/persistence/repository"
	"subscription_billing/internal/infrastructure/database"
	"subscription_billing/internal/infrastructure/payments"
	"subscription_billing/internal/usecase"
	"subscription_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", "8080"))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	subscriptionRepo := repository2.NewSubscriptionDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	reconcileUseCase := usecase.NewReconcileUseCase(paymentRepo, subscriptionRepo, paymentGateway)
	checkoutUseCase := usecase.NewCheckoutUseCase(paymentGateway)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewPaymentWebhookHandler(reconcileUseCase)
	redirectHandler := handlers.NewPaymentRedirectHandler(reconcileUseCase)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUseCase, reconcileUseCase)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, checkoutHandler, webhookHandler, redirectHandler, subscriptionHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
