package main

import (
	_ "subscription_billing/docs"
	"subscription_billing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Subscription Billing API
// @version         1.0
// @description     Subscription checkout and payment reconciliation (Mercado Pago + DynamoDB).

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
