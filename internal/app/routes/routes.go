package routes

import (
	"github.com/appdotbuilder/payment-gateway-id/internal/app/factory"

	"github.com/gofiber/fiber/v2"
)

func NewRoutes(app *fiber.App, container *factory.Container) {
	routerApi := app.Group("/api")

	// Register healthz routes
	healthzRoutes := routerApi.Group("/healthz")
	NewHealthzRoutes(healthzRoutes)

	// User routes
	routerUsers := routerApi.Group("/users")
	NewUserRoutes(routerUsers, container.UserHandler, container.LedgerHandler)

	// Ledger routes
	routerTransactions := routerApi.Group("/transactions")
	NewLedgerRoutes(routerTransactions, container.LedgerHandler)

	// Report routes
	routerReports := routerApi.Group("/reports")
	NewReportRoutes(routerReports, container.ReportHandler)
}
