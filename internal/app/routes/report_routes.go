package routes

import (
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/report/handler"

	"github.com/gofiber/fiber/v2"
)

func NewReportRoutes(router fiber.Router, handler *handler.ReportHandler) {
	router.Get("/dashboard", handler.Dashboard)
}
