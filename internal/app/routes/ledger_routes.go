package routes

import (
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/ledger/handler"

	"github.com/gofiber/fiber/v2"
)

func NewLedgerRoutes(router fiber.Router, handler *handler.LedgerHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Patch("/:id/status", handler.Settle)
}
