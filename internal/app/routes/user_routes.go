package routes

import (
	ledgerhandler "github.com/appdotbuilder/payment-gateway-id/internal/modules/ledger/handler"
	userhandler "github.com/appdotbuilder/payment-gateway-id/internal/modules/user/handler"

	"github.com/gofiber/fiber/v2"
)

func NewUserRoutes(router fiber.Router, users *userhandler.UserHandler, ledger *ledgerhandler.LedgerHandler) {
	router.Post("/", users.Create)
	router.Get("/", users.List)
	router.Get("/:id", users.Get)
	router.Patch("/:id", users.Update)
	router.Put("/:id/balance", users.SetBalance)
	router.Get("/:id/transactions", ledger.ListForUser)
}
