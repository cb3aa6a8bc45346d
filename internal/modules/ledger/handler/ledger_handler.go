package handler

import (
	"errors"
	"strconv"

	"github.com/appdotbuilder/payment-gateway-id/internal/infrastructure/repository"
	"github.com/appdotbuilder/payment-gateway-id/internal/model"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/ledger/dto"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/ledger/usecase"
	"github.com/appdotbuilder/payment-gateway-id/pkg/logger"
	"github.com/appdotbuilder/payment-gateway-id/pkg/response"
	"github.com/appdotbuilder/payment-gateway-id/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type LedgerHandler struct {
	usecase *usecase.LedgerUsecase
}

func NewLedgerHandler(u *usecase.LedgerUsecase) *LedgerHandler {
	return &LedgerHandler{usecase: u}
}

func (h *LedgerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "LedgerHandler.Create.Parser", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.Message(err)
		logger.WriteLogToFile("failed", "LedgerHandler.Create.Validate", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	trx, err := h.usecase.CreateTransaction(c.Context(), req)
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "LedgerHandler.Create.Usecase", req, &errMsg)
		return response.WriteError(c, statusForError(err), "Failed to create transaction", errMsg)
	}

	logger.WriteLogToFile("success", "LedgerHandler.Create", req, nil)
	return response.WriteSuccess(c, fiber.StatusCreated, "Transaction created", trx)
}

func (h *LedgerHandler) Settle(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid transaction id", err.Error())
	}

	var req dto.SettleInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "LedgerHandler.Settle.Parser", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.Message(err)
		logger.WriteLogToFile("failed", "LedgerHandler.Settle.Validate", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	trx, err := h.usecase.Settle(c.Context(), id, model.TransactionStatus(req.Status))
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "LedgerHandler.Settle.Usecase", fiber.Map{"id": id, "status": req.Status}, &errMsg)
		return response.WriteError(c, statusForError(err), "Failed to settle transaction", errMsg)
	}

	logger.WriteLogToFile("success", "LedgerHandler.Settle", fiber.Map{"id": id, "status": req.Status}, nil)
	return response.WriteSuccess(c, fiber.StatusOK, "Transaction settled", trx)
}

func (h *LedgerHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid transaction id", err.Error())
	}

	trx, err := h.usecase.GetTransaction(c.Context(), id)
	if err != nil {
		return response.WriteError(c, statusForError(err), "Failed to get transaction", err.Error())
	}
	return response.WriteSuccess(c, fiber.StatusOK, "Transaction found", trx)
}

func (h *LedgerHandler) List(c *fiber.Ctx) error {
	var req dto.ListTransactionsInput
	if err := c.QueryParser(&req); err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid query", err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", validation.Message(err))
	}

	list, err := h.usecase.ListTransactions(c.Context(), req)
	if err != nil {
		return response.WriteError(c, statusForError(err), "Failed to list transactions", err.Error())
	}
	return response.WriteSuccess(c, fiber.StatusOK, "Transactions listed", list)
}

// ListForUser serves /users/:id/transactions: same listing with the
// user filter forced from the path.
func (h *LedgerHandler) ListForUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid user id", err.Error())
	}

	var req dto.ListTransactionsInput
	if err := c.QueryParser(&req); err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid query", err.Error())
	}
	req.UserID = id
	if err := validate.Struct(&req); err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", validation.Message(err))
	}

	list, err := h.usecase.ListTransactions(c.Context(), req)
	if err != nil {
		return response.WriteError(c, statusForError(err), "Failed to list transactions", err.Error())
	}
	return response.WriteSuccess(c, fiber.StatusOK, "Transactions listed", list)
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrAlreadyProcessed):
		return fiber.StatusConflict
	case errors.Is(err, repository.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, repository.ErrConflict):
		// internal retries exhausted; client may try again
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
