package handler

import (
	"errors"
	"strconv"

	"github.com/appdotbuilder/payment-gateway-id/internal/infrastructure/repository"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/user/dto"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/user/usecase"
	"github.com/appdotbuilder/payment-gateway-id/pkg/logger"
	"github.com/appdotbuilder/payment-gateway-id/pkg/response"
	"github.com/appdotbuilder/payment-gateway-id/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(u *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: u}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Create.Parser", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.Message(err)
		logger.WriteLogToFile("failed", "UserHandler.Create.Validate", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	user, err := h.usecase.CreateUser(c.Context(), req)
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Create.Usecase", req, &errMsg)
		return response.WriteError(c, statusForError(err), "Failed to create user", errMsg)
	}

	logger.WriteLogToFile("success", "UserHandler.Create", req, nil)
	return response.WriteSuccess(c, fiber.StatusCreated, "User created", user)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid user id", err.Error())
	}

	user, err := h.usecase.GetUser(c.Context(), id)
	if err != nil {
		return response.WriteError(c, statusForError(err), "Failed to get user", err.Error())
	}
	return response.WriteSuccess(c, fiber.StatusOK, "User found", user)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	var req dto.ListUsersInput
	if err := c.QueryParser(&req); err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid query", err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", validation.Message(err))
	}

	users, err := h.usecase.ListUsers(c.Context(), req)
	if err != nil {
		return response.WriteError(c, statusForError(err), "Failed to list users", err.Error())
	}
	return response.WriteSuccess(c, fiber.StatusOK, "Users listed", users)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid user id", err.Error())
	}

	var req dto.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Update.Parser", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.Message(err)
		logger.WriteLogToFile("failed", "UserHandler.Update.Validate", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	user, err := h.usecase.UpdateUser(c.Context(), id, req)
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Update.Usecase", req, &errMsg)
		return response.WriteError(c, statusForError(err), "Failed to update user", errMsg)
	}

	logger.WriteLogToFile("success", "UserHandler.Update", req, nil)
	return response.WriteSuccess(c, fiber.StatusOK, "User updated", user)
}

func (h *UserHandler) SetBalance(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid user id", err.Error())
	}

	var req dto.SetBalanceInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.SetBalance.Parser", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.Message(err)
		logger.WriteLogToFile("failed", "UserHandler.SetBalance.Validate", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	user, err := h.usecase.SetBalance(c.Context(), id, req)
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.SetBalance.Usecase", fiber.Map{"id": id}, &errMsg)
		return response.WriteError(c, statusForError(err), "Failed to set balance", errMsg)
	}

	logger.WriteLogToFile("success", "UserHandler.SetBalance", fiber.Map{"id": id}, nil)
	return response.WriteSuccess(c, fiber.StatusOK, "Balance updated", user)
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateUser):
		return fiber.StatusConflict
	case errors.Is(err, repository.ErrInvalidInput):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
