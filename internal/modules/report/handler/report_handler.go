package handler

import (
	"errors"

	"github.com/appdotbuilder/payment-gateway-id/internal/infrastructure/repository"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/report/dto"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/report/usecase"
	"github.com/appdotbuilder/payment-gateway-id/pkg/response"
	"github.com/appdotbuilder/payment-gateway-id/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type ReportHandler struct {
	usecase *usecase.ReportUsecase
}

func NewReportHandler(u *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{usecase: u}
}

func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	var req dto.GetReportInput
	if err := c.QueryParser(&req); err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid query", err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", validation.Message(err))
	}

	report, err := h.usecase.DashboardReport(c.Context(), req)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, repository.ErrInvalidInput) {
			status = fiber.StatusBadRequest
		}
		return response.WriteError(c, status, "Failed to build report", err.Error())
	}
	return response.WriteSuccess(c, fiber.StatusOK, "Dashboard report", report)
}
