package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/internal/application/usecase"
	"github.com/talentbase/crm-api/internal/domain"
)

// ReportHandler agregados para la vista de informes.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary GET /api/reports/summary
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	callerEmail := GetEmail(c)
	if callerEmail == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	summary, err := h.uc.Summary(c.Context(), callerEmail)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso para esta acción"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
