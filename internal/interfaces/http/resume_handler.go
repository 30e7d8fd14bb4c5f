package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/internal/application/usecase"
	"github.com/talentbase/crm-api/internal/domain"
)

// ResumeHandler extracción de campos de currículums subidos.
type ResumeHandler struct {
	uc *usecase.ResumeUseCase
}

// NewResumeHandler construye el handler.
func NewResumeHandler(uc *usecase.ResumeUseCase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

// Extract POST /api/resumes/extract — multipart con el campo "resume".
func (h *ResumeHandler) Extract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "falta el archivo"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	resp, err := h.uc.Extract(fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_TYPE", Message: "tipo de archivo no soportado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXTRACT_FAILED", Message: "no se pudieron extraer los datos del currículum"})
	}
	return c.JSON(resp)
}
