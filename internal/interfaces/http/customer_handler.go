package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/internal/application/usecase"
	"github.com/talentbase/crm-api/internal/domain"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc     *usecase.CustomerUseCase
	export *usecase.ExportUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, export *usecase.ExportUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, export: export}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	callerEmail := GetEmail(c)
	if callerEmail == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(c.Context(), callerEmail, in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	callerEmail := GetEmail(c)
	if callerEmail == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.List(c.Context(), callerEmail)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/customers/:email
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	callerEmail := GetEmail(c)
	if callerEmail == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), callerEmail, c.Params("email"), in); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Updated successfully!"})
}

// Delete DELETE /api/customers/:email
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	callerEmail := GetEmail(c)
	if callerEmail == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.Delete(c.Context(), callerEmail, c.Params("email")); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Customer deleted successfully!"})
}

// Export GET /api/customers/export — hoja xlsx con los clientes visibles.
func (h *CustomerHandler) Export(c *fiber.Ctx) error {
	callerEmail := GetEmail(c)
	if callerEmail == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	content, err := h.export.Customers(c.Context(), callerEmail)
	if err != nil {
		return h.mapError(c, err)
	}
	filename := "customers-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(content)
}

// mapError traduce errores de dominio a códigos HTTP. La ausencia y el
// fuera-de-alcance comparten NOT_FOUND a propósito.
func (h *CustomerHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "todos los campos son requeridos"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso para esta acción"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
