package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/pkg/jwt"
)

// Locals keys para la identidad del llamador en Fiber.
const (
	LocalEmail   = "email"
	LocalCompany = "company"
	LocalRole    = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae email, company y role a
// c.Locals. Solo autentica identidad: los permisos se resuelven por llamada
// contra la base, nunca desde los claims.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		email, company, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalEmail, email)
		c.Locals(LocalCompany, company)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCompany devuelve la empresa del contexto (después del middleware de auth).
func GetCompany(c *fiber.Ctx) string {
	v := c.Locals(LocalCompany)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
