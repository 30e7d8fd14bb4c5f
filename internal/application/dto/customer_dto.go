package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta de cliente. Company no se acepta del exterior:
// se denormaliza desde el usuario creador.
type CreateCustomerRequest struct {
	Name            string          `json:"Name"`
	Email           string          `json:"Email"`
	AppliedPosition string          `json:"Applied Position"`
	Salary          decimal.Decimal `json:"Salary"`
}

// UpdateCustomerRequest campos mutables de un cliente.
type UpdateCustomerRequest struct {
	Name            string          `json:"Name"`
	AppliedPosition string          `json:"Applied Position"`
	Salary          decimal.Decimal `json:"Salary"`
}

// CustomerResponse representación externa de un cliente. Las claves JSON
// replican el esquema histórico de la colección (incluida "Applied Position").
type CustomerResponse struct {
	ID              string          `json:"id"`
	UserEmail       string          `json:"userEmail"`
	Company         string          `json:"Company"`
	Name            string          `json:"Name"`
	Email           string          `json:"Email"`
	AppliedPosition string          `json:"Applied Position"`
	Salary          decimal.Decimal `json:"Salary"`
	CreatedAt       time.Time       `json:"createdAt"`
}
