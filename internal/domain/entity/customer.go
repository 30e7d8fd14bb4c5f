package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un candidato/cliente de la empresa.
// Company se denormaliza desde el usuario creador en el momento del alta y
// nunca debe quedar vacío (ver el backfill del arranque).
type Customer struct {
	ID              string
	UserEmail       string // email del usuario que creó el registro
	Company         string
	Name            string
	Email           string
	AppliedPosition string
	Salary          decimal.Decimal
	CreatedAt       time.Time
}
