package dto

import "github.com/shopspring/decimal"

// PositionCount número de clientes por posición aplicada.
type PositionCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ReportSummary agregados de salario y distribución por posición dentro del
// alcance del llamador. Datos para graficar; el render es del cliente.
type ReportSummary struct {
	Total     int             `json:"total"`
	AvgSalary decimal.Decimal `json:"avgSalary"` // promedio redondeado al entero
	MaxSalary decimal.Decimal `json:"maxSalary"`
	MinSalary decimal.Decimal `json:"minSalary"`
	Positions []PositionCount `json:"positions"`
}
