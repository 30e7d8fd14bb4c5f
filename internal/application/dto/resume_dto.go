package dto

import "github.com/talentbase/crm-api/internal/domain/resume"

// ResumeExtractResponse campos extraídos más su proyección en fila de 8
// columnas para la vista de hoja de cálculo.
type ResumeExtractResponse struct {
	Row    []string      `json:"row"`
	Fields resume.Fields `json:"fields"`
}
