package usecase

import (
	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/internal/domain/resume"
)

// TextExtractor convierte un documento subido (PDF, DOCX o texto plano) en
// texto crudo. Devuelve domain.ErrInvalidInput para tipos no soportados.
type TextExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}

// ResumeUseCase extracción de campos de currículums subidos.
type ResumeUseCase struct {
	extractor TextExtractor
}

// NewResumeUseCase construye el caso de uso.
func NewResumeUseCase(extractor TextExtractor) *ResumeUseCase {
	return &ResumeUseCase{extractor: extractor}
}

// Extract obtiene el texto del documento y lo pasa por el pipeline de
// extracción. Devuelve los campos y su proyección en fila de 8 columnas.
func (uc *ResumeUseCase) Extract(filename string, data []byte) (*dto.ResumeExtractResponse, error) {
	text, err := uc.extractor.ExtractText(filename, data)
	if err != nil {
		return nil, err
	}
	fields := resume.Parse(text)
	return &dto.ResumeExtractResponse{
		Row:    resume.ToRow(fields),
		Fields: fields,
	}, nil
}
