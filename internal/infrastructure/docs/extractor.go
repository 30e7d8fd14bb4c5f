package docs

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/talentbase/crm-api/internal/domain"
)

// Extractor obtiene texto plano de documentos subidos (PDF, DOCX, DOC, TXT).
type Extractor struct{}

// NewExtractor construye el extractor de texto.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText despacha por extensión del archivo. Tipos no soportados
// devuelven el error de validación de dominio.
func (e *Extractor) ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	case ".doc", ".txt":
		// Sin estructura conocida: se interpreta el contenido como UTF-8.
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: tipo de archivo no soportado", domain.ErrInvalidInput)
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("abrir pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extraer texto de pdf: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("leer texto de pdf: %w", err)
	}
	return buf.String(), nil
}
