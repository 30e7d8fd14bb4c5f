package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/talentbase/crm-api/internal/domain"
	"github.com/talentbase/crm-api/internal/domain/access"
	"github.com/talentbase/crm-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// exportHeaders columnas de la hoja de clientes, en el orden de la vista.
var exportHeaders = []string{"Name", "Email", "Applied Position", "Salary", "Company", "Created By"}

// ExportUseCase exporta los clientes visibles del llamador a una hoja xlsx.
type ExportUseCase struct {
	repo   repository.CustomerRepository
	access *access.Service
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(repo repository.CustomerRepository, accessSvc *access.Service) *ExportUseCase {
	return &ExportUseCase{repo: repo, access: accessSvc}
}

// Customers genera el archivo xlsx con los clientes dentro del alcance del
// llamador (acción "view"). Devuelve el contenido listo para descargar.
func (uc *ExportUseCase) Customers(ctx context.Context, callerEmail string) ([]byte, error) {
	ok, err := uc.access.CheckAccess(ctx, callerEmail, access.ActionView)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	scope, err := uc.access.ScopeFor(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Customers"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("escribir cabecera: %w", err)
		}
	}
	for row, c := range list {
		values := []interface{}{c.Name, c.Email, c.AppliedPosition, c.Salary.InexactFloat64(), c.Company, c.UserEmail}
		for col, v := range values {
			cell := fmt.Sprintf("%c%d", 'A'+col, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila %d: %w", row+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
