package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/talentbase/crm-api/internal/application/usecase"
	"github.com/talentbase/crm-api/internal/domain/access"
)

// El export produce un xlsx legible con cabecera fija y una fila por cliente
// dentro del alcance del llamador.
func TestExportCustomers_GeneraXLSX(t *testing.T) {
	fx := newFixture()
	uc := usecase.NewExportUseCase(fx.customers, access.NewService(fx.users))

	content, err := uc.Customers(context.Background(), "admin@acme.com")
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err, "el contenido debe ser un xlsx válido")
	defer f.Close()

	rows, err := f.GetRows("Customers")
	require.NoError(t, err)
	require.Len(t, rows, 2, "cabecera + un cliente de Acme")

	assert.Equal(t, []string{"Name", "Email", "Applied Position", "Salary", "Company", "Created By"}, rows[0])
	assert.Equal(t, "Cliente Acme", rows[1][0])
	assert.Equal(t, "cliente@acme-candidates.io", rows[1][1])
	assert.Equal(t, "Acme", rows[1][4])
	assert.Equal(t, "admin@acme.com", rows[1][5])
}

func TestExportCustomers_SuperAdminExportaTodo(t *testing.T) {
	fx := newFixture()
	uc := usecase.NewExportUseCase(fx.customers, access.NewService(fx.users))

	content, err := uc.Customers(context.Background(), "super@corp.io")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Customers")
	require.NoError(t, err)
	assert.Len(t, rows, 3, "cabecera + dos clientes")
}

// Un llamador desconocido cae a Employee, que sí puede ver (y exportar) los
// clientes... de su empresa, que al no existir el documento es ninguna.
func TestExportCustomers_LlamadorDesconocido(t *testing.T) {
	fx := newFixture()
	uc := usecase.NewExportUseCase(fx.customers, access.NewService(fx.users))

	content, err := uc.Customers(context.Background(), "fantasma@x.io")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Customers")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "solo la cabecera: sin empresa no hay clientes visibles")
}
