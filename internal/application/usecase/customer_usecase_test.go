package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/internal/application/usecase"
	"github.com/talentbase/crm-api/internal/domain"
	"github.com/talentbase/crm-api/internal/domain/access"
	"github.com/talentbase/crm-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, email, role string) error {
	if u, ok := r.users[email]; ok {
		u.Role = role
	}
	return nil
}

func (r *fakeUserRepo) SetDarkMode(_ context.Context, email string, dark bool) error {
	if u, ok := r.users[email]; ok {
		u.DarkMode = dark
	}
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer // por ID
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, scope access.Scope) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if scope.All || c.Company == scope.Company {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) UpdateByEmail(_ context.Context, email string, scope access.Scope, upd *entity.Customer) (bool, error) {
	for _, c := range r.customers {
		if c.Email == email && (scope.All || c.Company == scope.Company) {
			c.Name = upd.Name
			c.AppliedPosition = upd.AppliedPosition
			c.Salary = upd.Salary
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCustomerRepo) DeleteByEmail(_ context.Context, email string, scope access.Scope) (bool, error) {
	for id, c := range r.customers {
		if c.Email == email && (scope.All || c.Company == scope.Company) {
			delete(r.customers, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCustomerRepo) ListMissingCompany(_ context.Context) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) SetCompany(_ context.Context, id, company string) error {
	if c, ok := r.customers[id]; ok {
		c.Company = company
	}
	return nil
}

// fixture construye dos empresas con un usuario por rol relevante y un
// cliente por empresa.
type fixture struct {
	users     *fakeUserRepo
	customers *fakeCustomerRepo
	uc        *usecase.CustomerUseCase
}

func newFixture() *fixture {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"super@corp.io":     {Email: "super@corp.io", Name: "Root", Company: "Corp", Role: "SuperAdmin"},
		"admin@acme.com":    {Email: "admin@acme.com", Name: "Ana", Company: "Acme", Role: "Admin"},
		"manager@acme.com":  {Email: "manager@acme.com", Name: "Marta", Company: "Acme", Role: "Manager"},
		"employee@acme.com": {Email: "employee@acme.com", Name: "Eva", Company: "Acme", Role: "Employee"},
		"admin@globex.com":  {Email: "admin@globex.com", Name: "Gus", Company: "Globex", Role: "Admin"},
		"raro@acme.com":     {Email: "raro@acme.com", Name: "Rex", Company: "Acme", Role: "root"},
	}}
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"c-acme": {
			ID: "c-acme", UserEmail: "admin@acme.com", Company: "Acme",
			Name: "Cliente Acme", Email: "cliente@acme-candidates.io",
			AppliedPosition: "Backend", Salary: decimal.NewFromInt(50000),
		},
		"c-globex": {
			ID: "c-globex", UserEmail: "admin@globex.com", Company: "Globex",
			Name: "Cliente Globex", Email: "cliente@globex-candidates.io",
			AppliedPosition: "Frontend", Salary: decimal.NewFromInt(60000),
		},
	}}
	svc := access.NewService(users)
	return &fixture{
		users:     users,
		customers: customers,
		uc:        usecase.NewCustomerUseCase(customers, svc),
	}
}

func validCreate() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:            "Nuevo",
		Email:           "nuevo@x.io",
		AppliedPosition: "QA",
		Salary:          decimal.NewFromInt(40000),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// La empresa del cliente se copia siempre del documento del creador.
func TestCustomerCreate_DenormalizaEmpresaDelCreador(t *testing.T) {
	fx := newFixture()

	resp, err := fx.uc.Create(context.Background(), "manager@acme.com", validCreate())
	require.NoError(t, err)
	assert.Equal(t, "Acme", resp.Company)
	assert.Equal(t, "manager@acme.com", resp.UserEmail)

	stored := fx.customers.customers[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "Acme", stored.Company)
}

// Employee solo tiene "view": el alta está prohibida.
func TestCustomerCreate_EmployeeProhibido(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.Create(context.Background(), "employee@acme.com", validCreate())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Un rol corrupto en el documento cae a Employee: también prohibido.
func TestCustomerCreate_RolDesconocidoProhibido(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.Create(context.Background(), "raro@acme.com", validCreate())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCustomerCreate_CamposObligatorios(t *testing.T) {
	fx := newFixture()
	reqs := []dto.CreateCustomerRequest{
		{Email: "x@y.io", AppliedPosition: "QA", Salary: decimal.NewFromInt(1)},
		{Name: "N", AppliedPosition: "QA", Salary: decimal.NewFromInt(1)},
		{Name: "N", Email: "x@y.io", Salary: decimal.NewFromInt(1)},
		{Name: "N", Email: "x@y.io", AppliedPosition: "QA"}, // salario cero
	}
	for _, req := range reqs {
		_, err := fx.uc.Create(context.Background(), "admin@acme.com", req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// List — alcance de tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerList_AdminSoloVeSuEmpresa(t *testing.T) {
	fx := newFixture()

	list, err := fx.uc.List(context.Background(), "admin@acme.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Company)
}

func TestCustomerList_SuperAdminVeTodo(t *testing.T) {
	fx := newFixture()

	list, err := fx.uc.List(context.Background(), "super@corp.io")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// Employee puede ver: "view" es la única capacidad del rol.
func TestCustomerList_EmployeePuedeVer(t *testing.T) {
	fx := newFixture()

	list, err := fx.uc.List(context.Background(), "employee@acme.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete — enmascaramiento entre empresas
// ──────────────────────────────────────────────────────────────────────────────

func upd() dto.UpdateCustomerRequest {
	return dto.UpdateCustomerRequest{
		Name: "Editado", AppliedPosition: "SRE", Salary: decimal.NewFromInt(70000),
	}
}

func TestCustomerUpdate_MismaEmpresa(t *testing.T) {
	fx := newFixture()

	err := fx.uc.Update(context.Background(), "admin@acme.com", "cliente@acme-candidates.io", upd())
	require.NoError(t, err)
	assert.Equal(t, "Editado", fx.customers.customers["c-acme"].Name)
	assert.True(t, decimal.NewFromInt(70000).Equal(fx.customers.customers["c-acme"].Salary))
}

// Un registro de otra empresa responde "no encontrado", nunca "prohibido":
// la respuesta no debe revelar que el registro existe.
func TestCustomerUpdate_OtraEmpresaEnmascaradaComoNotFound(t *testing.T) {
	fx := newFixture()

	err := fx.uc.Update(context.Background(), "admin@acme.com", "cliente@globex-candidates.io", upd())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Cliente Globex", fx.customers.customers["c-globex"].Name, "el registro ajeno no debe tocarse")
}

func TestCustomerUpdate_SuperAdminCruzaEmpresas(t *testing.T) {
	fx := newFixture()

	err := fx.uc.Update(context.Background(), "super@corp.io", "cliente@globex-candidates.io", upd())
	require.NoError(t, err)
	assert.Equal(t, "Editado", fx.customers.customers["c-globex"].Name)
}

func TestCustomerUpdate_EmployeeProhibido(t *testing.T) {
	fx := newFixture()
	err := fx.uc.Update(context.Background(), "employee@acme.com", "cliente@acme-candidates.io", upd())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Manager puede editar pero no borrar.
func TestCustomerDelete_ManagerProhibido(t *testing.T) {
	fx := newFixture()

	require.NoError(t, fx.uc.Update(context.Background(), "manager@acme.com", "cliente@acme-candidates.io", upd()))

	err := fx.uc.Delete(context.Background(), "manager@acme.com", "cliente@acme-candidates.io")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCustomerDelete_MismaEmpresa(t *testing.T) {
	fx := newFixture()

	require.NoError(t, fx.uc.Delete(context.Background(), "admin@acme.com", "cliente@acme-candidates.io"))
	assert.NotContains(t, fx.customers.customers, "c-acme")
}

func TestCustomerDelete_OtraEmpresaEnmascaradaComoNotFound(t *testing.T) {
	fx := newFixture()

	err := fx.uc.Delete(context.Background(), "admin@acme.com", "cliente@globex-candidates.io")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, fx.customers.customers, "c-globex")
}

func TestCustomerDelete_InexistenteNotFound(t *testing.T) {
	fx := newFixture()
	err := fx.uc.Delete(context.Background(), "admin@acme.com", "nadie@x.io")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El rol se consulta fresco en cada llamada: una degradación aplica en la
// siguiente petición sin reemitir el token.
func TestCustomerDelete_DegradacionAplicaDeInmediato(t *testing.T) {
	fx := newFixture()

	require.NoError(t, fx.users.UpdateRole(context.Background(), "admin@acme.com", "Employee"))

	err := fx.uc.Delete(context.Background(), "admin@acme.com", "cliente@acme-candidates.io")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
