package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/internal/domain"
	"github.com/talentbase/crm-api/internal/domain/access"
	"github.com/talentbase/crm-api/internal/domain/entity"
	"github.com/talentbase/crm-api/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes con control de acceso y alcance de tenant
// en cada operación. El permiso y la empresa del llamador se resuelven
// frescos por llamada a través del servicio de acceso.
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	access *access.Service
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, accessSvc *access.Service) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, access: accessSvc}
}

// Create da de alta un cliente (requiere la acción "add"). Company se copia
// de la empresa actual del usuario creador.
func (uc *CustomerUseCase) Create(ctx context.Context, callerEmail string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" || in.AppliedPosition == "" || in.Salary.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.access.CheckAccess(ctx, callerEmail, access.ActionAdd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}

	// La empresa se copia siempre del documento del creador, sea cual sea
	// su rol: así el registro queda particionado desde el alta.
	company, err := uc.callerCompany(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ID:              uuid.New().String(),
		UserEmail:       callerEmail,
		Company:         company,
		Name:            in.Name,
		Email:           in.Email,
		AppliedPosition: in.AppliedPosition,
		Salary:          in.Salary,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List devuelve los clientes visibles para el llamador (acción "view"):
// todos para SuperAdmin, los de su empresa para el resto.
func (uc *CustomerUseCase) List(ctx context.Context, callerEmail string) ([]*dto.CustomerResponse, error) {
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
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update modifica un cliente por su Email (acción "edit"). Para llamadores
// que no son SuperAdmin el filtro exige (Email, Company): un registro de
// otra empresa responde "no encontrado", nunca "prohibido", para no revelar
// su existencia.
func (uc *CustomerUseCase) Update(ctx context.Context, callerEmail, customerEmail string, in dto.UpdateCustomerRequest) error {
	ok, err := uc.access.CheckAccess(ctx, callerEmail, access.ActionEdit)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	scope, err := uc.access.ScopeFor(ctx, callerEmail)
	if err != nil {
		return err
	}
	matched, err := uc.repo.UpdateByEmail(ctx, customerEmail, scope, &entity.Customer{
		Name:            in.Name,
		AppliedPosition: in.AppliedPosition,
		Salary:          in.Salary,
	})
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por su Email (acción "delete"), con la misma
// regla de alcance y enmascaramiento que Update.
func (uc *CustomerUseCase) Delete(ctx context.Context, callerEmail, customerEmail string) error {
	ok, err := uc.access.CheckAccess(ctx, callerEmail, access.ActionDelete)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	scope, err := uc.access.ScopeFor(ctx, callerEmail)
	if err != nil {
		return err
	}
	deleted, err := uc.repo.DeleteByEmail(ctx, customerEmail, scope)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *CustomerUseCase) callerCompany(ctx context.Context, callerEmail string) (string, error) {
	user, err := uc.access.UserFor(ctx, callerEmail)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Company, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:              c.ID,
		UserEmail:       c.UserEmail,
		Company:         c.Company,
		Name:            c.Name,
		Email:           c.Email,
		AppliedPosition: c.AppliedPosition,
		Salary:          c.Salary,
		CreatedAt:       c.CreatedAt,
	}
}
