package repository

import (
	"context"

	"github.com/talentbase/crm-api/internal/domain/access"
	"github.com/talentbase/crm-api/internal/domain/entity"
)

// CustomerRepository acceso a la colección de clientes.
//
// List/UpdateByEmail/DeleteByEmail reciben el Scope del llamador: con
// Scope.All operan sobre toda la colección; si no, el filtro queda fijado a
// Scope.Company. Update y Delete informan si hubo coincidencia para que la
// capa superior distinga "no encontrado" sin filtrar la existencia de
// registros de otras empresas.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context, scope access.Scope) ([]*entity.Customer, error)
	// UpdateByEmail aplica Name, AppliedPosition y Salary de upd al cliente
	// con ese Email dentro del alcance.
	UpdateByEmail(ctx context.Context, email string, scope access.Scope, upd *entity.Customer) (matched bool, err error)
	DeleteByEmail(ctx context.Context, email string, scope access.Scope) (deleted bool, err error)
	ListMissingCompany(ctx context.Context) ([]*entity.Customer, error)
	SetCompany(ctx context.Context, id, company string) error
}
