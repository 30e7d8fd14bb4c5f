package access

import (
	"context"
	"fmt"

	"github.com/talentbase/crm-api/internal/domain/entity"
)

// UserDirectory lo mínimo que el servicio necesita del almacén de usuarios.
// Devuelve (nil, nil) cuando la cuenta no existe.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// Service evalúa permisos y alcance de tenant para un llamador.
//
// El rol y la empresa se consultan frescos en cada llamada, nunca se
// cachean: un cambio de rol o de empresa aplica en la siguiente petición.
type Service struct {
	users UserDirectory
}

// NewService construye el servicio de control de acceso.
func NewService(users UserDirectory) *Service {
	return &Service{users: users}
}

// UserFor devuelve el documento actual del usuario, o (nil, nil) si no
// existe. Consulta directa, sin caché.
func (s *Service) UserFor(ctx context.Context, userEmail string) (*entity.User, error) {
	return s.users.GetByEmail(ctx, userEmail)
}

// RoleFor resuelve el rol actual del usuario. Cuenta inexistente o sin rol
// cae a Employee (fail-closed); un fallo del almacén sí es error.
func (s *Service) RoleFor(ctx context.Context, userEmail string) (Role, error) {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		return RoleEmployee, fmt.Errorf("resolver rol de %s: %w", userEmail, err)
	}
	if user == nil {
		return RoleEmployee, nil
	}
	return ParseRole(user.Role), nil
}

// CheckAccess responde si el llamador puede ejecutar la acción según la
// matriz estática. Acciones desconocidas deniegan siempre.
func (s *Service) CheckAccess(ctx context.Context, userEmail string, action Action) (bool, error) {
	role, err := s.RoleFor(ctx, userEmail)
	if err != nil {
		return false, err
	}
	return Can(role, action), nil
}

// ScopeFor construye el alcance de tenant del llamador: SuperAdmin opera
// sobre toda la colección, el resto queda restringido a su empresa actual.
func (s *Service) ScopeFor(ctx context.Context, userEmail string) (Scope, error) {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		return Scope{}, fmt.Errorf("resolver alcance de %s: %w", userEmail, err)
	}
	if user == nil {
		return Scope{}, nil
	}
	return ScopeForRole(ParseRole(user.Role), user.Company), nil
}
