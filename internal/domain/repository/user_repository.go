package repository

import (
	"context"

	"github.com/talentbase/crm-api/internal/domain/entity"
)

// UserRepository acceso a la colección de usuarios.
// GetByEmail devuelve (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateRole(ctx context.Context, email, role string) error
	SetDarkMode(ctx context.Context, email string, dark bool) error
}
