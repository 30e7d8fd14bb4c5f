package usecase

import (
	"context"

	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/internal/domain"
	"github.com/talentbase/crm-api/internal/domain/repository"
)

// SettingsUseCase perfil y preferencias del propio usuario.
type SettingsUseCase struct {
	userRepo repository.UserRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(userRepo repository.UserRepository) *SettingsUseCase {
	return &SettingsUseCase{userRepo: userRepo}
}

// Profile devuelve el perfil del usuario. La contraseña nunca sale de aquí.
func (uc *SettingsUseCase) Profile(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UserResponse{
		Name:      user.Name,
		Email:     user.Email,
		Company:   user.Company,
		Role:      user.Role,
		DarkMode:  user.DarkMode,
		CreatedAt: user.CreatedAt,
	}, nil
}

// SetDarkMode persiste la preferencia de tema del usuario.
func (uc *SettingsUseCase) SetDarkMode(ctx context.Context, email string, dark bool) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.SetDarkMode(ctx, email, dark)
}
