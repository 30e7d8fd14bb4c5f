package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/talentbase/crm-api/internal/domain/access"
	"github.com/talentbase/crm-api/internal/domain/entity"
	"github.com/talentbase/crm-api/internal/domain/repository"
	"github.com/talentbase/crm-api/pkg/logger"
)

// OwnerSeed atributos fijos de la cuenta propietaria.
type OwnerSeed struct {
	Email    string
	Name     string
	Company  string
	Password string
}

// Bootstrap rutinas de arranque sobre el almacén ya conectado.
// Idempotentes: ejecutarlas dos veces deja el mismo estado final.
type Bootstrap struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	owner        OwnerSeed
	log          *logger.Logger
}

// NewBootstrap construye las rutinas de arranque.
func NewBootstrap(userRepo repository.UserRepository, customerRepo repository.CustomerRepository, owner OwnerSeed, log *logger.Logger) *Bootstrap {
	return &Bootstrap{userRepo: userRepo, customerRepo: customerRepo, owner: owner, log: log}
}

// Run ejecuta las rutinas en orden: privilegios del propietario y backfill
// de Company en clientes antiguos.
func (b *Bootstrap) Run(ctx context.Context) error {
	if err := b.EnsureSuperAdmin(ctx); err != nil {
		return err
	}
	return b.BackfillCustomerCompanies(ctx)
}

// EnsureSuperAdmin garantiza que la cuenta propietaria existe y conserva el
// rol SuperAdmin. La administrabilidad del sistema se auto-repara en cada
// arranque aunque alguien haya tocado el documento a mano.
func (b *Bootstrap) EnsureSuperAdmin(ctx context.Context) error {
	user, err := b.userRepo.GetByEmail(ctx, b.owner.Email)
	if err != nil {
		return fmt.Errorf("buscar cuenta propietaria: %w", err)
	}

	switch {
	case user == nil:
		seed := &entity.User{
			ID:        uuid.New().String(),
			Name:      b.owner.Name,
			Email:     b.owner.Email,
			Password:  b.owner.Password,
			Company:   b.owner.Company,
			Role:      string(access.RoleSuperAdmin),
			DarkMode:  false,
			CreatedAt: time.Now(),
		}
		if err := b.userRepo.Create(ctx, seed); err != nil {
			return fmt.Errorf("crear cuenta propietaria: %w", err)
		}
		b.log.Info().Str("email", b.owner.Email).Msg("cuenta SuperAdmin creada automáticamente")
	case user.Role != string(access.RoleSuperAdmin):
		if err := b.userRepo.UpdateRole(ctx, b.owner.Email, string(access.RoleSuperAdmin)); err != nil {
			return fmt.Errorf("restaurar rol SuperAdmin: %w", err)
		}
		b.log.Info().Str("email", b.owner.Email).Msg("rol SuperAdmin restaurado en la cuenta propietaria")
	default:
		b.log.Debug().Msg("cuenta SuperAdmin verificada")
	}
	return nil
}

// BackfillCustomerCompanies asigna Company a los clientes que no la tienen,
// tomando la empresa actual del usuario que los creó. Mantiene el invariante
// de que Company nunca queda vacío en la colección.
func (b *Bootstrap) BackfillCustomerCompanies(ctx context.Context) error {
	missing, err := b.customerRepo.ListMissingCompany(ctx)
	if err != nil {
		return fmt.Errorf("listar clientes sin empresa: %w", err)
	}

	updated := 0
	for _, c := range missing {
		creator, err := b.userRepo.GetByEmail(ctx, c.UserEmail)
		if err != nil {
			return fmt.Errorf("buscar creador de cliente %s: %w", c.ID, err)
		}
		if creator == nil || creator.Company == "" {
			continue
		}
		if err := b.customerRepo.SetCompany(ctx, c.ID, creator.Company); err != nil {
			return fmt.Errorf("asignar empresa a cliente %s: %w", c.ID, err)
		}
		updated++
	}
	if updated > 0 {
		b.log.Info().Int("updated", updated).Msg("clientes backfilled con Company")
	}
	return nil
}
