package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/internal/domain"
	"github.com/talentbase/crm-api/internal/domain/access"
	"github.com/talentbase/crm-api/internal/domain/entity"
	"github.com/talentbase/crm-api/internal/domain/repository"
	"github.com/talentbase/crm-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y segundo
// factor OTP por correo.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	otpStore   OTPStore
	mailer     Mailer
	ownerEmail string
	otpTTL     time.Duration
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, otpStore OTPStore, mailer Mailer, ownerEmail string, otpTTL time.Duration, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		otpStore:   otpStore,
		mailer:     mailer,
		ownerEmail: ownerEmail,
		otpTTL:     otpTTL,
		jwtCfg:     jwtCfg,
	}
}

// Register crea un usuario. El rol por defecto es Employee; solo el email
// propietario recibe SuperAdmin. La contraseña se guarda tal cual llega:
// el esquema histórico de la colección no está hasheado y el login debe
// seguir comparando en texto plano.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Company == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := string(access.RoleEmployee)
	if in.Email == uc.ownerEmail {
		role = string(access.RoleSuperAdmin)
	}

	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		Company:   in.Company,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Message: fmt.Sprintf("Registered successfully with role: %s", role),
		Role:    role,
	}, nil
}

// Login verifica email/contraseña (primer factor). No emite sesión: el
// llamador debe completar la verificación OTP.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Password != in.Password {
		return nil, domain.ErrInvalidCredentials
	}
	return &dto.LoginResponse{Message: "OTP required", Name: user.Name}, nil
}

// SendOTP genera un código de 6 dígitos, lo guarda con TTL (sobrescribiendo
// cualquier código anterior del mismo email) y lo envía por correo.
func (uc *AuthUseCase) SendOTP(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("generar OTP: %w", err)
	}
	if err := uc.otpStore.Set(ctx, email, code, uc.otpTTL); err != nil {
		return fmt.Errorf("guardar OTP: %w", err)
	}
	body := fmt.Sprintf("Hi %s, your OTP is %s", user.Name, code)
	if err := uc.mailer.Send(email, "Your OTP Code", body); err != nil {
		return fmt.Errorf("%w: envío de OTP: %v", domain.ErrUnavailable, err)
	}
	return nil
}

// VerifyOTP compara el código recibido con el vigente. Si coincide elimina
// la entrada (un código se consume una sola vez) y emite el token de sesión.
func (uc *AuthUseCase) VerifyOTP(ctx context.Context, in dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	stored, err := uc.otpStore.Get(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("leer OTP: %w", err)
	}
	if stored == "" || stored != in.OTP {
		return nil, domain.ErrInvalidOTP
	}
	if err := uc.otpStore.Delete(ctx, in.Email); err != nil {
		return nil, fmt.Errorf("consumir OTP: %w", err)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, user.Company, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.VerifyOTPResponse{
		Success: true,
		Message: "OTP verified!",
		Name:    user.Name,
		Token:   token,
	}, nil
}

// generateOTP devuelve un código numérico de 6 dígitos (100000–999999).
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
