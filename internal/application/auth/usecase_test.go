package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbase/crm-api/internal/application/auth"
	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/internal/domain"
	"github.com/talentbase/crm-api/internal/domain/entity"
	infraotp "github.com/talentbase/crm-api/internal/infrastructure/otp"
	pkgjwt "github.com/talentbase/crm-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	testOwnerEmail = "owner@corp.io"
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testIssuer     = "talentbase-test"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.users[u.Email] = &cp
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
	u, ok := r.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) SetDarkMode(_ context.Context, email string, dark bool) error {
	u, ok := r.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.DarkMode = dark
	return nil
}

type fakeMailer struct {
	to, subject, body string
	sent              int
	fail              bool
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.fail {
		return errors.New("smtp caído")
	}
	m.to, m.subject, m.body = to, subject, body
	m.sent++
	return nil
}

func buildAuthUC(repo *fakeUserRepo, mailer *fakeMailer) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, infraotp.NewMemoryStore(), mailer, testOwnerEmail, 0, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

func registerUser(t *testing.T, uc *auth.AuthUseCase, email string) {
	t.Helper()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Test User", Email: email, Password: "secret", Company: "Acme",
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Caso base: un registro normal recibe el rol de menor privilegio.
func TestRegister_RolPorDefectoEmployee(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo, &fakeMailer{})

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Ana", Email: "ana@acme.com", Password: "pw", Company: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "Employee", resp.Role)
	assert.Equal(t, "Registered successfully with role: Employee", resp.Message)

	stored, _ := repo.GetByEmail(context.Background(), "ana@acme.com")
	require.NotNil(t, stored)
	assert.Equal(t, "Employee", stored.Role)
	assert.NotEmpty(t, stored.ID)
}

// Solo el email propietario recibe SuperAdmin en el registro.
func TestRegister_PropietarioRecibeSuperAdmin(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo(), &fakeMailer{})

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Owner", Email: testOwnerEmail, Password: "pw", Company: "Corp",
	})
	require.NoError(t, err)
	assert.Equal(t, "SuperAdmin", resp.Role)
}

func TestRegister_EmailDuplicadoRechazado(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo(), &fakeMailer{})
	registerUser(t, uc, "ana@acme.com")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Otra", Email: "ana@acme.com", Password: "pw", Company: "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposObligatorios(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo(), &fakeMailer{})
	reqs := []dto.RegisterRequest{
		{Email: "a@b.co", Password: "pw", Company: "Acme"}, // sin nombre
		{Name: "Ana", Password: "pw", Company: "Acme"},     // sin email
		{Name: "Ana", Email: "a@b.co", Company: "Acme"},    // sin contraseña
		{Name: "Ana", Email: "a@b.co", Password: "pw"},     // sin empresa
	}
	for _, req := range reqs {
		_, err := uc.Register(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login (primer factor)
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectasPidenOTP(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo(), &fakeMailer{})
	registerUser(t, uc, "ana@acme.com")

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "OTP required", resp.Message, "el login correcto no abre sesión")
	assert.Equal(t, "Test User", resp.Name)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo(), &fakeMailer{})
	registerUser(t, uc, "ana@acme.com")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Usuario inexistente y contraseña incorrecta devuelven el mismo error:
// el login no debe revelar qué emails existen.
func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo(), &fakeMailer{})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@x.io", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// OTP (segundo factor)
// ──────────────────────────────────────────────────────────────────────────────

// otpFromMail extrae el código de 6 dígitos del cuerpo "...your OTP is NNNNNN".
func otpFromMail(t *testing.T, body string) string {
	t.Helper()
	require.GreaterOrEqual(t, len(body), 6)
	return body[len(body)-6:]
}

func TestSendOTP_EnviaCodigoDeSeisDigitos(t *testing.T) {
	mailer := &fakeMailer{}
	uc := buildAuthUC(newFakeUserRepo(), mailer)
	registerUser(t, uc, "ana@acme.com")

	require.NoError(t, uc.SendOTP(context.Background(), "ana@acme.com"))

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "ana@acme.com", mailer.to)
	assert.Equal(t, "Your OTP Code", mailer.subject)
	code := otpFromMail(t, mailer.body)
	assert.Regexp(t, `^\d{6}$`, code, "el código debe ser numérico de 6 dígitos")
	assert.Contains(t, mailer.body, "Hi Test User")
}

func TestSendOTP_UsuarioInexistente(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo(), &fakeMailer{})
	err := uc.SendOTP(context.Background(), "nadie@x.io")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSendOTP_FalloDeCorreo(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo(), &fakeMailer{fail: true})
	// El registro no envía correo, así que el fallo solo aparece en SendOTP.
	registerUser(t, uc, "ana@acme.com")

	err := uc.SendOTP(context.Background(), "ana@acme.com")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestVerifyOTP_CorrectoEmiteToken(t *testing.T) {
	mailer := &fakeMailer{}
	uc := buildAuthUC(newFakeUserRepo(), mailer)
	registerUser(t, uc, "ana@acme.com")
	require.NoError(t, uc.SendOTP(context.Background(), "ana@acme.com"))

	resp, err := uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{
		Email: "ana@acme.com",
		OTP:   otpFromMail(t, mailer.body),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "OTP verified!", resp.Message)
	require.NotEmpty(t, resp.Token)

	// El token lleva la identidad completa del usuario.
	email, company, role, err := pkgjwt.Parse(testJWTSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.com", email)
	assert.Equal(t, "Acme", company)
	assert.Equal(t, "Employee", role)
}

func TestVerifyOTP_CodigoIncorrecto(t *testing.T) {
	mailer := &fakeMailer{}
	uc := buildAuthUC(newFakeUserRepo(), mailer)
	registerUser(t, uc, "ana@acme.com")
	require.NoError(t, uc.SendOTP(context.Background(), "ana@acme.com"))

	_, err := uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: "ana@acme.com", OTP: "000000"})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}

// Un código se consume una sola vez: la segunda verificación falla.
func TestVerifyOTP_CodigoConsumido(t *testing.T) {
	mailer := &fakeMailer{}
	uc := buildAuthUC(newFakeUserRepo(), mailer)
	registerUser(t, uc, "ana@acme.com")
	require.NoError(t, uc.SendOTP(context.Background(), "ana@acme.com"))
	code := otpFromMail(t, mailer.body)

	_, err := uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: "ana@acme.com", OTP: code})
	require.NoError(t, err)

	_, err = uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: "ana@acme.com", OTP: code})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}

// Reenviar invalida el código anterior: last-write-wins.
func TestVerifyOTP_ReenvioSobrescribe(t *testing.T) {
	mailer := &fakeMailer{}
	uc := buildAuthUC(newFakeUserRepo(), mailer)
	registerUser(t, uc, "ana@acme.com")

	require.NoError(t, uc.SendOTP(context.Background(), "ana@acme.com"))
	first := otpFromMail(t, mailer.body)
	require.NoError(t, uc.SendOTP(context.Background(), "ana@acme.com"))
	second := otpFromMail(t, mailer.body)

	if first != second {
		_, err := uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: "ana@acme.com", OTP: first})
		assert.ErrorIs(t, err, domain.ErrInvalidOTP, "el código antiguo debe quedar invalidado")
	}
	resp, err := uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: "ana@acme.com", OTP: second})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestVerifyOTP_SinCodigoPendiente(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo(), &fakeMailer{})
	registerUser(t, uc, "ana@acme.com")

	_, err := uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: "ana@acme.com", OTP: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}
