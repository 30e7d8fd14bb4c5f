package dto

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

// RegisterResponse confirmación de alta con el rol asignado.
type RegisterResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

// LoginRequest primer factor: email y contraseña.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse el login correcto no abre sesión: exige el segundo factor.
type LoginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// SendOTPRequest solicita (o reenvía) el código al correo.
type SendOTPRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest segundo factor.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyOTPResponse verificación correcta: se emite el token de sesión.
type VerifyOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Token   string `json:"token,omitempty"`
}
