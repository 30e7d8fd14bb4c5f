package auth

import (
	"context"
	"time"
)

// OTPStore almacén clave-valor de códigos OTP con vigencia por entrada.
// Invariante: a lo sumo un código vivo por email; Set sobrescribe el
// anterior (reenvío = last-write-wins).
type OTPStore interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) error
	// Get devuelve ("", nil) si no hay código vivo para el email.
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// Mailer transporte de correo saliente. Envío síncrono sin confirmación de
// entrega más allá del resultado de la llamada.
type Mailer interface {
	Send(to, subject, body string) error
}
