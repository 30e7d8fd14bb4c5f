package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/talentbase/crm-api/pkg/config"
)

// SMTPMailer envía correo por SMTP. Envío síncrono, sin confirmación de
// entrega más allá del resultado de la llamada.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer construye el transporte con la configuración dada.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send entrega un mensaje de texto plano al destinatario.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Sender())
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
