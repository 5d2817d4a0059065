package utils

import (
	"gopkg.in/gomail.v2"

	"github.com/juancarlosvazquez23-del/Escudero/internal/config"
)

// Mailer sends notification emails over SMTP. NewMailer returns nil unless
// the SMTP settings and a recipient are fully configured, and callers treat
// a nil Mailer as notifications-off.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewMailer(cfg config.Config) *Mailer {
	if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" || cfg.NotifyEmail == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPUsername,
		to:     cfg.NotifyEmail,
	}
}

func (m *Mailer) Send(subject string, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}
