package email

import (
	"campus_backend/internal/config"
	"campus_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through the configured SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NoopProvider is used when SMTP is not configured. It logs instead of
// sending so account approval still succeeds in environments without a relay.
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, _ string) error {
	logger.Debug("Email delivery skipped (SMTP not configured)", "to", to, "subject", subject)
	return nil
}

// NewProvider picks the SMTP provider when a relay host is configured and
// falls back to the no-op provider otherwise.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.SMTPHost == "" {
		return NoopProvider{}
	}
	return NewSMTPProvider(cfg)
}
