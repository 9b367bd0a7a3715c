// Package email sends transactional mail for review decisions.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"siteworks_backend/internal/config"
	"siteworks_backend/internal/logger"
)

// Provider delivers review-decision notifications. Delivery is best effort:
// a failed send is logged and never blocks or reverses the decision itself.
type Provider interface {
	SendDecision(to, firstName string, approved bool) error
}

// SMTPProvider sends mail through a plain SMTP relay via gomail.
type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPProvider(cfg config.EmailConfig) *SMTPProvider {
	return &SMTPProvider{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.From,
	}
}

func (p *SMTPProvider) SendDecision(to, firstName string, approved bool) error {
	subject := "Your account has been approved"
	body := fmt.Sprintf("Hi %s,\n\nYour account has been approved. You can now sign in and access your dashboard.\n", firstName)
	if !approved {
		subject = "Your account application was rejected"
		body = fmt.Sprintf("Hi %s,\n\nYour account application was rejected. Please contact support if you believe this is a mistake.\n", firstName)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send decision email: %w", err)
	}
	return nil
}

// NoopProvider drops mail. Used when SMTP is not configured.
type NoopProvider struct{}

func (NoopProvider) SendDecision(to, _ string, approved bool) error {
	logger.Debug("email not configured, dropping decision notification",
		"to", to, "approved", approved)
	return nil
}
