package email

import (
	"context"
	"fmt"

	"skaters_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the mail server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPNotifier sends notifications through an SMTP server.
type SMTPNotifier struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// NewNotifier returns an SMTP notifier, or a no-op one when host is empty.
func NewNotifier(cfg SMTPConfig) Notifier {
	if cfg.Host == "" {
		return NoopNotifier{}
	}
	return NewSMTPNotifier(cfg)
}

func (n *SMTPNotifier) NotifyApproval(ctx context.Context, skater *models.Skater) error {
	body, err := renderApproval(skater)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", skater.Email)
	m.SetHeader("Subject", "Your registration has been approved")
	m.SetBody("text/html", body)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send approval mail to skater %d: %w", skater.ID, err)
	}
	return nil
}
