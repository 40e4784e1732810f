package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/macmobile/carwash/config"
	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("mail credentials are not configured")

// Message is a single HTML email.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Mailer is the outbound mail transport.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers mail through an SMTP relay. Port 465 uses implicit TLS,
// other ports upgrade with STARTTLS when the server offers it. No timeout is
// set beyond the dialer's own default.
type SMTPSender struct {
	from       string
	configured bool
	send       func(...*gomail.Message) error
}

func NewSender(cfg config.MailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.Server, cfg.Port, cfg.Username, cfg.Password)
	if cfg.UseSSL {
		dialer.SSL = true
	}
	return &SMTPSender{
		from:       cfg.Sender,
		configured: cfg.Configured(),
		send:       dialer.DialAndSend,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if !s.configured {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.send(m); err != nil {
		return fmt.Errorf("smtp send %q: %w", msg.Subject, err)
	}
	return nil
}

var _ Mailer = (*SMTPSender)(nil)
