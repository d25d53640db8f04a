package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/havenridge/leasing/internal/config"
)

// Message is a single email to send. HTML and Text are sent together as
// multipart/alternative where the transport supports it.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Receipt is what a transport reports for an accepted message.
type Receipt struct {
	MessageID string
}

// Transport hands a message to a mail provider.
type Transport interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
	Name() string
}

var (
	errNoRecipients = errors.New("mail: message has no recipients")
	errNoSMTPHost   = errors.New("mail: smtp host is not configured")
)

// New picks the transport for cfg: disabled mail is a no-op, a Resend key
// selects Resend, otherwise SMTP.
func New(cfg config.MailConfig) (Transport, error) {
	if !cfg.Enable {
		return NoopTransport{}, nil
	}
	if strings.TrimSpace(cfg.ResendKey) != "" {
		return NewResendTransport(cfg.ResendKey, cfg.From), nil
	}
	if strings.TrimSpace(cfg.SMTP.Host) == "" {
		return nil, errNoSMTPHost
	}
	return NewSMTPTransport(SMTPConfig{
		Host: cfg.SMTP.Host,
		Port: cfg.SMTP.Port,
		User: cfg.SMTP.User,
		Pass: cfg.SMTP.Pass,
		From: cfg.From,
	}), nil
}

func validate(msg Message) error {
	if len(msg.To) == 0 {
		return errNoRecipients
	}
	for _, to := range msg.To {
		if strings.TrimSpace(to) == "" {
			return errNoRecipients
		}
	}
	if strings.ContainsAny(msg.Subject, "\r\n") {
		return fmt.Errorf("mail: subject contains a line break")
	}
	return nil
}
