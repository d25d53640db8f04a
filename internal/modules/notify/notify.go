package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/havenridge/leasing/internal/config"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/pkg/mail"
	"go.uber.org/zap"
)

// Result is the outcome of one send attempt. Confirmation is set only when
// a visitor confirmation was attempted.
type Result struct {
	Success      bool    `json:"success"`
	MessageID    string  `json:"messageId,omitempty"`
	Error        string  `json:"error,omitempty"`
	Transport    string  `json:"transport,omitempty"`
	Confirmation *Result `json:"confirmation,omitempty"`
}

// Notifier emails the leasing office about contact submissions.
type Notifier struct {
	transport        mail.Transport
	from             string
	notifyTo         string
	sendConfirmation bool
	log              *zap.Logger
}

func New(transport mail.Transport, cfg config.MailConfig, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{
		transport:        transport,
		from:             cfg.From,
		notifyTo:         strings.TrimSpace(cfg.NotifyTo),
		sendConfirmation: cfg.SendConfirmation,
		log:              log,
	}
}

// Notify sends the operator notification and, when enabled, the visitor
// confirmation. It never returns an error; failures are reported in Result.
func (n *Notifier) Notify(ctx context.Context, sub *models.ContactSubmissionModel) Result {
	rendered, err := RenderNotification(sub)
	if err != nil {
		return Result{Error: err.Error()}
	}
	res := n.send(ctx, mail.Message{
		From:    n.from,
		To:      []string{n.notifyTo},
		ReplyTo: strings.TrimSpace(sub.Email),
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
	if n.sendConfirmation {
		confirm := n.Confirm(ctx, sub)
		res.Confirmation = &confirm
	}
	return res
}

// Confirm sends the acknowledgement email to the visitor.
func (n *Notifier) Confirm(ctx context.Context, sub *models.ContactSubmissionModel) Result {
	rendered, err := RenderConfirmation(sub)
	if err != nil {
		return Result{Error: err.Error()}
	}
	return n.send(ctx, mail.Message{
		From:    n.from,
		To:      []string{strings.TrimSpace(sub.Email)},
		ReplyTo: n.notifyTo,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
}

func (n *Notifier) send(ctx context.Context, msg mail.Message) (res Result) {
	res.Transport = n.transport.Name()
	defer func() {
		if r := recover(); r != nil {
			res = Result{Transport: res.Transport, Error: fmt.Sprintf("transport panic: %v", r)}
			n.log.Error("mail transport panicked", zap.Any("panic", r), zap.Strings("to", msg.To))
		}
	}()

	receipt, err := n.transport.Send(ctx, msg)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	res.MessageID = receipt.MessageID
	n.log.Debug("mail sent",
		zap.String("transport", res.Transport),
		zap.String("subject", msg.Subject),
		zap.String("message_id", receipt.MessageID),
	)
	return res
}
