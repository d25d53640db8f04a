package mail

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/havenridge/leasing/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIME(t *testing.T) {
	msg := Message{
		From:    "Leasing <leasing@example.com>",
		To:      []string{"office@example.com"},
		ReplyTo: "jane@example.com",
		Subject: "New inquiry from Jane",
		HTML:    "<p>Hello</p>",
		Text:    "Hello",
	}
	raw, err := buildMIME(msg, "<id@example.com>", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	parsed, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", parsed.Header.Get("Reply-To"))
	assert.Equal(t, "<id@example.com>", parsed.Header.Get("Message-ID"))

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	mr := multipart.NewReader(parsed.Body, params["boundary"])
	var types, bodies []string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		b, err := io.ReadAll(part)
		require.NoError(t, err)
		types = append(types, part.Header.Get("Content-Type"))
		bodies = append(bodies, string(b))
	}
	assert.Equal(t, []string{"text/plain; charset=UTF-8", "text/html; charset=UTF-8"}, types)
	assert.Equal(t, []string{"Hello", "<p>Hello</p>"}, bodies)
}

func TestNewSelectsTransport(t *testing.T) {
	tr, err := New(config.MailConfig{})
	require.NoError(t, err)
	assert.Equal(t, "noop", tr.Name())

	tr, err = New(config.MailConfig{Enable: true, ResendKey: "re_123"})
	require.NoError(t, err)
	assert.Equal(t, "resend", tr.Name())

	tr, err = New(config.MailConfig{Enable: true, SMTP: config.SMTPConfig{Host: "smtp.example.com"}})
	require.NoError(t, err)
	assert.Equal(t, "smtp", tr.Name())

	_, err = New(config.MailConfig{Enable: true})
	assert.Error(t, err)
}

func TestNoopRejectsMissingRecipient(t *testing.T) {
	_, err := NoopTransport{}.Send(context.Background(), Message{Subject: "x"})
	assert.ErrorIs(t, err, errNoRecipients)

	r, err := NoopTransport{}.Send(context.Background(), Message{To: []string{"a@example.com"}})
	require.NoError(t, err)
	assert.NotEmpty(t, r.MessageID)
}
