package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/havenridge/leasing/internal/config"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	mu    sync.Mutex
	sent  []mail.Message
	err   error
	panic bool
}

func (f *fakeTransport) Name() string { return "fake" }

func (f *fakeTransport) Send(_ context.Context, msg mail.Message) (mail.Receipt, error) {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	if f.panic {
		panic("connection reset")
	}
	if f.err != nil {
		return mail.Receipt{}, f.err
	}
	return mail.Receipt{MessageID: "msg-1"}, nil
}

func submission(t models.ContactType) *models.ContactSubmissionModel {
	msg := "Is <b>parking</b> included?"
	sub := &models.ContactSubmissionModel{
		Name:     "Jordan  Lee",
		Email:    "jordan@example.com",
		Phone:    "5551234567",
		Message:  &msg,
		Type:     t,
		Metadata: map[string]interface{}{"preferredDate": "2024-07-01", "floor_plan": "Aspen"},
		Status:   models.ContactStatusNew,
	}
	sub.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return sub
}

var mailCfg = config.MailConfig{Enable: true, From: "site@example.com", NotifyTo: "office@example.com"}

func TestRenderNotificationPicksTemplateByType(t *testing.T) {
	visit, err := RenderNotification(submission(models.ContactScheduleVisit))
	require.NoError(t, err)
	assert.Equal(t, "New Visit Request from Jordan Lee", visit.Subject)
	assert.Contains(t, visit.HTML, "would like to tour")
	assert.Contains(t, visit.Text, "Preferred date: 2024-07-01")
	assert.Contains(t, visit.Text, "Floor plan: Aspen")

	general, err := RenderNotification(submission(models.ContactGeneral))
	require.NoError(t, err)
	assert.Equal(t, "New Inquiry from Jordan Lee", general.Subject)
	assert.NotContains(t, general.HTML, "would like to tour")
	assert.Contains(t, general.HTML, "Is &lt;b&gt;parking&lt;/b&gt; included?", "html body is escaped")
	assert.Contains(t, general.Text, "Is <b>parking</b> included?")

	apply, err := RenderNotification(submission(models.ContactApply))
	require.NoError(t, err)
	assert.Equal(t, "New Application Inquiry from Jordan Lee", apply.Subject)
}

func TestNotifySendsToOperatorWithReplyTo(t *testing.T) {
	tr := &fakeTransport{}
	res := New(tr, mailCfg, nil).Notify(context.Background(), submission(models.ContactVisit))

	assert.True(t, res.Success)
	assert.Equal(t, "msg-1", res.MessageID)
	assert.Nil(t, res.Confirmation)
	require.Len(t, tr.sent, 1)
	assert.Equal(t, []string{"office@example.com"}, tr.sent[0].To)
	assert.Equal(t, "jordan@example.com", tr.sent[0].ReplyTo)
	assert.Equal(t, "site@example.com", tr.sent[0].From)
	assert.NotEmpty(t, tr.sent[0].HTML)
	assert.NotEmpty(t, tr.sent[0].Text)
}

func TestNotifyReportsTransportFailure(t *testing.T) {
	tr := &fakeTransport{err: errors.New("smtp: 421 service not available")}
	res := New(tr, mailCfg, nil).Notify(context.Background(), submission(models.ContactGeneral))

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "421")
	assert.Len(t, tr.sent, 1)
}

func TestNotifyRecoversTransportPanic(t *testing.T) {
	tr := &fakeTransport{panic: true}
	var res Result
	assert.NotPanics(t, func() {
		res = New(tr, mailCfg, nil).Notify(context.Background(), submission(models.ContactGeneral))
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "connection reset")
}

func TestNotifySendsConfirmationWhenEnabled(t *testing.T) {
	cfg := mailCfg
	cfg.SendConfirmation = true
	tr := &fakeTransport{}
	res := New(tr, cfg, nil).Notify(context.Background(), submission(models.ContactVisit))

	require.NotNil(t, res.Confirmation)
	assert.True(t, res.Confirmation.Success)
	require.Len(t, tr.sent, 2)
	assert.Equal(t, []string{"jordan@example.com"}, tr.sent[1].To)
	assert.Equal(t, "We received your visit request", tr.sent[1].Subject)
	assert.Contains(t, tr.sent[1].Text, "Hi Jordan Lee")
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Preferred date", humanize("preferredDate"))
	assert.Equal(t, "Move in", humanize("move_in"))
	assert.Equal(t, "", humanize(""))
}
