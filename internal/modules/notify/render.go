package notify

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/havenridge/leasing/internal/models"
)

// Rendered is a fully templated email ready for a transport.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

type detail struct {
	Key   string
	Value string
}

type view struct {
	Label     string
	Name      string
	Email     string
	Phone     string
	Message   string
	Details   []detail
	Submitted string
	Visit     bool
}

// Label is the human name of a submission type used in subjects.
func Label(t models.ContactType) string {
	switch t {
	case models.ContactVisit, models.ContactScheduleVisit:
		return "Visit Request"
	case models.ContactApply:
		return "Application Inquiry"
	default:
		return "Inquiry"
	}
}

func newView(sub *models.ContactSubmissionModel) view {
	v := view{
		Label:     Label(sub.Type),
		Name:      oneLine(sub.Name),
		Email:     strings.TrimSpace(sub.Email),
		Phone:     strings.TrimSpace(sub.Phone),
		Submitted: sub.CreatedAt.UTC().Format(time.RFC1123),
		Visit:     sub.Type.IsVisitRequest(),
	}
	if sub.Message != nil {
		v.Message = strings.TrimSpace(*sub.Message)
	}
	keys := make([]string, 0, len(sub.Metadata))
	for k := range sub.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v.Details = append(v.Details, detail{Key: humanize(k), Value: fmt.Sprint(sub.Metadata[k])})
	}
	return v
}

// RenderNotification builds the operator email for a submission. Visit
// requests use the visit layout, every other type the general one.
func RenderNotification(sub *models.ContactSubmissionModel) (Rendered, error) {
	pair := generalTemplates
	if sub.Type.IsVisitRequest() {
		pair = visitTemplates
	}
	v := newView(sub)
	out, err := execute(pair, v)
	if err != nil {
		return Rendered{}, err
	}
	out.Subject = fmt.Sprintf("New %s from %s", v.Label, v.Name)
	return out, nil
}

// RenderConfirmation builds the acknowledgement sent to the visitor.
func RenderConfirmation(sub *models.ContactSubmissionModel) (Rendered, error) {
	v := newView(sub)
	out, err := execute(confirmTemplates, v)
	if err != nil {
		return Rendered{}, err
	}
	if v.Visit {
		out.Subject = "We received your visit request"
	} else {
		out.Subject = "Thanks for contacting us"
	}
	return out, nil
}

func execute(pair templatePair, v view) (Rendered, error) {
	var html, text bytes.Buffer
	if err := pair.html.Execute(&html, v); err != nil {
		return Rendered{}, fmt.Errorf("render html: %w", err)
	}
	if err := pair.text.Execute(&text, v); err != nil {
		return Rendered{}, fmt.Errorf("render text: %w", err)
	}
	return Rendered{HTML: html.String(), Text: text.String()}, nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// humanize turns "preferredDate" or "move_in" into "Preferred date" / "Move in".
func humanize(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case r == '_' || r == '-':
			b.WriteByte(' ')
		case r >= 'A' && r <= 'Z' && i > 0:
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SampleSubmission is the fixture sent by the test-email endpoint and CLI.
func SampleSubmission(now time.Time) *models.ContactSubmissionModel {
	msg := "This is a test notification from the leasing site."
	sub := &models.ContactSubmissionModel{
		Name:     "Test Visitor",
		Email:    "visitor@example.com",
		Phone:    "5555550100",
		Message:  &msg,
		Type:     models.ContactScheduleVisit,
		Metadata: map[string]interface{}{"preferredDate": now.AddDate(0, 0, 3).Format("2006-01-02")},
		Status:   models.ContactStatusNew,
	}
	sub.CreatedAt = now
	return sub
}
