package leads

import (
	"strconv"
	"time"
)

const (
	// RecordSource tags records built by this service.
	RecordSource = "audit-terminal"
	// WebhookSource replaces the record source in the webhook body.
	WebhookSource = "chatbridge-website"
	// WebhookVersion is the schema version of the webhook body.
	WebhookVersion = "1.0"
)

// timestampLayout is RFC 3339 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is an accepted lead. It is built once and never changed.
type Record struct {
	ID               string
	Form             Form
	Name             string
	Email            string
	Phone            string
	WhatsApp         string
	Business         string
	PainPoint        string
	OtherDescription string
	CreatedAt        time.Time
	Source           string
}

// NewRecord builds the record of a valid submission. The id is derived from
// the creation time in milliseconds, so two leads created within the same
// millisecond share it.
func NewRecord(sub Submission, now time.Time) Record {
	now = now.UTC()
	return Record{
		ID:               "lead_" + strconv.FormatInt(now.UnixMilli(), 10),
		Form:             sub.Form,
		Name:             sub.Name,
		Email:            sub.Email,
		Phone:            sub.Phone,
		WhatsApp:         sub.WhatsApp,
		Business:         sub.Business,
		PainPoint:        sub.PainPoint,
		OtherDescription: sub.OtherDescription,
		CreatedAt:        now,
		Source:           RecordSource,
	}
}

// Fields returns the record as a JSON object. Optional free text is null
// when empty; contact fields of the other form are left out.
func (r Record) Fields() map[string]any {
	m := map[string]any{
		"id":               r.ID,
		"form":             string(r.Form),
		"name":             r.Name,
		"painPoint":        r.PainPoint,
		"otherDescription": nullable(r.OtherDescription),
		"createdAt":        formatTimestamp(r.CreatedAt),
		"source":           r.Source,
	}

	switch r.Form {
	case FormWhatsApp:
		m["whatsapp"] = r.WhatsApp
		m["business"] = nullable(r.Business)
	default:
		m["email"] = r.Email
		m["phone"] = r.Phone
	}
	return m
}

// WebhookPayload returns Fields plus the delivery timestamp, the webhook
// source tag and the schema version.
func (r Record) WebhookPayload(sentAt time.Time) map[string]any {
	m := r.Fields()
	m["timestamp"] = formatTimestamp(sentAt)
	m["source"] = WebhookSource
	m["webhook_version"] = WebhookVersion
	return m
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
