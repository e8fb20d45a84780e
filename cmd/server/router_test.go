package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatbridge/leadcapture/modules/leads"
	"github.com/chatbridge/leadcapture/pkg/email"
	"github.com/chatbridge/leadcapture/pkg/i18n"
	"github.com/chatbridge/leadcapture/pkg/logger"
	"github.com/chatbridge/leadcapture/pkg/requestid"
)

func testRouter(t *testing.T, logs *bytes.Buffer) http.Handler {
	t.Helper()

	log := logger.New(
		logger.WithOutput(logs),
		logger.WithJSONFormatter(),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	tr, err := i18n.NewTranslator(context.Background(), leads.Translations())
	require.NoError(t, err)

	return newRouter(routerDeps{
		log:        log,
		translator: tr,
		dispatcher: leads.NewDispatcher(leads.Config{}, nil, leads.WithLogger(log)),
	})
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	h := testRouter(t, &bytes.Buffer{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestRouter_Submission(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h := testRouter(t, &logs)

	req := httptest.NewRequest(http.MethodPost, "/api/audit-submission", strings.NewReader(
		`{"name":"Ana","email":"ana@example.com","phone":"+50370000000","painPoint":"excel"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-123")
	req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"leadId":"lead_`)

	out := logs.String()
	assert.Contains(t, out, `"msg":"lead received"`)
	assert.Contains(t, out, `"request_id":"req-123"`)
	assert.Contains(t, out, `"ip":"198.51.100.4"`)
	assert.Contains(t, out, `"email":"ana@***"`)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := testRouter(t, &bytes.Buffer{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/audit-submission", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "POST", w.Header().Get("Allow"))
}

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	h := testRouter(t, &bytes.Buffer{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestNewMailer(t *testing.T) {
	t.Parallel()

	t.Run("log sender without token", func(t *testing.T) {
		t.Parallel()

		m, err := newMailer(email.Config{}, slog.New(slog.DiscardHandler))
		require.NoError(t, err)
		assert.IsType(t, &email.LogSender{}, m)
	})

	t.Run("postmark with token", func(t *testing.T) {
		t.Parallel()

		m, err := newMailer(email.Config{PostmarkServerToken: "t", SenderEmail: "noreply@example.com"}, nil)
		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("invalid postmark config", func(t *testing.T) {
		t.Parallel()

		_, err := newMailer(email.Config{PostmarkServerToken: "t"}, nil)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})
}

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, appConfig{}.Validate())
	assert.NoError(t, appConfig{Leads: leads.Config{WebhookURL: "https://n8n.example.com/webhook/abc"}}.Validate())
	assert.ErrorIs(t, appConfig{Leads: leads.Config{WebhookURL: "ftp://example.com"}}.Validate(), leads.ErrInvalidConfig)
	assert.ErrorIs(t, appConfig{Leads: leads.Config{NotifyEmail: "ventas@"}}.Validate(), leads.ErrInvalidConfig)
	assert.Equal(t, "es", appConfig{}.defaultLanguage())
}
