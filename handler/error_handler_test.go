package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatbridge/leadcapture/binder"
	"github.com/chatbridge/leadcapture/handler"
	"github.com/chatbridge/leadcapture/pkg/validator"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	validationErrs := validator.ValidationErrors{
		{Field: "name", Message: "El nombre es requerido"},
		{Field: "email", Message: "Formato de correo electrónico inválido"},
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLevel  string
	}{
		{
			name:       "validation errors",
			err:        validationErrs,
			wantStatus: http.StatusBadRequest,
			wantBody: `{"success":false,"error":"Validation failed","code":"VALIDATION_ERROR","errors":[
				{"field":"name","message":"El nombre es requerido"},
				{"field":"email","message":"Formato de correo electrónico inválido"}]}`,
			wantLevel: "WARN",
		},
		{
			name:       "wrapped validation errors",
			err:        fmt.Errorf("submit: %w", validationErrs),
			wantStatus: http.StatusBadRequest,
			wantBody: `{"success":false,"error":"Validation failed","code":"VALIDATION_ERROR","errors":[
				{"field":"name","message":"El nombre es requerido"},
				{"field":"email","message":"Formato de correo electrónico inválido"}]}`,
			wantLevel: "WARN",
		},
		{
			name:       "invalid json",
			err:        fmt.Errorf("%w: unexpected EOF", binder.ErrInvalidJSON),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"Invalid JSON body","code":"INVALID_JSON"}`,
			wantLevel:  "WARN",
		},
		{
			name:       "unsupported media type",
			err:        binder.ErrUnsupportedMediaType,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"Invalid JSON body","code":"INVALID_JSON"}`,
			wantLevel:  "WARN",
		},
		{
			name:       "http error",
			err:        handler.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"success":false,"error":"Method not allowed","code":"METHOD_NOT_ALLOWED"}`,
			wantLevel:  "WARN",
		},
		{
			name:       "unexpected error is generic",
			err:        errors.New("db password is hunter2"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"error":"Internal server error","code":"SERVER_ERROR"}`,
			wantLevel:  "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(&logs, nil)))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/audit-submission", nil)
			eh(handler.NewContext(w, r), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Contains(t, logs.String(), "level="+tt.wantLevel)
			assert.Contains(t, logs.String(), "request error")
		})
	}

	t.Run("internal details stay in logs", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(&logs, nil)))

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodPost, "/", nil)), errors.New("secret detail"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret detail")
		assert.Contains(t, logs.String(), "secret detail")
	})
}
