package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatbridge/leadcapture/binder"
)

func TestBindJSON(t *testing.T) {
	t.Parallel()

	newRequest := func(body, contentType string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		return req
	}

	t.Run("valid object into map", func(t *testing.T) {
		t.Parallel()

		var result map[string]any
		err := binder.BindJSON()(newRequest(`{"name":"Ana","age":30}`, "application/json"), &result)

		require.NoError(t, err)
		assert.Equal(t, "Ana", result["name"])
		assert.Equal(t, float64(30), result["age"])
	})

	t.Run("valid object into struct", func(t *testing.T) {
		t.Parallel()

		var result struct {
			Name string `json:"name"`
		}
		err := binder.BindJSON()(newRequest(`{"name":"Ana"}`, "application/json; charset=utf-8"), &result)

		require.NoError(t, err)
		assert.Equal(t, "Ana", result.Name)
	})

	t.Run("missing content type is accepted", func(t *testing.T) {
		t.Parallel()

		var result map[string]any
		err := binder.BindJSON()(newRequest(`{"name":"Ana"}`, ""), &result)

		require.NoError(t, err)
		assert.Equal(t, "Ana", result["name"])
	})

	t.Run("json suffix media type", func(t *testing.T) {
		t.Parallel()

		var result map[string]any
		err := binder.BindJSON()(newRequest(`{}`, "application/vnd.api+json"), &result)
		assert.NoError(t, err)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()

		var result map[string]any
		err := binder.BindJSON()(newRequest(`{"name":"Ana"}`, "text/plain"), &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
		assert.Contains(t, err.Error(), "got text/plain")
	})

	invalid := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "whitespace body", body: "   \n"},
		{name: "malformed", body: `{"name":`},
		{name: "invalid character", body: `{name: "Ana"}`},
		{name: "array", body: `[{"name":"Ana"}]`},
		{name: "string", body: `"hello"`},
		{name: "number", body: `42`},
		{name: "null", body: `null`},
		{name: "trailing data", body: `{"name":"Ana"} {"x":1}`},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var result map[string]any
			err := binder.BindJSON()(newRequest(tt.body, "application/json"), &result)

			require.Error(t, err)
			assert.ErrorIs(t, err, binder.ErrInvalidJSON)
		})
	}

	t.Run("body over limit", func(t *testing.T) {
		t.Parallel()

		body := `{"name":"` + strings.Repeat("a", 100) + `"}`
		var result map[string]any
		err := binder.BindJSON(binder.WithMaxBodySize(32))(newRequest(body, "application/json"), &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})

	t.Run("body at default limit", func(t *testing.T) {
		t.Parallel()

		padding := strings.Repeat("a", int(binder.DefaultMaxBodySize)-len(`{"p":""}`))
		var result map[string]any
		err := binder.BindJSON()(newRequest(`{"p":"`+padding+`"}`, "application/json"), &result)
		assert.NoError(t, err)
	})
}
