package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxBodySize caps the request body read by BindJSON.
const DefaultMaxBodySize int64 = 64 << 10

// JSONOption configures BindJSON.
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	maxBodySize int64
}

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive values are ignored.
func WithMaxBodySize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// BindJSON creates a binder that decodes a JSON object body into v.
//
// The Content-Type header is optional; when present it must be a JSON
// media type. Bodies that are not a single JSON object (arrays, scalars,
// null, trailing data) fail with ErrInvalidJSON, and so do bodies larger
// than the configured limit.
//
// Example:
//
//	http.HandleFunc("/leads", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, map[string]any](binder.BindJSON()),
//	))
func BindJSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := jsonConfig{maxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		if err := checkContentType(r.Header.Get("Content-Type")); err != nil {
			return err
		}
		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxBodySize+1))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if int64(len(body)) > cfg.maxBodySize {
			return fmt.Errorf("%w: %w: limit is %d bytes", ErrInvalidJSON, ErrBodyTooLarge, cfg.maxBodySize)
		}

		body = bytes.TrimSpace(body)
		if len(body) == 0 {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		if body[0] != '{' {
			return fmt.Errorf("%w: expected a JSON object", ErrInvalidJSON)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		// Ensure entire body was consumed
		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		return nil
	}
}

func checkContentType(contentType string) error {
	if contentType == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	if mediaType != "application/json" && !strings.HasSuffix(mediaType, "+json") {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}
	return nil
}

