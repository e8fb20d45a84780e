package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// UserAgent identifies outbound webhook requests.
const UserAgent = "leadcapture-webhook/1.0"

// maxErrorBody caps how much of a failed response is read for the error message.
const maxErrorBody = 64 * 1024

// Sender posts webhook payloads. It is safe for concurrent use; the
// underlying client pools connections per endpoint.
type Sender struct {
	client *http.Client
}

// NewSender creates a webhook sender with a pooled HTTP client. Deadlines
// come from the per-send timeout rather than the client.
func NewSender() *Sender {
	return &Sender{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// NewSenderWithClient creates a webhook sender with a custom HTTP client.
func NewSenderWithClient(client *http.Client) *Sender {
	if client == nil {
		return NewSender()
	}
	return &Sender{client: client}
}

// Send makes exactly one POST of data, JSON encoded, to webhookURL.
// Success means a 2xx response within the timeout.
func (s *Sender) Send(ctx context.Context, webhookURL string, data any, opts ...SendOption) (DeliveryResult, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return DeliveryResult{Error: err}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if err := validateInputs(webhookURL, payload); err != nil {
		return DeliveryResult{Error: err}, err
	}

	options := defaultSendOptions()
	for _, opt := range opts {
		opt(options)
	}

	result, err := s.attemptDelivery(ctx, webhookURL, payload, options)
	if options.onDelivery != nil {
		options.onDelivery(result)
	}

	return result, err
}

// validateInputs fails fast on obvious errors
func validateInputs(webhookURL string, payload []byte) error {
	if webhookURL == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}

	u, err := url.Parse(webhookURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}

	if len(payload) == 0 || string(payload) == "null" {
		return fmt.Errorf("%w: payload cannot be empty", ErrInvalidPayload)
	}

	return nil
}

func (s *Sender) attemptDelivery(ctx context.Context, webhookURL string, payload []byte, options *sendOptions) (DeliveryResult, error) {
	start := time.Now()
	result := DeliveryResult{}

	fail := func(err error) (DeliveryResult, error) {
		result.Duration = time.Since(start)
		result.Error = err
		return result, err
	}

	// Layer timeout on top of parent context to respect both constraints
	reqCtx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrInvalidURL, err))
	}

	for k, v := range options.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	if options.signatureSecret != "" {
		sig, err := SignPayload(options.signatureSecret, payload)
		if err != nil {
			return fail(err)
		}
		for k, v := range sig.Headers() {
			req.Header.Set(k, v)
		}
		result.DeliveryID = sig.ID
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return fail(fmt.Errorf("%w after %s: %w", ErrTimeout, options.timeout, err))
		}
		return fail(fmt.Errorf("%w: %w", ErrTemporaryFailure, err))
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300

	// Drain so the connection can be reused.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	if !result.Success {
		return fail(statusError(resp.StatusCode, body))
	}

	result.Duration = time.Since(start)
	return result, nil
}

func statusError(status int, body []byte) error {
	msg := fmt.Sprintf("status %d", status)
	if len(body) > 0 {
		// Single line keeps log records intact.
		bodyStr := strings.ReplaceAll(string(body), "\n", " ")
		if len(bodyStr) > 200 {
			bodyStr = bodyStr[:200] + "..."
		}
		msg += ": " + bodyStr
	}
	return fmt.Errorf("%w: %s", ErrDeliveryFailed, msg)
}
