package webhook

import "time"

// DefaultTimeout bounds a delivery attempt when WithTimeout is not given.
const DefaultTimeout = 10 * time.Second

// DeliveryResult contains information about a webhook delivery attempt
type DeliveryResult struct {
	Success    bool
	StatusCode int
	Duration   time.Duration
	// DeliveryID is the X-Webhook-ID sent with a signed request.
	DeliveryID string
	Error      error
}

// DeliveryHook is called once after the delivery attempt
type DeliveryHook func(result DeliveryResult)

type sendOptions struct {
	timeout         time.Duration
	headers         map[string]string
	signatureSecret string
	onDelivery      DeliveryHook
}

func defaultSendOptions() *sendOptions {
	return &sendOptions{
		timeout: DefaultTimeout,
		headers: make(map[string]string),
	}
}

// SendOption is a functional option for configuring webhook sends
type SendOption func(*sendOptions)

// WithTimeout sets the deadline of the attempt. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) SendOption {
	return func(o *sendOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHeader adds a custom header to the webhook request.
// Content-Type and User-Agent are set by the sender and cannot be replaced.
func WithHeader(key, value string) SendOption {
	return func(o *sendOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}

// WithSignature enables HMAC-SHA256 request signing with the given secret.
// An empty secret leaves the request unsigned.
func WithSignature(secret string) SendOption {
	return func(o *sendOptions) {
		o.signatureSecret = secret
	}
}

// WithOnDelivery sets a callback invoked with the outcome of the attempt.
func WithOnDelivery(hook DeliveryHook) SendOption {
	return func(o *sendOptions) {
		o.onDelivery = hook
	}
}
