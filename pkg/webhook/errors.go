package webhook

import "errors"

// Configuration errors fail before anything is sent. The delivery errors
// describe how the single attempt failed.
var (
	ErrInvalidConfiguration = errors.New("invalid webhook configuration")
	ErrInvalidPayload       = errors.New("invalid webhook payload")
	ErrInvalidURL           = errors.New("invalid webhook URL")

	ErrDeliveryFailed   = errors.New("webhook delivery failed")
	ErrTemporaryFailure = errors.New("temporary webhook failure")
	ErrTimeout          = errors.New("webhook request timeout")
)
