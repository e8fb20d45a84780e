package leads

import "errors"

var (
	ErrInvalidConfig  = errors.New("leads: invalid config")
	ErrWebhookSkipped = errors.New("leads: webhook not configured")
)
