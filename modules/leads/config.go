package leads

import (
	"fmt"
	"net/url"
	"time"

	"github.com/chatbridge/leadcapture/pkg/email"
)

// DefaultDeliveryTimeout bounds the webhook attempt and the notification email.
const DefaultDeliveryTimeout = 10 * time.Second

// Config is read once at startup. An empty WebhookURL disables delivery.
type Config struct {
	WebhookURL    string `env:"N8N_WEBHOOK_URL"`
	WebhookSecret string `env:"N8N_WEBHOOK_SECRET"`
	NotifyEmail   string `env:"LEAD_NOTIFY_EMAIL"`
}

// Validate implements config.Validator.
func (c Config) Validate() error {
	if c.NotifyEmail != "" && !email.IsValidAddress(c.NotifyEmail) {
		return fmt.Errorf("%w: LEAD_NOTIFY_EMAIL must be a valid email address", ErrInvalidConfig)
	}
	if c.WebhookURL == "" {
		return nil
	}
	u, err := url.Parse(c.WebhookURL)
	if err != nil {
		return fmt.Errorf("%w: N8N_WEBHOOK_URL: %w", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: N8N_WEBHOOK_URL must be an absolute http(s) URL", ErrInvalidConfig)
	}
	return nil
}
