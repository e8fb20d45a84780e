package leads_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatbridge/leadcapture/modules/leads"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     leads.Config
		wantErr bool
	}{
		{name: "empty", cfg: leads.Config{}},
		{name: "https webhook", cfg: leads.Config{WebhookURL: "https://n8n.example.com/webhook/abc"}},
		{name: "notify address", cfg: leads.Config{NotifyEmail: "ventas@example.com"}},
		{name: "relative webhook", cfg: leads.Config{WebhookURL: "/webhook/abc"}, wantErr: true},
		{name: "ftp webhook", cfg: leads.Config{WebhookURL: "ftp://example.com"}, wantErr: true},
		{name: "malformed notify address", cfg: leads.Config{NotifyEmail: "ventas@"}, wantErr: true},
		{name: "notify address without domain dot", cfg: leads.Config{NotifyEmail: "ventas@example"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, leads.ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}
