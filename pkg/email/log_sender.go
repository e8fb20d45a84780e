package email

import (
	"context"
	"log/slog"
)

// LogSender implements EmailSender for local development.
// Messages are written to the logger instead of being delivered.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a sender that only logs outgoing emails.
func NewLogSender(log *slog.Logger) *LogSender {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &LogSender{log: log}
}

// SendEmail validates params and logs the envelope. The body is never logged.
func (s *LogSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "email not sent, logging only",
		slog.String("to", params.SendTo),
		slog.String("subject", params.Subject),
		slog.String("tag", params.Tag),
		slog.Int("body_html_size", len(params.BodyHTML)),
	)
	return nil
}
