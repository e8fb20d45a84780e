package leads

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/chatbridge/leadcapture/pkg/email"
	"github.com/chatbridge/leadcapture/pkg/logger"
	"github.com/chatbridge/leadcapture/pkg/sanitizer"
	"github.com/chatbridge/leadcapture/pkg/useragent"
	"github.com/chatbridge/leadcapture/pkg/webhook"
)

// WebhookSender posts a JSON payload once. *webhook.Sender implements it.
type WebhookSender interface {
	Send(ctx context.Context, url string, data any, opts ...webhook.SendOption) (webhook.DeliveryResult, error)
}

// RequestMeta is what the dispatcher logs about the caller.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// DispatchResult is the outcome of the webhook attempt. It only reaches the logs.
type DispatchResult struct {
	Delivered  bool
	Skipped    bool
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Dispatcher turns valid submissions into records, logs them redacted and
// hands them to the webhook and, when configured, the notification email.
type Dispatcher struct {
	cfg     Config
	sender  WebhookSender
	mailer  email.EmailSender
	log     *slog.Logger
	now     func() time.Time
	timeout time.Duration
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithEmailSender enables the notification email to Config.NotifyEmail.
func WithEmailSender(sender email.EmailSender) DispatcherOption {
	return func(d *Dispatcher) {
		d.mailer = sender
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// WithDeliveryTimeout overrides DefaultDeliveryTimeout. Non-positive values are ignored.
func WithDeliveryTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// NewDispatcher creates a dispatcher. sender may be nil only when
// cfg.WebhookURL is empty.
func NewDispatcher(cfg Config, sender WebhookSender, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		cfg:     cfg,
		sender:  sender,
		log:     logger.NewNop(),
		now:     time.Now,
		timeout: DefaultDeliveryTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch records sub and attempts delivery. It blocks for at most the
// delivery timeout, even when ctx is cancelled earlier, and never fails:
// the delivery outcome is logged and returned for inspection only.
func (d *Dispatcher) Dispatch(ctx context.Context, sub Submission, meta RequestMeta) (Record, DispatchResult) {
	record := NewRecord(sub, d.now())
	d.logReceived(ctx, record, meta)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	var wg sync.WaitGroup
	if d.mailer != nil && d.cfg.NotifyEmail != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.notify(ctx, record)
		}()
	}

	result := d.deliver(ctx, record)
	wg.Wait()

	return record, result
}

func (d *Dispatcher) logReceived(ctx context.Context, r Record, meta RequestMeta) {
	ua := useragent.Parse(meta.UserAgent)
	ip := meta.IP
	if ip == "" {
		ip = "unknown"
	}

	attrs := []slog.Attr{
		logger.LeadID(r.ID),
		slog.String("form", string(r.Form)),
		slog.String("name", r.Name),
		slog.String("pain_point", r.PainPoint),
		slog.Bool("has_other_description", r.OtherDescription != ""),
		slog.String("ip", ip),
		slog.String("user_agent", ua.Short()),
		slog.String("device_type", ua.DeviceType()),
		logger.Component("leads"),
		logger.Event("lead_received"),
	}
	switch r.Form {
	case FormWhatsApp:
		attrs = append(attrs,
			slog.String("whatsapp", sanitizer.MaskPhone(r.WhatsApp)),
			slog.Bool("has_business", r.Business != ""),
		)
	default:
		attrs = append(attrs,
			slog.String("email", sanitizer.MaskEmail(r.Email)),
			slog.String("phone", sanitizer.MaskPhone(r.Phone)),
		)
	}
	if ua.IsBot() {
		attrs = append(attrs, slog.String("bot", ua.BotName()))
	}

	d.log.LogAttrs(ctx, slog.LevelInfo, "lead received", attrs...)
}

func (d *Dispatcher) deliver(ctx context.Context, r Record) DispatchResult {
	if d.cfg.WebhookURL == "" || d.sender == nil {
		d.log.LogAttrs(ctx, slog.LevelInfo, "webhook not configured, skipping",
			logger.LeadID(r.ID),
			logger.Component("leads"),
			logger.Event("webhook_skipped"),
		)
		return DispatchResult{Skipped: true, Err: ErrWebhookSkipped}
	}

	opts := []webhook.SendOption{
		webhook.WithTimeout(d.timeout),
		webhook.WithHeader("X-Lead-ID", r.ID),
	}
	if d.cfg.WebhookSecret != "" {
		opts = append(opts, webhook.WithSignature(d.cfg.WebhookSecret))
	}

	res, err := d.sender.Send(ctx, d.cfg.WebhookURL, r.WebhookPayload(d.now()), opts...)
	result := DispatchResult{
		Delivered:  err == nil && res.Success,
		StatusCode: res.StatusCode,
		Duration:   res.Duration,
		Err:        err,
	}

	attrs := []slog.Attr{
		logger.LeadID(r.ID),
		logger.Duration(res.Duration),
		logger.Component("leads"),
	}
	if res.StatusCode != 0 {
		attrs = append(attrs, logger.StatusCode(res.StatusCode))
	}

	switch {
	case result.Delivered:
		d.log.LogAttrs(ctx, slog.LevelInfo, "lead sent to webhook", append(attrs, logger.Event("webhook_delivered"))...)
	case errors.Is(err, webhook.ErrTimeout):
		d.log.LogAttrs(ctx, slog.LevelError, "webhook timeout",
			append(attrs, logger.Event("webhook_timeout"), logger.Error(err))...)
	default:
		if err == nil {
			err = webhook.ErrDeliveryFailed
			result.Err = err
		}
		d.log.LogAttrs(ctx, slog.LevelError, "webhook delivery failed",
			append(attrs, logger.Event("webhook_failed"), logger.Error(err))...)
	}
	return result
}
