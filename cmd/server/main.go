// Command server runs the lead capture API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/chatbridge/leadcapture/modules/leads"
	"github.com/chatbridge/leadcapture/pkg/config"
	"github.com/chatbridge/leadcapture/pkg/email"
	"github.com/chatbridge/leadcapture/pkg/environment"
	"github.com/chatbridge/leadcapture/pkg/httpserver"
	"github.com/chatbridge/leadcapture/pkg/i18n"
	"github.com/chatbridge/leadcapture/pkg/logger"
	"github.com/chatbridge/leadcapture/pkg/requestid"
	"github.com/chatbridge/leadcapture/pkg/webhook"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	translator, err := i18n.NewTranslator(ctx, leads.Translations(),
		i18n.WithDefaultLanguage(cfg.defaultLanguage()),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	mailer, err := newMailer(cfg.Email, log)
	if err != nil {
		return err
	}

	var sender leads.WebhookSender
	if cfg.Leads.WebhookURL != "" {
		sender = webhook.NewSender()
	} else {
		log.Warn("N8N_WEBHOOK_URL is not set, leads will not be forwarded", logger.Component("leads"))
	}

	dispatcher := leads.NewDispatcher(cfg.Leads, sender,
		leads.WithLogger(log),
		leads.WithEmailSender(mailer),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(routerDeps{
		log:        log,
		translator: translator,
		dispatcher: dispatcher,
	}))
}

// newMailer uses Postmark when a server token is configured and the
// logging sender otherwise.
func newMailer(cfg email.Config, log *slog.Logger) (email.EmailSender, error) {
	if !cfg.PostmarkEnabled() {
		return email.NewLogSender(log), nil
	}
	return email.NewPostmarkClient(cfg)
}
