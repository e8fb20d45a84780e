package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chatbridge/leadcapture/handler"
	"github.com/chatbridge/leadcapture/modules/leads"
	"github.com/chatbridge/leadcapture/pkg/clientip"
	"github.com/chatbridge/leadcapture/pkg/httpserver"
	"github.com/chatbridge/leadcapture/pkg/i18n"
	"github.com/chatbridge/leadcapture/pkg/requestid"
)

type routerDeps struct {
	log        *slog.Logger
	translator *i18n.Translator
	dispatcher *leads.Dispatcher
}

func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(i18n.Middleware(
		i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(deps.translator.SupportedLanguages()...)),
		deps.translator.DefaultLanguage(),
	))
	r.NotFound(handler.NotFound)

	r.Get("/health", httpserver.HealthCheckHandler(deps.log))

	r.Mount("/api", leads.Router(leads.RouterOptions{
		Submission: leads.NewHandler(deps.dispatcher,
			leads.WithTranslator(deps.translator),
			leads.WithErrorHandler(handler.NewErrorHandler(deps.log)),
		),
	}))

	return r
}
