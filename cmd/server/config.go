package main

import (
	"github.com/chatbridge/leadcapture/modules/leads"
	"github.com/chatbridge/leadcapture/pkg/email"
	"github.com/chatbridge/leadcapture/pkg/httpserver"
	"github.com/chatbridge/leadcapture/pkg/i18n"
)

// appConfig is loaded once at startup from the environment and .env.
type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	ServiceName     string `env:"SERVICE_NAME" envDefault:"leadcapture"`
	LogLevel        string `env:"LOG_LEVEL"`
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"es"`

	HTTP  httpserver.Config
	Leads leads.Config
	Email email.Config
}

// Validate implements config.Validator.
func (c appConfig) Validate() error {
	return c.Leads.Validate()
}

func (c appConfig) defaultLanguage() string {
	if c.DefaultLanguage == "" {
		return i18n.DefaultLanguage
	}
	return c.DefaultLanguage
}
