// Package config loads process configuration from the environment.
//
// Load parses environment variables into any struct annotated with
// `github.com/caarlos0/env/v11` tags after loading a `.env` file through
// `github.com/joho/godotenv` when one exists. Each configuration type is
// parsed once and cached for the lifetime of the process, so the values read
// at startup cannot drift while requests are in flight.
//
// A struct that implements Validator is validated right after parsing; a
// failed validation is reported as ErrInvalidConfig and nothing is cached.
//
//	type Config struct {
//		WebhookURL string `env:"N8N_WEBHOOK_URL"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle
//	}
package config
