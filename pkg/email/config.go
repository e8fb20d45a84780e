package email

// Config holds email service configuration.
// Every field is optional: with no Postmark tokens the service falls back to
// the logging sender and lead notifications never leave the process.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	SupportEmail         string `env:"SUPPORT_EMAIL"`
}

// PostmarkEnabled reports whether a Postmark server token is configured.
func (c Config) PostmarkEnabled() bool {
	return c.PostmarkServerToken != ""
}
