package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor determines the preferred language of a request. It returns
// "" when it cannot tell.
type LangExtractor func(r *http.Request) string

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name == "" {
			return
		}
		c.QueryParamName = name
	}
}

// WithSupportedLanguages sets the list of supported languages for validation
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) == 0 {
			return
		}
		c.SupportedLangs = langs
	}
}

// DefaultLangExtractor checks the "lang" query parameter and then the
// Accept-Language header. Both are matched against the supported languages,
// so "es-SV" resolves to "es".
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		QueryParamName: "lang",
	}

	for _, opt := range opts {
		opt(config)
	}

	matcher := NewLangMatcher(config.SupportedLangs...)

	return func(r *http.Request) string {
		if config.QueryParamName != "" {
			if lang := strings.TrimSpace(r.URL.Query().Get(config.QueryParamName)); lang != "" {
				if matched := matcher.Match(lang); matched != "" {
					return matched
				}
			}
		}

		return matcher.Match(r.Header.Get("Accept-Language"))
	}
}
