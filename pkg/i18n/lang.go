package i18n

import "golang.org/x/text/language"

// DefaultLanguage is used when neither the request nor the configuration
// names a language.
const DefaultLanguage = "es"

// maxAcceptLanguageLength bounds the header handed to the parser. 4KB is
// generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// LangMatcher picks the best supported language for an Accept-Language header.
type LangMatcher struct {
	names   []string
	matcher language.Matcher
}

// NewLangMatcher builds a matcher over the supported language codes.
// Codes that are not valid BCP 47 tags are ignored.
func NewLangMatcher(supported ...string) *LangMatcher {
	m := &LangMatcher{}
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		m.names = append(m.names, code)
	}
	if len(tags) > 0 {
		m.matcher = language.NewMatcher(tags)
	}
	return m
}

// Match returns the supported code closest to the header, or "" when the
// header is empty, malformed, or names only unsupported languages.
func (m *LangMatcher) Match(header string) string {
	if header == "" || m.matcher == nil {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}

	_, idx, confidence := m.matcher.Match(tags...)
	if confidence == language.No {
		return ""
	}
	return m.names[idx]
}

// ParseAcceptLanguage returns the best supported language for header, or
// defaultLang when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if lang := NewLangMatcher(supportedLangs...).Match(header); lang != "" {
		return lang
	}
	return defaultLang
}
