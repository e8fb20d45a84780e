package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Script injection markers
	javascriptProtocolRegex = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex       = regexp.MustCompile(`(?i)on\w+=`)

	// Whitespace
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
