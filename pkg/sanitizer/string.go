package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// StripTags removes every `<...>` sequence. Text between tags is kept.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// RemoveWhitespace drops all whitespace, including internal runs.
func RemoveWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, "")
}

// Length reports the number of runes in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate cuts s to at most maxLen runes without splitting a multi-byte character.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLen])
}
