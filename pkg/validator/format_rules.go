package validator

import "regexp"

var (
	// Something@something.something with no whitespace on either side of @.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Optional +, optional (country code), then three digit groups with
	// optional -, space or . separators.
	phoneRegex = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,9}$`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// ValidEmail checks the loose local@domain.tld shape used by web forms.
// It does not attempt RFC 5322 compliance.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPhone checks an international phone number after removing all
// whitespace, so "+503 7000-0000" is accepted.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			cleaned := whitespaceRegex.ReplaceAllString(value, "")
			return phoneRegex.MatchString(cleaned)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
