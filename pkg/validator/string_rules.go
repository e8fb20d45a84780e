package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString fails on an empty or whitespace-only value and stops
// further checks on the field.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
		Bail: true,
	}
}

// RequiredIf behaves like RequiredString when cond holds and passes otherwise.
func RequiredIf(cond bool, field, value string) Rule {
	rule := RequiredString(field, value)
	check := rule.Check
	rule.Check = func() bool {
		return !cond || check()
	}
	return rule
}

// LenBetween checks that value has between min and max characters, inclusive.
// Characters are Unicode code points, so "Ñu" has length 2.
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d characters long", min, max),
			TranslationKey: "validation.len_between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
