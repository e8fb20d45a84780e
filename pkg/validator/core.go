package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Translate returns a copy with every Message replaced by tr. Errors without
// a TranslationKey keep their message.
func (ve ValidationErrors) Translate(tr func(key string, values map[string]any) string) ValidationErrors {
	if tr == nil {
		return ve
	}

	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		if err.TranslationKey != "" {
			err.Message = tr(err.TranslationKey, err.TranslationValues)
		}
		out[i] = err
	}
	return out
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
	// Bail skips the remaining rules of the same field when this one fails.
	Bail bool
}

// WithMessage returns a copy of the rule reporting key and message instead
// of the generic ones.
func (r Rule) WithMessage(key, message string) Rule {
	r.Error.TranslationKey = key
	r.Error.Message = message
	return r
}

// Apply executes all rules and returns every failure as ValidationErrors,
// in the order the rules were given.
func Apply(rules ...Rule) error {
	var (
		errs    ValidationErrors
		stopped map[string]bool
	)

	for _, rule := range rules {
		if stopped[rule.Error.Field] {
			continue
		}
		if rule.Check() {
			continue
		}

		errs = append(errs, rule.Error)
		if rule.Bail {
			if stopped == nil {
				stopped = make(map[string]bool)
			}
			stopped[rule.Error.Field] = true
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// When includes rules only if cond holds.
func When(cond bool, rules ...Rule) []Rule {
	if !cond {
		return nil
	}
	return rules
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
