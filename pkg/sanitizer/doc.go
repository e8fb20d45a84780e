// Package sanitizer cleans untrusted form input and masks personal data
// before it reaches logs.
//
// Input cleaning is a small pipeline built with Compose:
//
//	clean, ok := sanitizer.SanitizeString(payload["name"])
//	if !ok {
//		// value was not a string
//	}
//
// SanitizeString trims the value and removes HTML tag sequences, the
// javascript: protocol marker and inline event handler assignments
// (onclick=, onerror=, ...). Everything else is preserved verbatim. The
// stripping passes repeat until the value is stable, so the output never
// contains a marker formed by joining the pieces around a removed one.
//
// Masking helpers (MaskEmail, MaskPhone) and Truncate prepare values for
// structured log records.
//
// None of the helpers returns an error and all of them are safe for
// concurrent use.
package sanitizer
