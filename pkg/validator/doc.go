// Package validator builds field validation out of small Rule values and
// evaluates them exhaustively.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Apply runs every rule and aggregates the failures, in declaration order,
// into ValidationErrors, which satisfies the error interface:
//
//	err := validator.Apply(
//		validator.RequiredString("name", name),
//		validator.LenBetween("name", name, 2, 100),
//		validator.RequiredString("email", email),
//		validator.ValidEmail("email", email),
//	)
//
// Rules marked with Bail (RequiredString and RequiredIf are) stop the
// evaluation of later rules for the same field when they fail, so an empty
// field reports that it is required and nothing else. Other fields are still
// checked.
//
// Messages are plain English by default. ValidationErrors.Translate resolves
// TranslationKey and TranslationValues through any translator, and
// Rule.WithMessage swaps the key for a field-specific one.
//
// The package holds no state and is safe for concurrent use.
package validator
