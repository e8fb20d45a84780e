// Package i18n provides translations loaded from YAML files and request
// locale negotiation.
//
// Translations are nested maps keyed by language, addressed with dot
// separated keys ("leads.name.required") and may contain named placeholders
// in the %{name} form:
//
//	adapter := i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), translationsFS, "translations")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("es"))
//	msg := tr.T("en", "leads.name.length", "min", "2", "max", "100")
//
// Middleware resolves the request language (query parameter first, then the
// Accept-Language header matched with golang.org/x/text/language) and stores
// it in the request context, where GetLocale and Translator.Tc read it.
package i18n
