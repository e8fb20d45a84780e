package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatbridge/leadcapture/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"es": {
			"welcome": "Bienvenido, %{name}!",
			"leads": map[string]any{
				"name": map[string]any{
					"length": "El nombre debe tener entre %{min} y %{max} caracteres",
				},
				"only_es": "Solo en español",
			},
		},
		"en": {
			"welcome": "Welcome, %{name}!",
			"leads": map[string]any{
				"name": map[string]any{
					"length": "Name must be between %{min} and %{max} characters",
				},
			},
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
		assert.Error(t, err)
	})

	t.Run("supported languages sorted", func(t *testing.T) {
		t.Parallel()
		tr := newTestTranslator(t)
		assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
		assert.Equal(t, "es", tr.DefaultLanguage())
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)

	tests := []struct {
		name     string
		lang     string
		key      string
		args     []string
		expected string
	}{
		{name: "simple with param", lang: "en", key: "welcome", args: []string{"name", "Ana"}, expected: "Welcome, Ana!"},
		{name: "nested key", lang: "es", key: "leads.name.length", args: []string{"min", "2", "max", "100"}, expected: "El nombre debe tener entre 2 y 100 caracteres"},
		{name: "falls back to default language for key", lang: "en", key: "leads.only_es", expected: "Solo en español"},
		{name: "falls back to default language for unsupported lang", lang: "fr", key: "welcome", args: []string{"name", "Ana"}, expected: "Bienvenido, Ana!"},
		{name: "missing key returns key", lang: "en", key: "missing.key", expected: "missing.key"},
		{name: "non string value returns key", lang: "en", key: "leads.name", expected: "leads.name"},
		{name: "unknown placeholder kept", lang: "en", key: "welcome", expected: "Welcome, %{name}!"},
		{name: "odd args ignored", lang: "en", key: "welcome", args: []string{"name"}, expected: "Welcome, %{name}!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_NoFallbackToKey(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t, i18n.WithFallbackToKey(false), i18n.WithMissingTranslationsLogging(true))
	assert.Equal(t, "", tr.T("en", "missing.key"))
}

func TestTranslator_TdTmTc(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)

	assert.Equal(t, "fallback Ana", tr.Td("en", "missing", "fallback %{name}", "name", "Ana"))
	assert.Equal(t, "Welcome, Ana!", tr.Td("en", "welcome", "unused", "name", "Ana"))

	assert.Equal(t, "Name must be between 2 and 100 characters",
		tr.Tm("en", "leads.name.length", map[string]any{"min": 2, "max": 100}))

	ctx := i18n.SetLocale(context.Background(), "en")
	assert.Equal(t, "Welcome, Bo!", tr.Tc(ctx, "welcome", "name", "Bo"))
	assert.Equal(t, "Bienvenido, Bo!", tr.Tc(context.Background(), "welcome", "name", "Bo"))
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	assert.True(t, tr.HasTranslation("es", "leads.only_es"))
	assert.False(t, tr.HasTranslation("en", "leads.only_es"))
	assert.False(t, tr.HasTranslation("fr", "welcome"))
}
