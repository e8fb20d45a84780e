package config_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatbridge/leadcapture/pkg/config"
)

type defaultsConfig struct {
	Addr    string        `env:"CFG_TEST_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"10s"`
	Enabled bool          `env:"CFG_TEST_ENABLED" envDefault:"true"`
}

type successConfig struct {
	URL   string `env:"CFG_TEST_URL"`
	Count int    `env:"CFG_TEST_COUNT"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type nestedConfig struct {
	Inner struct {
		Name string `env:"CFG_TEST_NESTED_NAME" envDefault:"inner"`
	}
}

type validatedConfig struct {
	Value string `env:"CFG_TEST_VALIDATED"`
}

func (c *validatedConfig) Validate() error {
	if c.Value == "bad" {
		return errors.New("value must not be bad")
	}
	return nil
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("CFG_TEST_ADDR")
	os.Unsetenv("CFG_TEST_TIMEOUT")
	os.Unsetenv("CFG_TEST_ENABLED")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.True(t, cfg.Enabled)
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("CFG_TEST_URL", "https://n8n.example.com/webhook/lead")
	t.Setenv("CFG_TEST_COUNT", "3")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "https://n8n.example.com/webhook/lead", cfg.URL)
	assert.Equal(t, 3, cfg.Count)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("CFG_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CFG_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Nested(t *testing.T) {
	os.Unsetenv("CFG_TEST_NESTED_NAME")

	var cfg nestedConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "inner", cfg.Inner.Name)
}

func TestLoad_ValidationFailureIsNotCached(t *testing.T) {
	t.Setenv("CFG_TEST_VALIDATED", "bad")

	var cfg validatedConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv("CFG_TEST_VALIDATED", "good")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "good", cfg.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("CFG_TEST_REQUIRED")

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
