package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/teamgate/pkg/config"
)

type loaderTestConfig struct {
	Addr  string `env:"TEAMGATE_TEST_LOADER_ADDR" envDefault:":8080"`
	Debug bool   `env:"TEAMGATE_TEST_LOADER_DEBUG" envDefault:"false"`
}

type requiredTestConfig struct {
	Token string `env:"TEAMGATE_TEST_LOADER_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults for missing variables", func(t *testing.T) {
		var cfg loaderTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.False(t, cfg.Debug)
	})

	t.Run("cached value survives environment changes", func(t *testing.T) {
		t.Setenv("TEAMGATE_TEST_LOADER_ADDR", ":9999")

		var cfg loaderTestConfig
		require.NoError(t, config.Load(&cfg))
		// First load of this type already cached the defaults.
		assert.Equal(t, ":8080", cfg.Addr)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredTestConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer is rejected", func(t *testing.T) {
		err := config.Load[loaderTestConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}
