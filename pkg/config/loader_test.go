package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/config"
)

type defaultsConfig struct {
	UseJSONNames bool   `env:"DEFAULTS_USE_JSON_NAMES" envDefault:"true"`
	MaxDepth     int    `env:"DEFAULTS_MAX_DEPTH" envDefault:"100"`
	Lang         string `env:"DEFAULTS_LANG" envDefault:"en"`
}

type cachedConfig struct {
	Value string `env:"CACHED_VALUE" envDefault:"default"`
}

type prefixedConfig struct {
	MaxDepth int `env:"MAX_DEPTH" envDefault:"1"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type fileConfig struct {
	UseJSONNames bool     `env:"CFGTEST_USE_JSON_NAMES" envDefault:"true"`
	MaxDepth     int      `env:"CFGTEST_MAX_DEPTH"`
	Langs        []string `env:"CFGTEST_LANGS" envSeparator:","`
	Quoted       string   `env:"CFGTEST_QUOTED"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.True(t, cfg.UseJSONNames)
		assert.Equal(t, 100, cfg.MaxDepth)
		assert.Equal(t, "en", cfg.Lang)
	})

	t.Run("cached per type", func(t *testing.T) {
		t.Cleanup(config.ResetCache)
		t.Setenv("CACHED_VALUE", "first")

		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CACHED_VALUE", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)

		var fresh cachedConfig
		require.NoError(t, config.Load(&fresh, config.WithoutCache()))
		assert.Equal(t, "second", fresh.Value)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Setenv("ORDERS_MAX_DEPTH", "7")

		var plain, prefixed prefixedConfig
		require.NoError(t, config.Load(&plain))
		require.NoError(t, config.Load(&prefixed, config.WithPrefix("ORDERS_")))
		assert.Equal(t, 1, plain.MaxDepth)
		assert.Equal(t, 7, prefixed.MaxDepth)
	})

	t.Run("missing required", func(t *testing.T) {
		os.Unsetenv("REQUIRED_VALUE")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
		assert.Panics(t, func() { config.MustLoad(cfg) })
	})
}

func TestLoadEnv(t *testing.T) {
	for _, k := range []string{"CFGTEST_USE_JSON_NAMES", "CFGTEST_MAX_DEPTH", "CFGTEST_LANGS", "CFGTEST_QUOTED"} {
		os.Unsetenv(k)
		t.Cleanup(func() { os.Unsetenv(k) })
	}
	t.Cleanup(config.ResetCache)

	require.NoError(t, config.LoadEnv("testdata/.env.validation"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.False(t, cfg.UseJSONNames)
	assert.Equal(t, 12, cfg.MaxDepth)
	assert.Equal(t, []string{"en", "de", "fr"}, cfg.Langs)
	assert.Equal(t, "quoted value", cfg.Quoted)

	err := config.LoadEnv("testdata/missing.env")
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
