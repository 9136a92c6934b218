package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strvalid/pkg/config"
)

type cliConfig struct {
	Lang      string `env:"LANG" envDefault:"en"`
	Output    string `env:"OUTPUT" envDefault:"text"`
	MinLength int    `env:"MIN" envDefault:"8"`
}

type requiredConfig struct {
	Service string `env:"STRVALID_TEST_REQUIRED_SERVICE,required"`
}

type cachedConfig struct {
	Value string `env:"STRVALID_TEST_CACHED" envDefault:"default"`
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		var cfg cliConfig
		require.NoError(t, config.Parse(&cfg, config.WithEnvironment(map[string]string{})))
		assert.Equal(t, cliConfig{Lang: "en", Output: "text", MinLength: 8}, cfg)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()

		var cfg cliConfig
		err := config.Parse(&cfg,
			config.WithPrefix("STRVALID_"),
			config.WithEnvironment(map[string]string{
				"STRVALID_LANG": "de",
				"STRVALID_MIN":  "12",
				"LANG":          "fr",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, "de", cfg.Lang)
		assert.Equal(t, 12, cfg.MinLength)
		assert.Equal(t, "text", cfg.Output)
	})

	t.Run("bad value", func(t *testing.T) {
		t.Parallel()

		var cfg cliConfig
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{"MIN": "eight"}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()

		var cfg requiredConfig
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()

		var cfg *cliConfig
		assert.ErrorIs(t, config.Parse(cfg), config.ErrNilPointer)
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoad_Caches(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("STRVALID_TEST_CACHED", "first")
	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("STRVALID_TEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.ResetCache()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_FailureIsNotCached(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	os.Unsetenv("STRVALID_TEST_REQUIRED_SERVICE")
	var cfg requiredConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("STRVALID_TEST_REQUIRED_SERVICE", "strvalid")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "strvalid", cfg.Service)
}

func TestLoadEnv(t *testing.T) {
	for _, key := range []string{"STRVALID_TEST_LANG", "STRVALID_TEST_OUTPUT", "STRVALID_TEST_MIN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	require.NoError(t, config.LoadEnv("testdata/cli.env"))

	var cfg cliConfig
	require.NoError(t, config.Parse(&cfg, config.WithPrefix("STRVALID_TEST_")))
	assert.Equal(t, cliConfig{Lang: "de", Output: "json", MinLength: 12}, cfg)

	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
