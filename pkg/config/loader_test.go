package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/config"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// These tests read and modify the process environment and the shared
// cache, so none of them run in parallel.

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		var cfg validator.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, validator.Config{MaxDepth: 32, Language: "en"}, cfg)
	})

	t.Run("environment", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("VALIDATOR_STOP_ON_ERROR", "true")
		t.Setenv("VALIDATOR_LANGUAGE", "pl")

		var cfg validator.Config
		require.NoError(t, config.Load(&cfg))
		assert.True(t, cfg.StopOnError)
		assert.Equal(t, "pl", cfg.Language)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("VALIDATOR_LANGUAGE", "de")

		var first validator.Config
		require.NoError(t, config.Load(&first))

		t.Setenv("VALIDATOR_LANGUAGE", "fr")
		var second validator.Config
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "de", second.Language)

		config.ResetCache()
		var third validator.Config
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "fr", third.Language)
	})

	t.Run("parse error is not cached", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("VALIDATOR_MAX_DEPTH", "deep")

		var cfg validator.Config
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)

		t.Setenv("VALIDATOR_MAX_DEPTH", "4")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 4, cfg.MaxDepth)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[validator.Config](nil), config.ErrNilPointer)
	})
}

func TestLoadFiles(t *testing.T) {
	base := filepath.Join("testdata", "validator.env")
	local := filepath.Join("testdata", "local.env")

	t.Run("single file", func(t *testing.T) {
		var cfg validator.Config
		require.NoError(t, config.LoadFiles(&cfg, base))
		assert.Equal(t, validator.Config{
			StopOnError: true,
			MaxDepth:    8,
			Language:    "de",
		}, cfg)
	})

	t.Run("later files override earlier ones", func(t *testing.T) {
		var cfg validator.Config
		require.NoError(t, config.LoadFiles(&cfg, base, local))
		assert.Equal(t, validator.Config{
			StopOnError:             true,
			AppendExistingItemsOnly: true,
			MaxDepth:                8,
			Language:                "fr",
		}, cfg)
	})

	t.Run("process environment wins", func(t *testing.T) {
		t.Setenv("VALIDATOR_MAX_DEPTH", "2")

		var cfg validator.Config
		require.NoError(t, config.LoadFiles(&cfg, base))
		assert.Equal(t, 2, cfg.MaxDepth)
		assert.Equal(t, "de", cfg.Language)
	})

	t.Run("does not touch the cache", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		var fromFile validator.Config
		require.NoError(t, config.LoadFiles(&fromFile, base))

		var fromEnv validator.Config
		require.NoError(t, config.Load(&fromEnv))
		assert.Equal(t, "en", fromEnv.Language)
	})

	t.Run("errors", func(t *testing.T) {
		var cfg validator.Config
		assert.ErrorIs(t, config.LoadFiles(&cfg), config.ErrNoEnvFiles)
		assert.ErrorIs(t, config.LoadFiles[validator.Config](nil, base), config.ErrNilPointer)
		assert.ErrorIs(t, config.LoadFiles(&cfg, filepath.Join("testdata", "missing.env")), config.ErrLoadingEnvFile)
		assert.ErrorIs(t, config.LoadFiles(&cfg, filepath.Join("testdata", "broken.env")), config.ErrParsingConfig)
	})
}
