package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every field set
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nprompt: \"hasami> \"\nrender:\n  color: never\n  red-symbol: x\n  black-symbol: o\n  empty-symbol: \"-\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the values are read
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "hasami> ", conf.Prompt)
		assert.Equal(t, ColorNever, conf.Render.Color)
		assert.Equal(t, "x", conf.Render.RedSymbol)
		assert.Equal(t, "o", conf.Render.BlackSymbol)
		assert.Equal(t, "-", conf.Render.EmptySymbol)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: an empty config file
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, ColorAuto, conf.Render.Color)
		assert.Equal(t, "R", conf.Render.RedSymbol)
		assert.Equal(t, "B", conf.Render.BlackSymbol)
		assert.Equal(t, ".", conf.Render.EmptySymbol)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: info\n"), 0o600))
		t.Setenv("LOG_LEVEL", "debug")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
