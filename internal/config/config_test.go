package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/compactbar/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		input := []byte(`theme: latte
log_level: debug
show_mode: false
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "latte", cfg.Theme)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.False(t, cfg.ShowMode)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte(`theme: frappe`))
		require.NoError(t, err)
		assert.Equal(t, "frappe", cfg.Theme)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.ShowMode)
	})

	t.Run("empty config", func(t *testing.T) {
		cfg, err := config.Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := config.Parse([]byte(`theme: solarized`))
		assert.ErrorIs(t, err, config.ErrUnknownTheme)
	})

	t.Run("unknown log level", func(t *testing.T) {
		_, err := config.Parse([]byte(`log_level: loud`))
		assert.ErrorIs(t, err, config.ErrUnknownLogLevel)
	})
}

func TestMarshalConfig(t *testing.T) {
	cfg := config.Config{Theme: "macchiato", LogLevel: "trace", ShowMode: false}

	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	parsed, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: latte\n"), 0644))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "latte", cfg.Theme)
}

func TestFromMap(t *testing.T) {
	t.Run("overlays known keys", func(t *testing.T) {
		cfg, err := config.FromMap(config.Default(), map[string]string{
			"theme":     " Latte ",
			"show_mode": "false",
			"unrelated": "ignored",
		})
		require.NoError(t, err)
		assert.Equal(t, "latte", cfg.Theme)
		assert.False(t, cfg.ShowMode)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("nil map keeps base", func(t *testing.T) {
		base := config.Config{Theme: "frappe", LogLevel: "error", ShowMode: true}
		cfg, err := config.FromMap(base, nil)
		require.NoError(t, err)
		assert.Equal(t, base, cfg)
	})

	t.Run("bad bool", func(t *testing.T) {
		_, err := config.FromMap(config.Default(), map[string]string{"show_mode": "maybe"})
		assert.Error(t, err)
	})

	t.Run("bad theme", func(t *testing.T) {
		_, err := config.FromMap(config.Default(), map[string]string{"theme": "dracula"})
		assert.ErrorIs(t, err, config.ErrUnknownTheme)
	})
}
