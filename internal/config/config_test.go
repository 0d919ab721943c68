package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FOLIO_CONTENT", "FOLIO_LOG_FILE", "FOLIO_LOG_LEVEL", "FOLIO_MARKDOWN_STYLE", "FOLIO_LOAD_DELAY", "FOLIO_MOUSE", "FOLIO_CONFIG"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1500*time.Millisecond, cfg.GetLoadDelay())
	assert.Equal(t, 100*time.Millisecond, cfg.GetSettleDelay())
	assert.Equal(t, 100*time.Millisecond, cfg.GetFragmentDelay())
	assert.Equal(t, 30, cfg.UI.CardWidth)
	assert.True(t, cfg.UI.Mouse)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Content.Path = "/tmp/content.yaml"
	cfg.UI.LoadDelay = "0s"
	cfg.UI.CardWidth = 24
	cfg.Logging.File = "/tmp/folio.log"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, time.Duration(0), loaded.GetLoadDelay())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  card_gap: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.UI.CardGap)
	assert.Equal(t, 30, cfg.UI.CardWidth)
	assert.Equal(t, "auto", cfg.UI.MarkdownStyle)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOLIO_CONTENT", "/srv/folio.db")
	t.Setenv("FOLIO_LOG_FILE", "/var/log/folio.log")
	t.Setenv("FOLIO_LOG_LEVEL", "debug")
	t.Setenv("FOLIO_MARKDOWN_STYLE", "notty")
	t.Setenv("FOLIO_LOAD_DELAY", "250ms")
	t.Setenv("FOLIO_MOUSE", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/folio.db", cfg.Content.Path)
	assert.Equal(t, "/var/log/folio.log", cfg.Logging.File)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "notty", cfg.UI.MarkdownStyle)
	assert.Equal(t, 250*time.Millisecond, cfg.GetLoadDelay())
	assert.False(t, cfg.UI.Mouse)
}

func TestLoad_InvalidEnvValuesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOLIO_LOAD_DELAY", "soon")
	t.Setenv("FOLIO_MOUSE", "maybe")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.GetLoadDelay())
	assert.True(t, cfg.UI.Mouse)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("ui: [not, a, map"), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("ui:\n  settle_delay: -1s\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "ui.settle_delay")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"narrow card", func(c *Config) { c.UI.CardWidth = 4 }, "card_width"},
		{"short card", func(c *Config) { c.UI.CardHeight = 2 }, "card_height"},
		{"negative gap", func(c *Config) { c.UI.CardGap = -1 }, "card_gap"},
		{"bad style", func(c *Config) { c.UI.MarkdownStyle = "neon" }, "markdown_style"},
		{"bad delay", func(c *Config) { c.UI.LoadDelay = "later" }, "load_delay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestResolvePath(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, "flag.yaml", ResolvePath("flag.yaml"))

	t.Setenv("FOLIO_CONFIG", "env.yaml")
	assert.Equal(t, "env.yaml", ResolvePath(""))

	t.Setenv("FOLIO_CONFIG", "")
	assert.Equal(t, DefaultPath(), ResolvePath(""))
	assert.Equal(t, "config.yaml", filepath.Base(DefaultPath()))
}
