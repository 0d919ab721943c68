// Package config loads folio settings from a YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full folio configuration.
type Config struct {
	Content ContentConfig `yaml:"content"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// ContentConfig selects where portfolio content comes from. An empty Path
// uses the built-in content.
type ContentConfig struct {
	Path string `yaml:"path,omitempty"`
}

// UIConfig holds terminal presentation settings. Delays are Go duration
// strings ("1500ms", "0s").
type UIConfig struct {
	LoadDelay     string `yaml:"load_delay"`
	SettleDelay   string `yaml:"settle_delay"`
	FragmentDelay string `yaml:"fragment_delay"`
	CardWidth     int    `yaml:"card_width"`
	CardHeight    int    `yaml:"card_height"`
	CardGap       int    `yaml:"card_gap"`
	MarkdownStyle string `yaml:"markdown_style"` // glamour style: auto, dark, light, notty
	Mouse         bool   `yaml:"mouse"`
}

// LoggingConfig routes structured logs. The TUI owns the terminal, so an
// empty File discards logs.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

const (
	defaultLoadDelay     = 1500 * time.Millisecond
	defaultSettleDelay   = 100 * time.Millisecond
	defaultFragmentDelay = 100 * time.Millisecond
)

// ValidMarkdownStyles lists the glamour styles folio accepts.
var ValidMarkdownStyles = []string{"auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			LoadDelay:     defaultLoadDelay.String(),
			SettleDelay:   defaultSettleDelay.String(),
			FragmentDelay: defaultFragmentDelay.String(),
			CardWidth:     30,
			CardHeight:    12,
			CardGap:       2,
			MarkdownStyle: "auto",
			Mouse:         true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath is ~/.folio/config.yaml, or a relative .folio/config.yaml
// when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".folio", "config.yaml")
	}
	return filepath.Join(home, ".folio", "config.yaml")
}

// ResolvePath picks the config file: an explicit flag value, then
// FOLIO_CONFIG, then DefaultPath.
func ResolvePath(flag string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv("FOLIO_CONFIG"); v != "" {
		return v
	}
	return DefaultPath()
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FOLIO_CONTENT"); v != "" {
		c.Content.Path = v
	}
	if v := os.Getenv("FOLIO_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("FOLIO_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FOLIO_MARKDOWN_STYLE"); v != "" {
		c.UI.MarkdownStyle = v
	}
	if v := os.Getenv("FOLIO_LOAD_DELAY"); v != "" {
		if _, err := time.ParseDuration(v); err == nil {
			c.UI.LoadDelay = v
		}
	}
	if v := os.Getenv("FOLIO_MOUSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.Mouse = b
		}
	}
}

// Validate rejects settings the TUI cannot render with.
func (c *Config) Validate() error {
	for name, v := range map[string]string{
		"ui.load_delay":     c.UI.LoadDelay,
		"ui.settle_delay":   c.UI.SettleDelay,
		"ui.fragment_delay": c.UI.FragmentDelay,
	} {
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		if d < 0 {
			return fmt.Errorf("invalid %s %q: must not be negative", name, v)
		}
	}
	if c.UI.CardWidth < 8 {
		return fmt.Errorf("invalid ui.card_width %d: must be at least 8", c.UI.CardWidth)
	}
	if c.UI.CardHeight < 5 {
		return fmt.Errorf("invalid ui.card_height %d: must be at least 5", c.UI.CardHeight)
	}
	if c.UI.CardGap < 0 {
		return fmt.Errorf("invalid ui.card_gap %d: must not be negative", c.UI.CardGap)
	}
	if !validStyle(c.UI.MarkdownStyle) {
		return fmt.Errorf("invalid ui.markdown_style %q (valid: %s)", c.UI.MarkdownStyle, strings.Join(ValidMarkdownStyles, ", "))
	}
	return nil
}

func validStyle(s string) bool {
	for _, v := range ValidMarkdownStyles {
		if s == v {
			return true
		}
	}
	return false
}

func parseDelay(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

// GetLoadDelay is the simulated project loading delay.
func (c *Config) GetLoadDelay() time.Duration {
	return parseDelay(c.UI.LoadDelay, defaultLoadDelay)
}

// GetSettleDelay is the wait between loading and the first focus recompute.
func (c *Config) GetSettleDelay() time.Duration {
	return parseDelay(c.UI.SettleDelay, defaultSettleDelay)
}

// GetFragmentDelay is the wait before scrolling to a deep-link fragment.
func (c *Config) GetFragmentDelay() time.Duration {
	return parseDelay(c.UI.FragmentDelay, defaultFragmentDelay)
}
