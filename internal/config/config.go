package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Journal JournalConfig
	Log     LogConfig
	Demo    DemoConfig
	Keys    map[string][]string
}

// JournalConfig holds sqlite activity journal settings.
type JournalConfig struct {
	Enabled bool
	Path    string
}

// LogConfig holds logging settings. An empty File discards logs, since the
// terminal belongs to the TUI.
type LogConfig struct {
	Level string
	File  string
}

// DemoConfig holds settings for the bundled dialog flows.
type DemoConfig struct {
	ConfirmDelay time.Duration `mapstructure:"confirm_delay"`
	DefaultNote  string        `mapstructure:"default_note"`
}

// DefaultPath returns the config file location: $MODALSTACK_CONFIG or
// ~/.config/modalstack/config.toml.
func DefaultPath() string {
	if p := os.Getenv("MODALSTACK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "modalstack", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "modalstack", "journal.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("demo.confirm_delay", 800*time.Millisecond)
	v.SetDefault("demo.default_note", "Wants to upgrade to the pro plan")
	v.SetDefault("keys", map[string][]string{})
}

// Load reads configuration from path (or DefaultPath when empty) and env.
// Env var overrides use prefix MODALSTACK_. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("MODALSTACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Demo.ConfirmDelay < 0 {
		return Config{}, fmt.Errorf("demo.confirm_delay must not be negative, got %s", c.Demo.ConfirmDelay)
	}
	return c, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("journal.enabled", cfg.Journal.Enabled)
	v.Set("journal.path", cfg.Journal.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("demo.confirm_delay", cfg.Demo.ConfirmDelay.String())
	v.Set("demo.default_note", cfg.Demo.DefaultNote)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
