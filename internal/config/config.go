package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/text/language"
)

const (
	defaultMaxDocumentBytes      = 10 << 20 // 10MB
	defaultMaxConcurrentSections = 4
	defaultReloadDebounce        = 500 * time.Millisecond
	defaultStatsWindow           = time.Hour
)

type Config struct {
	Port string `yaml:"port" env:"PORT" env-default:"8090"`

	// Section catalog. Empty path means the built-in catalog.
	CatalogPath           string        `yaml:"catalog_path" env:"CATALOG_PATH"`
	CatalogAutoReload     bool          `yaml:"catalog_auto_reload" env:"CATALOG_AUTO_RELOAD" env-default:"false"`
	CatalogReloadDebounce time.Duration `yaml:"catalog_reload_debounce" env:"CATALOG_RELOAD_DEBOUNCE" env-default:"500ms"`

	// Request limits
	MaxDocumentBytes      int64 `yaml:"max_document_bytes" env:"MAX_DOCUMENT_BYTES" env-default:"10485760"`
	MaxConcurrentSections int   `yaml:"max_concurrent_sections" env:"MAX_CONCURRENT_SECTIONS" env-default:"4"`

	// Used when a request names no language.
	DefaultLanguage string `yaml:"default_language" env:"DEFAULT_LANGUAGE" env-default:"zh-Hant"`

	StatsWindow time.Duration `yaml:"stats_window" env:"STATS_WINDOW" env-default:"1h"`
	LogLevel    string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from environment variables, or from the YAML file
// named by CONFIG_PATH with environment variables taking priority.
func Load() (Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}

	cfg.clamp()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func (c *Config) clamp() {
	if c.MaxDocumentBytes <= 0 {
		c.MaxDocumentBytes = defaultMaxDocumentBytes
	}
	if c.MaxConcurrentSections <= 0 {
		c.MaxConcurrentSections = defaultMaxConcurrentSections
	}
	if c.CatalogReloadDebounce <= 0 {
		c.CatalogReloadDebounce = defaultReloadDebounce
	}
	if c.StatsWindow <= 0 {
		c.StatsWindow = defaultStatsWindow
	}
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.CatalogAutoReload && c.CatalogPath == "" {
		return errors.New("CATALOG_AUTO_RELOAD requires CATALOG_PATH")
	}
	if _, err := language.Parse(c.DefaultLanguage); err != nil {
		return fmt.Errorf("DEFAULT_LANGUAGE %q: %w", c.DefaultLanguage, err)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return nil
}

// SlogLevel returns the parsed log level, or info if it does not parse.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
