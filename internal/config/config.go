package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config holds all application configuration, read from the environment
type Config struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Content document. Relative paths are resolved against ContentRoot and
	// then its parent directory.
	ContentRoot  string `env:"CONTENT_ROOT" envDefault:"."`
	ContentPath  string `env:"CONTENT_PATH" envDefault:"content/content.json"`
	ContentCache bool   `env:"CONTENT_CACHE" envDefault:"true"`
	SiteLocale   string `env:"SITE_LOCALE" envDefault:"en"`

	// Portfolio API. Empty base URL disables it.
	ProfileAPIBaseURL string        `env:"PROFILE_API_BASE_URL"`
	ProfileAPITimeout time.Duration `env:"PROFILE_API_TIMEOUT" envDefault:"5s"`
	ProfileAPIRPS     float64       `env:"PROFILE_API_RPS" envDefault:"5"`
	ProfileAPIBurst   int           `env:"PROFILE_API_BURST" envDefault:"10"`

	locale   language.Tag
	logLevel slog.Level
}

// IsDevelopment returns true if the application is running in development mode
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ProfileAPIEnabled returns true if a portfolio API base URL is configured
func (c Config) ProfileAPIEnabled() bool {
	return c.ProfileAPIBaseURL != ""
}

// Locale returns the parsed site locale
func (c Config) Locale() language.Tag {
	return c.locale
}

// Level returns the parsed log level
func (c Config) Level() slog.Level {
	return c.logLevel
}

// Load parses environment variables and returns a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	locale, err := language.Parse(cfg.SiteLocale)
	if err != nil {
		return nil, fmt.Errorf("SITE_LOCALE %q: %w", cfg.SiteLocale, err)
	}
	cfg.locale = locale

	if err := cfg.logLevel.UnmarshalText([]byte(strings.TrimSpace(cfg.LogLevel))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	if cfg.ProfileAPITimeout <= 0 {
		return nil, fmt.Errorf("PROFILE_API_TIMEOUT must be positive, got %s", cfg.ProfileAPITimeout)
	}

	return cfg, nil
}
