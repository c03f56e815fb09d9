// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LLM providers for the digest summary.
const (
	ProviderNone       = ""
	ProviderVibeRouter = "viberouter"
	ProviderGemini     = "gemini"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config captures runtime configuration for the terminal service.
type Config struct {
	ListenAddr string `env:"MVP90_LISTEN_ADDR" envDefault:":8080"`
	// DatasetPath points at an optional YAML overlay for the samples.
	DatasetPath string `env:"MVP90_DATASET"`

	AuthLatency   time.Duration `env:"MVP90_AUTH_LATENCY"   envDefault:"1s"`
	SearchLatency time.Duration `env:"MVP90_SEARCH_LATENCY" envDefault:"1500ms"`
	ReportLatency time.Duration `env:"MVP90_REPORT_LATENCY" envDefault:"2s"`

	FeedRefresh   time.Duration `env:"MVP90_FEED_REFRESH"   envDefault:"30s"`
	TrendsRefresh time.Duration `env:"MVP90_TRENDS_REFRESH" envDefault:"60s"`
	RefreshSettle time.Duration `env:"MVP90_REFRESH_SETTLE" envDefault:"1s"`

	SessionSecret string        `env:"MVP90_SESSION_SECRET" envDefault:"mvp90-terminal-dev-secret"`
	SessionTTL    time.Duration `env:"MVP90_SESSION_TTL"    envDefault:"12h"`

	LogLevel string `env:"MVP90_LOG_LEVEL" envDefault:"info"`

	LLMProvider    string  `env:"MVP90_LLM_PROVIDER"`
	LLMAPIKey      string  `env:"MVP90_LLM_API_KEY"`
	LLMModel       string  `env:"MVP90_LLM_MODEL"       envDefault:"gemini-2.5-flash"`
	LLMTemperature float64 `env:"MVP90_LLM_TEMPERATURE" envDefault:"0.3"`
	LLMMaxTokens   int     `env:"MVP90_LLM_MAX_TOKENS"  envDefault:"512"`
}

// FromEnv creates a configuration instance sourced from environment
// variables, after loading a .env file when one is present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c Config) Validate() error {
	for name, d := range map[string]time.Duration{
		"MVP90_AUTH_LATENCY":   c.AuthLatency,
		"MVP90_SEARCH_LATENCY": c.SearchLatency,
		"MVP90_REPORT_LATENCY": c.ReportLatency,
		"MVP90_REFRESH_SETTLE": c.RefreshSettle,
	} {
		if d < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalid, name)
		}
	}
	if c.FeedRefresh <= 0 || c.TrendsRefresh <= 0 {
		return fmt.Errorf("%w: refresh intervals must be positive", ErrInvalid)
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("%w: MVP90_SESSION_SECRET is required", ErrInvalid)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%w: MVP90_SESSION_TTL must be positive", ErrInvalid)
	}
	switch c.LLMProvider {
	case ProviderNone:
	case ProviderVibeRouter, ProviderGemini:
		if c.LLMAPIKey == "" {
			return fmt.Errorf("%w: MVP90_LLM_API_KEY is required for provider %q", ErrInvalid, c.LLMProvider)
		}
	default:
		return fmt.Errorf("%w: unknown MVP90_LLM_PROVIDER %q", ErrInvalid, c.LLMProvider)
	}
	return nil
}
