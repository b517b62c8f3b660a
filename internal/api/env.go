package api

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/sendkit/resend-go/internal/apierrors"
)

// EnvConfig is the subset of Config that can be supplied through the
// environment.
type EnvConfig struct {
	APIKey     string        `env:"RESEND_API_KEY"`
	BaseURL    string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	RateLimit  int           `env:"RESEND_RATE_LIMIT" envDefault:"9"`
	RateWindow time.Duration `env:"RESEND_RATE_WINDOW" envDefault:"1100ms"`
}

// LoadEnvConfig reads EnvConfig from the process environment. Any dotenv
// files given are loaded first; missing files are skipped and variables
// already set in the environment win. A missing or blank RESEND_API_KEY
// yields apierrors.ErrMissingAPIKey. Rate settings that are present must be
// positive; only unset ones fall back to the defaults.
func LoadEnvConfig(dotenvFiles ...string) (EnvConfig, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return EnvConfig{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg, err := env.ParseAs[EnvConfig]()
	if err != nil {
		return EnvConfig{}, fmt.Errorf("parse environment: %w", err)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return EnvConfig{}, apierrors.ErrMissingAPIKey
	}
	if cfg.RateLimit < 1 {
		return EnvConfig{}, fmt.Errorf("RESEND_RATE_LIMIT must be at least 1, got %d", cfg.RateLimit)
	}
	if cfg.RateWindow <= 0 {
		return EnvConfig{}, fmt.Errorf("RESEND_RATE_WINDOW must be positive, got %v", cfg.RateWindow)
	}
	return cfg, nil
}

// Apply copies the environment values onto cfg.
func (e EnvConfig) Apply(cfg Config) Config {
	cfg.APIKey = e.APIKey
	cfg.BaseURL = e.BaseURL
	cfg.RateLimit = e.RateLimit
	cfg.RateWindow = e.RateWindow
	return cfg
}
