package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sendkit/resend-go/internal/apierrors"
	"github.com/sendkit/resend-go/internal/ratelimit"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.resend.com"

	// DefaultTimeout is the HTTP client timeout used when no client is supplied.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies requests when Config.UserAgent is empty.
	DefaultUserAgent = "resend-go"

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 10 << 20
)

// Config holds the configuration for creating a new Client. A Config is copied
// on construction; later changes to the value do not affect the Client.
type Config struct {
	// BaseURL is the API base URL. Defaults to DefaultBaseURL.
	BaseURL string

	// APIKey is the bearer credential. Required.
	APIKey string

	// UserAgent is sent on every request. Defaults to DefaultUserAgent.
	UserAgent string

	// RateLimit is the number of requests admitted per RateWindow.
	// Defaults to ratelimit.DefaultLimit.
	RateLimit int

	// RateWindow is the admission window. Defaults to ratelimit.DefaultWindow.
	RateWindow time.Duration

	// HTTPClient is the underlying transport. Defaults to a client with
	// DefaultTimeout.
	HTTPClient *http.Client

	// Logger receives per-request records. Defaults to a discarding logger.
	Logger *slog.Logger

	// Metrics records request outcomes. Nil disables metrics.
	Metrics *Metrics
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.RateLimit == 0 {
		c.RateLimit = ratelimit.DefaultLimit
	}
	if c.RateWindow == 0 {
		c.RateWindow = ratelimit.DefaultWindow
	}
	return c
}

// Validate reports configuration errors without applying defaults.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return apierrors.ErrMissingAPIKey
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base URL: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
		}
		if u.Host == "" {
			return fmt.Errorf("invalid base URL %q: missing host", c.BaseURL)
		}
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimit)
	}
	if c.RateWindow < 0 {
		return fmt.Errorf("rate window must be positive, got %v", c.RateWindow)
	}
	return nil
}

// LogValue implements slog.LogValuer. The API key is redacted.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", c.BaseURL),
		slog.String("api_key", RedactKey(c.APIKey)),
		slog.String("user_agent", c.UserAgent),
		slog.Int("rate_limit", c.RateLimit),
		slog.Duration("rate_window", c.RateWindow),
	)
}

// RedactKey keeps only the key prefix so logs can tell keys apart.
func RedactKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "***"
	}
	return key[:3] + "***"
}
