package resend

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	rateLimit  int
	rateWindow time.Duration
	rateSet    bool
	userAgent  string
	logger     *slog.Logger
	registerer prometheus.Registerer

	// Only read by NewFromEnv.
	dotenvFiles []string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout. When combined with
// WithHTTPClient, the supplied client is copied and the copy gets the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRateLimit sets how many requests the client admits per window. limit
// must be at least 1 and window positive.
// Default: 9 per 1.1 seconds, just under the API's 10 per second.
func WithRateLimit(limit int, window time.Duration) Option {
	return func(c *clientConfig) {
		c.rateLimit = limit
		c.rateWindow = window
		c.rateSet = true
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger for request records. By default nothing is
// logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithMetrics registers request metrics on reg. Clients sharing a registerer
// share its collectors, which are labelled by operation rather than client.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}

// WithDotEnv makes NewFromEnv load the given dotenv files before reading the
// environment. Missing files are ignored. It has no effect on New.
func WithDotEnv(files ...string) Option {
	return func(c *clientConfig) {
		c.dotenvFiles = append(c.dotenvFiles, files...)
	}
}

func (c *clientConfig) resolveHTTPClient() *http.Client {
	switch {
	case c.httpClient != nil && c.timeout > 0:
		hc := *c.httpClient
		hc.Timeout = c.timeout
		return &hc
	case c.httpClient != nil:
		return c.httpClient
	case c.timeout > 0:
		return &http.Client{Timeout: c.timeout}
	default:
		return nil
	}
}
