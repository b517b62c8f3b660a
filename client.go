package resend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sendkit/resend-go/internal/api"
)

// Client is the Resend API client. The resource services share one executor
// and therefore one rate limiter. A Client is safe for concurrent use;
// separate Clients do not share rate budgets.
type Client struct {
	apiClient *api.Client
	config    Config

	Emails     *EmailsService
	Batch      *BatchService
	Domains    *DomainsService
	APIKeys    *APIKeysService
	Audiences  *AudiencesService
	Contacts   *ContactsService
	Broadcasts *BroadcastsService
	Webhooks   *WebhooksService
	Templates  *TemplatesService
	Topics     *TopicsService
	Segments   *SegmentsService
	Receiving  *ReceivingService
}

// Config is a read-only view of the client configuration. The API key is
// reduced to a redacted hint.
type Config struct {
	BaseURL    string
	UserAgent  string
	RateLimit  int
	RateWindow time.Duration
	APIKeyHint string
}

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", c.BaseURL),
		slog.String("api_key", c.APIKeyHint),
		slog.String("user_agent", c.UserAgent),
		slog.Int("rate_limit", c.RateLimit),
		slog.Duration("rate_window", c.RateWindow),
	)
}

// service is embedded by every resource service.
type service struct {
	api *api.Client
}

func (s service) do(ctx context.Context, op, method, path string, body, result any, opts ...api.RequestOption) error {
	return s.api.Do(ctx, method, path, body, result, append([]api.RequestOption{api.WithOperation(op)}, opts...)...)
}

// Deleted is the acknowledgement returned by delete endpoints.
type Deleted struct {
	Object  string `json:"object"`
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// New creates a client authenticated with apiKey.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return newClient(api.Config{APIKey: apiKey}, cfg)
}

// NewFromEnv creates a client from RESEND_API_KEY and the optional
// RESEND_BASE_URL, RESEND_RATE_LIMIT and RESEND_RATE_WINDOW variables.
// Explicit options take precedence over the environment. It returns
// ErrMissingAPIKey when RESEND_API_KEY is unset or blank.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	envCfg, err := api.LoadEnvConfig(cfg.dotenvFiles...)
	if err != nil {
		return nil, err
	}
	return newClient(envCfg.Apply(api.Config{}), cfg)
}

func newClient(base api.Config, cfg *clientConfig) (*Client, error) {
	if cfg.baseURL != "" {
		base.BaseURL = cfg.baseURL
	}
	if cfg.rateSet {
		if cfg.rateLimit < 1 || cfg.rateWindow <= 0 {
			return nil, fmt.Errorf("invalid rate limit %d per %v: need at least 1 per positive window",
				cfg.rateLimit, cfg.rateWindow)
		}
		base.RateLimit = cfg.rateLimit
		base.RateWindow = cfg.rateWindow
	}
	base.UserAgent = UserAgent
	if cfg.userAgent != "" {
		base.UserAgent = cfg.userAgent
	}
	base.HTTPClient = cfg.resolveHTTPClient()
	base.Logger = cfg.logger
	if cfg.registerer != nil {
		metrics, err := api.NewMetrics(cfg.registerer)
		if err != nil {
			return nil, err
		}
		base.Metrics = metrics
	}

	apiClient, err := api.NewClient(base)
	if err != nil {
		return nil, err
	}

	svc := service{api: apiClient}
	c := &Client{
		apiClient: apiClient,
		config: Config{
			BaseURL:    apiClient.BaseURL(),
			UserAgent:  base.UserAgent,
			RateLimit:  apiClient.Limiter().Limit(),
			RateWindow: apiClient.Limiter().Window(),
			APIKeyHint: api.RedactKey(base.APIKey),
		},
		Emails:     &EmailsService{svc},
		Batch:      &BatchService{svc},
		Domains:    &DomainsService{svc},
		APIKeys:    &APIKeysService{svc},
		Audiences:  &AudiencesService{svc},
		Contacts:   &ContactsService{svc},
		Broadcasts: &BroadcastsService{svc},
		Webhooks:   &WebhooksService{svc},
		Templates:  &TemplatesService{svc},
		Topics:     &TopicsService{svc},
		Segments:   &SegmentsService{svc},
		Receiving:  &ReceivingService{svc},
	}
	return c, nil
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// Close stops the client from admitting new requests. Calls made after Close
// fail with ErrRateLimited. In-flight calls are unaffected.
func (c *Client) Close() error {
	c.apiClient.Close()
	return nil
}
