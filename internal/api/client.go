package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sendkit/resend-go/internal/apierrors"
	"github.com/sendkit/resend-go/internal/logger"
	"github.com/sendkit/resend-go/internal/ratelimit"
)

// MaxIdempotencyKeyLen is the longest Idempotency-Key the API accepts.
const MaxIdempotencyKeyLen = 256

// Client executes API requests. Every call passes through the shared rate
// limiter, then the transport, then error mapping. Client is safe for
// concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	discipline discipline
	logger     *slog.Logger
	metrics    *Metrics
}

// NewClient creates a new API client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	limiter, err := ratelimit.New(cfg.RateLimit, cfg.RateWindow)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		limiter:    limiter,
		discipline: newDiscipline(limiter, httpClient),
		logger:     log.With(logger.Component("resend")),
		metrics:    cfg.Metrics,
	}, nil
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Limiter returns the limiter shared by every call on this client.
func (c *Client) Limiter() *ratelimit.Limiter {
	return c.limiter
}

// Close stops admitting requests. Calls made afterwards fail with a
// rate-limit error.
func (c *Client) Close() {
	c.limiter.Close()
}

// Do performs one API call. body, when non-nil, is sent as JSON. result, when
// non-nil, receives the decoded 2xx body. Every failure is an *apierrors.Error.
func (c *Client) Do(ctx context.Context, method, path string, body, result any, opts ...RequestOption) error {
	rc := newRequestConfig(method, opts)
	start := time.Now()

	status, wait, err := c.do(ctx, method, path, body, result, rc)
	elapsed := time.Since(start)

	if status != 0 {
		c.metrics.recordRequest(rc.operation, status, elapsed)
	}

	attrs := []slog.Attr{
		logger.Operation(rc.operation),
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(status),
		logger.Duration(elapsed),
		logger.Wait(wait),
		logger.Idempotent(rc.idempotencyKey != ""),
	}

	if err != nil {
		kind := "unknown"
		var apiErr *apierrors.Error
		if errors.As(err, &apiErr) {
			apiErr.Retryable = isRetryable(apiErr.Kind, method, rc.idempotencyKey != "")
			kind = apiErr.Kind.String()
		}
		c.metrics.recordError(rc.operation, kind)
		c.logger.LogAttrs(ctx, slog.LevelWarn, "request failed", append(attrs, logger.Kind(kind), logger.Error(err))...)
		return err
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "request completed", attrs...)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any, rc *requestConfig) (int, time.Duration, error) {
	if len(rc.idempotencyKey) > MaxIdempotencyKeyLen {
		return 0, 0, apierrors.NewValidationError(
			fmt.Sprintf("idempotency key exceeds %d characters", MaxIdempotencyKeyLen), nil)
	}

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, 0, apierrors.NewParseError("encode request body", err)
		}
		payload = data
	}

	req, err := c.newRequest(ctx, method, path, payload, rc)
	if err != nil {
		return 0, 0, apierrors.NewValidationError("build request", err)
	}

	waitStart := time.Now()
	if err := c.discipline.admit(ctx); err != nil {
		return 0, time.Since(waitStart), apierrors.NewRateLimitError(err)
	}
	wait := time.Since(waitStart)
	c.metrics.recordWait(wait)

	c.metrics.inFlight(1)
	defer c.metrics.inFlight(-1)

	resp, err := c.discipline.perform(req)
	if err != nil {
		return 0, wait, apierrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		e := apierrors.NewTransportError(fmt.Errorf("read response body: %w", err))
		e.StatusCode = resp.StatusCode
		return resp.StatusCode, wait, e
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, wait, apierrors.Map(apierrors.Outcome{
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       raw,
		})
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, wait, nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return resp.StatusCode, wait, &apierrors.Error{
			Kind:       apierrors.KindParse,
			StatusCode: resp.StatusCode,
			Message:    "decode response",
			Snippet:    apierrors.Snippet(raw),
			Err:        err,
		}
	}
	return resp.StatusCode, wait, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte, rc *requestConfig) (*http.Request, error) {
	target := c.baseURL + path
	if len(rc.query) > 0 {
		target += "?" + rc.query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, err
	}

	for key, values := range rc.header {
		req.Header[key] = values
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rc.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", rc.idempotencyKey)
	}
	return req, nil
}

// isRetryable reports whether repeating a failed call is both safe and
// potentially useful. Non-idempotent methods qualify only when an
// idempotency key makes the replay deduplicated server-side.
func isRetryable(kind apierrors.Kind, method string, hasKey bool) bool {
	switch kind {
	case apierrors.KindRateLimit, apierrors.KindServer, apierrors.KindTransport:
	default:
		return false
	}
	if hasKey {
		return true
	}
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}
