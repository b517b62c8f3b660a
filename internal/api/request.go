package api

import (
	"net/http"
	"net/url"
	"strconv"
)

// RequestOption configures a single call to Client.Do.
type RequestOption func(*requestConfig)

type requestConfig struct {
	operation      string
	idempotencyKey string
	query          url.Values
	header         http.Header
}

// WithOperation names the logical operation for logs and metrics. Paths carry
// identifiers and are unsuitable as metric labels.
func WithOperation(name string) RequestOption {
	return func(rc *requestConfig) {
		rc.operation = name
	}
}

// WithIdempotencyKey attaches an Idempotency-Key header. An empty key is a
// no-op, so callers can pass optional keys straight through.
func WithIdempotencyKey(key string) RequestOption {
	return func(rc *requestConfig) {
		rc.idempotencyKey = key
	}
}

// WithHeader sets an extra request header.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.header == nil {
			rc.header = make(http.Header)
		}
		rc.header.Set(key, value)
	}
}

// WithQuery adds a query parameter. Empty values are skipped.
func WithQuery(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if value == "" {
			return
		}
		if rc.query == nil {
			rc.query = make(url.Values)
		}
		rc.query.Set(key, value)
	}
}

// WithQueryInt adds an integer query parameter when n is positive.
func WithQueryInt(key string, n int) RequestOption {
	return func(rc *requestConfig) {
		if n <= 0 {
			return
		}
		WithQuery(key, strconv.Itoa(n))(rc)
	}
}

func newRequestConfig(method string, opts []RequestOption) *requestConfig {
	rc := &requestConfig{operation: method}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}
