// Package logger holds slog attribute helpers used by the executor.
//
// Helpers return an empty slog.Attr for zero inputs so call sites can pass
// optional values without nil checks; slog drops empty attributes.
package logger

import (
	"io"
	"log/slog"
	"time"
)

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	if code == 0 {
		return slog.Attr{}
	}
	return slog.Int("status_code", code)
}

// Operation creates an attribute naming the logical API operation.
func Operation(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("operation", name)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Wait creates an attribute for time spent waiting on the rate limiter.
func Wait(d time.Duration) slog.Attr {
	if d <= 0 {
		return slog.Attr{}
	}
	return slog.Duration("rate_limit_wait", d)
}

// Kind creates an attribute for an error classification.
func Kind(kind string) slog.Attr {
	return slog.String("error_kind", kind)
}

// Idempotent records whether an idempotency key accompanied the request.
// The key itself is never logged.
func Idempotent(present bool) slog.Attr {
	if !present {
		return slog.Attr{}
	}
	return slog.Bool("idempotent", true)
}
