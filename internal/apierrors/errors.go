// Package apierrors provides the error taxonomy shared by the executor and the
// public resend package.
package apierrors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for errors.Is() checks. Every *Error matches exactly one of
// the kind sentinels.
var (
	// ErrAuthentication is returned when the API key is missing, invalid or restricted.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound is returned when the requested resource or endpoint does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when the request was rejected as invalid.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited is returned when the local limiter or the API refused admission.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned for server-side failures and unclassified non-2xx statuses.
	ErrServer = errors.New("server error")

	// ErrTransport is returned when no response was received.
	ErrTransport = errors.New("transport error")

	// ErrParse is returned when a body could not be interpreted.
	ErrParse = errors.New("unparseable response")

	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrIdentifierConsumed is returned when an identifier is used after a
	// delete operation consumed it.
	ErrIdentifierConsumed = errors.New("identifier already consumed by a delete operation")
)

// Kind classifies an Error.
type Kind int

const (
	// KindServer is also the fallback for unrecognized non-2xx statuses.
	KindServer Kind = iota
	KindAuthentication
	KindNotFound
	KindValidation
	KindRateLimit
	KindTransport
	KindParse
)

var kindNames = map[Kind]string{
	KindServer:         "server",
	KindAuthentication: "authentication",
	KindNotFound:       "not_found",
	KindValidation:     "validation",
	KindRateLimit:      "rate_limit",
	KindTransport:      "transport",
	KindParse:          "parse",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinel returns the sentinel error matched by errors of this kind.
func (k Kind) Sentinel() error {
	switch k {
	case KindAuthentication:
		return ErrAuthentication
	case KindNotFound:
		return ErrNotFound
	case KindValidation:
		return ErrValidation
	case KindRateLimit:
		return ErrRateLimited
	case KindTransport:
		return ErrTransport
	case KindParse:
		return ErrParse
	default:
		return ErrServer
	}
}

// FieldError is a field-level validation detail.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RateLimitInfo carries the rate-limit headers of a 429 response. Nil fields
// were absent or malformed.
type RateLimitInfo struct {
	Limit      *int64
	Remaining  *int64
	Reset      *int64
	RetryAfter time.Duration
}

// Error is the single error type produced by the executor.
type Error struct {
	Kind       Kind
	StatusCode int       // 0 when no response was received
	Code       ErrorCode // vendor error name, if any
	Message    string
	Fields     []FieldError
	RateLimit  *RateLimitInfo
	// Snippet holds the beginning of an unparseable success body.
	Snippet string
	// Retryable reports whether repeating the same call is safe and may succeed.
	Retryable bool
	Err       error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(" error")
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " %d", e.StatusCode)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	switch {
	case e.Message != "":
		b.WriteString(": ")
		b.WriteString(e.Message)
	case e.Err != nil:
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Snippet != "" {
		fmt.Fprintf(&b, " [body: %q]", e.Snippet)
	}
	return b.String()
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	return target == e.Kind.Sentinel()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of err and whether err is an *Error.
func KindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// NewTransportError wraps a failure that prevented any response from arriving.
func NewTransportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// NewRateLimitError wraps a local admission failure.
func NewRateLimitError(err error) *Error {
	return &Error{Kind: KindRateLimit, Message: "request not admitted by client rate limiter", Err: err}
}

// NewParseError wraps a body or payload that could not be (de)serialized.
func NewParseError(msg string, err error) *Error {
	return &Error{Kind: KindParse, Message: msg, Err: err}
}

// NewValidationError reports a request rejected before it was sent.
func NewValidationError(msg string, err error) *Error {
	return &Error{Kind: KindValidation, Message: msg, Err: err}
}
