package apierrors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxSnippetLen bounds the raw body excerpt kept on Parse errors.
const MaxSnippetLen = 256

// Outcome describes a completed transport attempt.
type Outcome struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ContentType returns the response media type, or "" when absent.
func (o Outcome) ContentType() string {
	if o.Header == nil {
		return ""
	}
	return o.Header.Get("Content-Type")
}

// vendorError is the documented error body. Unknown fields are ignored and
// missing ones stay zero.
type vendorError struct {
	StatusCode int          `json:"statusCode"`
	Name       ErrorCode    `json:"name"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors"`
}

// Map converts a failed response into an *Error. It is total: every outcome
// yields exactly one kind and Map never panics.
//
// Precedence: 429 is always a rate-limit error; a body that is not JSON, or is
// JSON of the wrong shape, is a parse error; a recognized vendor code decides
// the kind; otherwise the status does.
func Map(o Outcome) *Error {
	if o.StatusCode == http.StatusTooManyRequests {
		e := &Error{
			Kind:       KindRateLimit,
			StatusCode: o.StatusCode,
			Message:    "too many requests",
			RateLimit:  parseRateLimitHeaders(o.Header),
		}
		if v, ok := decodeVendorError(o.Body); ok {
			e.Code = v.Name
			if v.Message != "" {
				e.Message = v.Message
			}
		}
		return e
	}

	trimmed := bytes.TrimSpace(o.Body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return &Error{
			Kind:       KindParse,
			StatusCode: o.StatusCode,
			Message:    nonJSONMessage(o),
		}
	}

	v, ok := decodeVendorError(trimmed)
	if !ok {
		return &Error{
			Kind:       KindParse,
			StatusCode: o.StatusCode,
			Message:    "error response does not match the documented schema",
		}
	}

	e := &Error{
		Kind:       KindFromStatus(o.StatusCode),
		StatusCode: o.StatusCode,
		Code:       v.Name,
		Message:    v.Message,
		Fields:     v.Errors,
	}
	if kind, known := codeKinds[v.Name]; known {
		e.Kind = kind
	}
	if e.Message == "" {
		e.Message = http.StatusText(o.StatusCode)
	}
	return e
}

// KindFromStatus classifies a non-2xx status without looking at the body.
// Statuses the API does not document fall back to KindServer.
func KindFromStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindAuthentication
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status == http.StatusBadRequest,
		status == http.StatusMethodNotAllowed,
		status == http.StatusConflict,
		status == http.StatusUnprocessableEntity,
		status == http.StatusUnavailableForLegalReasons:
		return KindValidation
	default:
		return KindServer
	}
}

func decodeVendorError(body []byte) (vendorError, bool) {
	var v vendorError
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return v, false
	}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return vendorError{}, false
	}
	return v, true
}

func nonJSONMessage(o Outcome) string {
	if len(bytes.TrimSpace(o.Body)) == 0 {
		return fmt.Sprintf("empty error response (status %d)", o.StatusCode)
	}
	if ct := o.ContentType(); ct != "" {
		return fmt.Sprintf("non-JSON error response (status %d, content-type %s)", o.StatusCode, ct)
	}
	return fmt.Sprintf("non-JSON error response (status %d)", o.StatusCode)
}

func parseRateLimitHeaders(h http.Header) *RateLimitInfo {
	if h == nil {
		return &RateLimitInfo{}
	}
	info := &RateLimitInfo{
		Limit:     headerInt(h, "Ratelimit-Limit"),
		Remaining: headerInt(h, "Ratelimit-Remaining"),
		Reset:     headerInt(h, "Ratelimit-Reset"),
	}
	if secs := headerInt(h, "Retry-After"); secs != nil && *secs >= 0 {
		info.RetryAfter = time.Duration(*secs) * time.Second
	}
	return info
}

func headerInt(h http.Header, key string) *int64 {
	raw := strings.TrimSpace(h.Get(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// Snippet returns a printable, whitespace-collapsed excerpt of body holding at
// most MaxSnippetLen bytes of content.
func Snippet(body []byte) string {
	s := strings.ToValidUTF8(string(bytes.TrimSpace(body)), "�")
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= MaxSnippetLen {
		return s
	}
	cut := MaxSnippetLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
