package apierrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "status code only",
			err:      &Error{Kind: KindServer, StatusCode: 500},
			expected: "server error 500",
		},
		{
			name:     "with code and message",
			err:      &Error{Kind: KindValidation, StatusCode: 422, Code: CodeInvalidFromAddress, Message: "bad from"},
			expected: "validation error 422 (invalid_from_address): bad from",
		},
		{
			name:     "transport wraps cause",
			err:      NewTransportError(errors.New("connection refused")),
			expected: "transport error: connection refused",
		},
		{
			name:     "parse with snippet",
			err:      &Error{Kind: KindParse, StatusCode: 200, Message: "decode response", Snippet: "not json"},
			expected: `parse error 200: decode response [body: "not json"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	sentinels := []error{
		ErrAuthentication, ErrNotFound, ErrValidation, ErrRateLimited,
		ErrServer, ErrTransport, ErrParse,
	}
	kinds := []Kind{
		KindAuthentication, KindNotFound, KindValidation, KindRateLimit,
		KindServer, KindTransport, KindParse,
	}

	for i, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &Error{Kind: kind})
			for j, sentinel := range sentinels {
				got := errors.Is(err, sentinel)
				if got != (i == j) {
					t.Errorf("errors.Is(%v, %v) = %v, want %v", kind, sentinel, got, i == j)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := NewRateLimitError(context.DeadlineExceeded)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Error("expected errors.Is(err, ErrRateLimited)")
	}

	consumed := NewValidationError("email id", ErrIdentifierConsumed)
	if !errors.Is(consumed, ErrIdentifierConsumed) || !errors.Is(consumed, ErrValidation) {
		t.Error("consumed identifier error should match both sentinels")
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("op: %w", &Error{Kind: KindNotFound}))
	if !ok || kind != KindNotFound {
		t.Errorf("KindOf() = %v, %v, want not_found, true", kind, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf(plain error) should report false")
	}
}

func TestMap_Table(t *testing.T) {
	jsonHeader := http.Header{"Content-Type": []string{"application/json"}}
	htmlHeader := http.Header{"Content-Type": []string{"text/html; charset=utf-8"}}

	tests := []struct {
		name   string
		status int
		header http.Header
		body   string
		want   Kind
		code   ErrorCode
	}{
		{"401 structured", 401, jsonHeader, `{"statusCode":401,"name":"missing_api_key","message":"Missing API key"}`, KindAuthentication, CodeMissingAPIKey},
		{"403 invalid key", 403, jsonHeader, `{"statusCode":403,"name":"invalid_api_key","message":"API key is invalid"}`, KindAuthentication, CodeInvalidAPIKey},
		{"403 sandbox validation", 403, jsonHeader, `{"statusCode":403,"name":"validation_error","message":"You can only send testing emails"}`, KindValidation, CodeValidationError},
		{"403 without code", 403, jsonHeader, `{"message":"forbidden"}`, KindAuthentication, ""},
		{"404", 404, jsonHeader, `{"statusCode":404,"name":"not_found","message":"Email not found"}`, KindNotFound, CodeNotFound},
		{"422 validation", 422, jsonHeader, `{"statusCode":422,"name":"missing_required_field","message":"Missing to"}`, KindValidation, CodeMissingRequiredField},
		{"409 idempotency conflict", 409, jsonHeader, `{"statusCode":409,"name":"invalid_idempotent_request","message":"payload differs"}`, KindValidation, CodeInvalidIdempotentRequest},
		{"429 structured", 429, jsonHeader, `{"statusCode":429,"name":"rate_limit_exceeded","message":"slow down"}`, KindRateLimit, CodeRateLimitExceeded},
		{"429 html", 429, htmlHeader, `<html>Too many</html>`, KindRateLimit, ""},
		{"429 empty", 429, nil, ``, KindRateLimit, ""},
		{"quota code on 403", 403, jsonHeader, `{"name":"daily_quota_exceeded","message":"quota"}`, KindRateLimit, CodeDailyQuotaExceeded},
		{"500 structured", 500, jsonHeader, `{"statusCode":500,"name":"internal_server_error","message":"oops"}`, KindServer, CodeInternalServerError},
		{"503 unknown code", 503, jsonHeader, `{"name":"something_new","message":"maintenance"}`, KindServer, "something_new"},
		{"422 unknown code", 422, jsonHeader, `{"name":"something_new"}`, KindValidation, "something_new"},
		{"418 unknown status", 418, jsonHeader, `{"message":"teapot"}`, KindServer, ""},
		{"413 undocumented status", 413, jsonHeader, `{"message":"too large"}`, KindServer, ""},
		{"431 undocumented status", 431, jsonHeader, `{"message":"x"}`, KindServer, ""},
		{"499 undocumented status", 499, jsonHeader, `{"message":"x"}`, KindServer, ""},
		{"413 with vendor code", 413, jsonHeader, `{"name":"invalid_attachment","message":"x"}`, KindValidation, "invalid_attachment"},
		{"302 unexpected status", 302, jsonHeader, `{}`, KindServer, ""},
		{"599 unknown status", 599, jsonHeader, `{"extra":true}`, KindServer, ""},
		{"502 html outage", 502, htmlHeader, `<html><body>Bad gateway</body></html>`, KindParse, ""},
		{"500 empty body", 500, nil, ``, KindParse, ""},
		{"400 json array", 400, jsonHeader, `[1,2,3]`, KindParse, ""},
		{"400 schema mismatch", 400, jsonHeader, `{"message":42}`, KindParse, ""},
		{"400 truncated json", 400, jsonHeader, `{"message":"cut`, KindParse, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(Outcome{StatusCode: tt.status, Header: tt.header, Body: []byte(tt.body)})
			if got == nil {
				t.Fatal("Map() returned nil")
			}
			if got.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.want)
			}
			if got.Code != tt.code {
				t.Errorf("Code = %q, want %q", got.Code, tt.code)
			}
			if got.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", got.StatusCode, tt.status)
			}
		})
	}
}

func TestMap_HTMLIsNotSurfaced(t *testing.T) {
	body := `<html><head><title>502</title></head><body>cloudflare</body></html>`
	got := Map(Outcome{
		StatusCode: 502,
		Header:     http.Header{"Content-Type": []string{"text/html"}},
		Body:       []byte(body),
	})
	if strings.Contains(got.Error(), "<html>") {
		t.Errorf("Error() leaks raw HTML: %s", got.Error())
	}
	if got.Snippet != "" {
		t.Errorf("Snippet = %q, want empty", got.Snippet)
	}
}

func TestMap_RateLimitHeaders(t *testing.T) {
	header := http.Header{}
	header.Set("ratelimit-limit", "10")
	header.Set("ratelimit-remaining", "0")
	header.Set("ratelimit-reset", "1")
	header.Set("retry-after", "2")

	got := Map(Outcome{StatusCode: 429, Header: header})
	if got.RateLimit == nil {
		t.Fatal("RateLimit is nil")
	}
	if got.RateLimit.Limit == nil || *got.RateLimit.Limit != 10 {
		t.Errorf("Limit = %v, want 10", got.RateLimit.Limit)
	}
	if got.RateLimit.Remaining == nil || *got.RateLimit.Remaining != 0 {
		t.Errorf("Remaining = %v, want 0", got.RateLimit.Remaining)
	}
	if got.RateLimit.Reset == nil || *got.RateLimit.Reset != 1 {
		t.Errorf("Reset = %v, want 1", got.RateLimit.Reset)
	}
	if got.RateLimit.RetryAfter != 2*time.Second {
		t.Errorf("RetryAfter = %v, want 2s", got.RateLimit.RetryAfter)
	}

	header.Set("ratelimit-limit", "ten")
	got = Map(Outcome{StatusCode: 429, Header: header})
	if got.RateLimit.Limit != nil {
		t.Errorf("malformed header parsed as %d", *got.RateLimit.Limit)
	}
}

func TestMap_FieldDetails(t *testing.T) {
	body := `{"statusCode":422,"name":"validation_error","message":"invalid","errors":[{"field":"to","message":"required"}],"unknown":{"nested":true}}`
	got := Map(Outcome{StatusCode: 422, Body: []byte(body)})

	if got.Kind != KindValidation {
		t.Fatalf("Kind = %v, want validation", got.Kind)
	}
	if len(got.Fields) != 1 || got.Fields[0].Field != "to" || got.Fields[0].Message != "required" {
		t.Errorf("Fields = %+v, want [{to required}]", got.Fields)
	}
}

func TestMap_MissingMessageFallsBackToStatusText(t *testing.T) {
	got := Map(Outcome{StatusCode: 404, Body: []byte(`{}`)})
	if got.Message != "Not Found" {
		t.Errorf("Message = %q, want %q", got.Message, "Not Found")
	}
}

func TestSnippet(t *testing.T) {
	if got := Snippet([]byte("  not \n json  ")); got != "not json" {
		t.Errorf("Snippet() = %q, want %q", got, "not json")
	}

	long := strings.Repeat("é", MaxSnippetLen)
	got := Snippet([]byte(long))
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long snippet not truncated: %d bytes", len(got))
	}
	if len(got) > MaxSnippetLen+len("...") {
		t.Errorf("snippet length = %d, want <= %d", len(got), MaxSnippetLen+3)
	}
	if !strings.HasPrefix(long, strings.TrimSuffix(got, "...")) {
		t.Error("truncation split a multi-byte rune")
	}
}

func TestErrorCode_Known(t *testing.T) {
	if !CodeValidationError.Known() {
		t.Error("validation_error should be known")
	}
	if ErrorCode("brand_new").Known() {
		t.Error("brand_new should not be known")
	}
}
