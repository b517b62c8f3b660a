package resend

import (
	"errors"

	"github.com/sendkit/resend-go/internal/apierrors"
)

// Error is the single error type returned by API operations. Use errors.As
// to inspect it, or errors.Is with the sentinels below to test its kind.
type Error = apierrors.Error

// ErrorKind classifies an Error.
type ErrorKind = apierrors.Kind

// ErrorCode is the machine-readable code of a vendor error response.
type ErrorCode = apierrors.ErrorCode

// FieldError is a field-level validation detail from an error response.
type FieldError = apierrors.FieldError

// RateLimitInfo carries the rate-limit headers of a 429 response.
type RateLimitInfo = apierrors.RateLimitInfo

// Error kinds.
const (
	KindAuthentication = apierrors.KindAuthentication
	KindNotFound       = apierrors.KindNotFound
	KindValidation     = apierrors.KindValidation
	KindRateLimit      = apierrors.KindRateLimit
	KindServer         = apierrors.KindServer
	KindTransport      = apierrors.KindTransport
	KindParse          = apierrors.KindParse
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrAuthentication is returned when the API key is missing, invalid or restricted.
	ErrAuthentication = apierrors.ErrAuthentication

	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = apierrors.ErrNotFound

	// ErrValidation is returned when a request is rejected as invalid, either
	// by the API or before it was sent.
	ErrValidation = apierrors.ErrValidation

	// ErrRateLimited is returned when the API answered 429 or the client
	// limiter could not admit the call.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer is returned for 5xx and unclassified non-2xx responses.
	ErrServer = apierrors.ErrServer

	// ErrTransport is returned when no response was received.
	ErrTransport = apierrors.ErrTransport

	// ErrParse is returned when a body could not be decoded.
	ErrParse = apierrors.ErrParse

	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrIdentifierConsumed is returned when an identifier is reused after a
	// delete call consumed it.
	ErrIdentifierConsumed = apierrors.ErrIdentifierConsumed
)

// Vendor error codes.
const (
	CodeInvalidIdempotencyKey        = apierrors.CodeInvalidIdempotencyKey
	CodeValidationError              = apierrors.CodeValidationError
	CodeMissingAPIKey                = apierrors.CodeMissingAPIKey
	CodeRestrictedAPIKey             = apierrors.CodeRestrictedAPIKey
	CodeInvalidAPIKey                = apierrors.CodeInvalidAPIKey
	CodeNotFound                     = apierrors.CodeNotFound
	CodeMethodNotAllowed             = apierrors.CodeMethodNotAllowed
	CodeInvalidIdempotentRequest     = apierrors.CodeInvalidIdempotentRequest
	CodeConcurrentIdempotentRequests = apierrors.CodeConcurrentIdempotentRequests
	CodeInvalidAttachment            = apierrors.CodeInvalidAttachment
	CodeInvalidFromAddress           = apierrors.CodeInvalidFromAddress
	CodeInvalidAccess                = apierrors.CodeInvalidAccess
	CodeInvalidParameter             = apierrors.CodeInvalidParameter
	CodeInvalidRegion                = apierrors.CodeInvalidRegion
	CodeMissingRequiredField         = apierrors.CodeMissingRequiredField
	CodeMonthlyQuotaExceeded         = apierrors.CodeMonthlyQuotaExceeded
	CodeDailyQuotaExceeded           = apierrors.CodeDailyQuotaExceeded
	CodeRateLimitExceeded            = apierrors.CodeRateLimitExceeded
	CodeSecurityError                = apierrors.CodeSecurityError
	CodeApplicationError             = apierrors.CodeApplicationError
	CodeInternalServerError          = apierrors.CodeInternalServerError
)

// KindOf reports the kind of err and whether err wraps an *Error.
func KindOf(err error) (ErrorKind, bool) {
	return apierrors.KindOf(err)
}

// IsRetryable reports whether err is an *Error that is safe to retry.
func IsRetryable(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Retryable
}

func newValidationError(msg string, err error) error {
	return apierrors.NewValidationError(msg, err)
}
