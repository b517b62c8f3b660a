package apierrors

// ErrorCode is the machine-readable "name" field of a vendor error body.
type ErrorCode string

// Vendor error codes. See https://resend.com/docs/api-reference/errors.
const (
	CodeInvalidIdempotencyKey        ErrorCode = "invalid_idempotency_key"
	CodeValidationError              ErrorCode = "validation_error"
	CodeMissingAPIKey                ErrorCode = "missing_api_key"
	CodeRestrictedAPIKey             ErrorCode = "restricted_api_key"
	CodeInvalidAPIKey                ErrorCode = "invalid_api_key"
	CodeNotFound                     ErrorCode = "not_found"
	CodeMethodNotAllowed             ErrorCode = "method_not_allowed"
	CodeInvalidIdempotentRequest     ErrorCode = "invalid_idempotent_request"
	CodeConcurrentIdempotentRequests ErrorCode = "concurrent_idempotent_requests"
	CodeInvalidAttachment            ErrorCode = "invalid_attachment"
	CodeInvalidFromAddress           ErrorCode = "invalid_from_address"
	CodeInvalidAccess                ErrorCode = "invalid_access"
	CodeInvalidParameter             ErrorCode = "invalid_parameter"
	CodeInvalidRegion                ErrorCode = "invalid_region"
	CodeMissingRequiredField         ErrorCode = "missing_required_field"
	CodeMonthlyQuotaExceeded         ErrorCode = "monthly_quota_exceeded"
	CodeDailyQuotaExceeded           ErrorCode = "daily_quota_exceeded"
	CodeRateLimitExceeded            ErrorCode = "rate_limit_exceeded"
	CodeSecurityError                ErrorCode = "security_error"
	CodeApplicationError             ErrorCode = "application_error"
	CodeInternalServerError          ErrorCode = "internal_server_error"
)

// codeKinds maps recognized vendor codes to the kind they denote regardless
// of status. validation_error also arrives with 403 for sandbox recipient
// restrictions and is still a validation failure there.
var codeKinds = map[ErrorCode]Kind{
	CodeInvalidIdempotencyKey:        KindValidation,
	CodeValidationError:              KindValidation,
	CodeMissingAPIKey:                KindAuthentication,
	CodeRestrictedAPIKey:             KindAuthentication,
	CodeInvalidAPIKey:                KindAuthentication,
	CodeNotFound:                     KindNotFound,
	CodeMethodNotAllowed:             KindValidation,
	CodeInvalidIdempotentRequest:     KindValidation,
	CodeConcurrentIdempotentRequests: KindValidation,
	CodeInvalidAttachment:            KindValidation,
	CodeInvalidFromAddress:           KindValidation,
	CodeInvalidAccess:                KindValidation,
	CodeInvalidParameter:             KindValidation,
	CodeInvalidRegion:                KindValidation,
	CodeMissingRequiredField:         KindValidation,
	CodeMonthlyQuotaExceeded:         KindRateLimit,
	CodeDailyQuotaExceeded:           KindRateLimit,
	CodeRateLimitExceeded:            KindRateLimit,
	CodeSecurityError:                KindValidation,
	CodeApplicationError:             KindServer,
	CodeInternalServerError:          KindServer,
}

// Known reports whether c is part of the documented vendor code set.
func (c ErrorCode) Known() bool {
	_, ok := codeKinds[c]
	return ok
}
