// Package api executes requests against the Resend REST API. Every call made
// through a [Client] follows the same pipeline: client-side rate-limit
// admission, one HTTP attempt, then classification of the outcome into an
// [apierrors.Error].
//
// # Client Creation
//
// [NewClient] takes a [Config]. Only the API key is required; the base URL,
// user agent and rate-limit parameters have defaults.
//
// # Execution Discipline
//
// The way a call waits is fixed at build time. The default build suspends
// cooperatively and honors context cancellation. Building with the
// resend_blocking tag parks the calling goroutine instead and lets an admitted
// request run to completion even if its context is cancelled. [CompiledMode]
// reports which one is active.
//
// # Retries
//
// The client never retries. Errors carry a Retryable flag computed from the
// error kind, the HTTP method and the presence of an idempotency key so
// callers can make that decision themselves.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. All calls share one limiter.
package api
