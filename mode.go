package resend

import "github.com/sendkit/resend-go/internal/api"

// Mode names an execution discipline.
type Mode = api.Mode

// Execution disciplines. Build with -tags resend_blocking to select
// ModeBlocking.
const (
	ModeNonBlocking = api.ModeNonBlocking
	ModeBlocking    = api.ModeBlocking
)

// ExecutionMode reports the discipline compiled into this binary.
//
// In ModeNonBlocking a call waiting for rate-limit admission, or for its
// response, returns as soon as its context is done. In ModeBlocking the
// calling goroutine sleeps until admission and an admitted request runs to
// completion, bounded only by the HTTP client timeout.
func ExecutionMode() Mode {
	return api.CompiledMode
}
