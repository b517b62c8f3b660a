package api

import (
	"context"
	"net/http"
)

// Mode names the execution discipline compiled into the binary.
type Mode string

const (
	// ModeNonBlocking suspends callers cooperatively and honors context
	// cancellation while waiting for admission and for the response.
	ModeNonBlocking Mode = "non-blocking"

	// ModeBlocking parks the calling goroutine until admission and runs the
	// transport call to completion regardless of context cancellation.
	ModeBlocking Mode = "blocking"
)

// discipline decides how a call waits for admission and how it runs the
// transport call. Exactly one implementation is compiled in, selected by the
// resend_blocking build tag, and both feed the same request and response
// handling in Client.Do.
type discipline interface {
	admit(ctx context.Context) error
	perform(req *http.Request) (*http.Response, error)
}
