//go:build resend_blocking

package api

import (
	"context"
	"net/http"

	"github.com/sendkit/resend-go/internal/ratelimit"
)

// CompiledMode is the discipline selected at build time.
const CompiledMode = ModeBlocking

type blocking struct {
	limiter    *ratelimit.Limiter
	httpClient *http.Client
}

func newDiscipline(l *ratelimit.Limiter, hc *http.Client) discipline {
	return &blocking{limiter: l, httpClient: hc}
}

// admit ignores ctx: the goroutine sleeps until its reserved slot.
func (d *blocking) admit(context.Context) error {
	return d.limiter.AcquireBlocking()
}

// perform detaches the request from caller cancellation. The HTTP client
// timeout still bounds the call.
func (d *blocking) perform(req *http.Request) (*http.Response, error) {
	return d.httpClient.Do(req.WithContext(context.WithoutCancel(req.Context())))
}
