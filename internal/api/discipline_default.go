//go:build !resend_blocking

package api

import (
	"context"
	"net/http"

	"github.com/sendkit/resend-go/internal/ratelimit"
)

// CompiledMode is the discipline selected at build time.
const CompiledMode = ModeNonBlocking

type cooperative struct {
	limiter    *ratelimit.Limiter
	httpClient *http.Client
}

func newDiscipline(l *ratelimit.Limiter, hc *http.Client) discipline {
	return &cooperative{limiter: l, httpClient: hc}
}

func (d *cooperative) admit(ctx context.Context) error {
	return d.limiter.Acquire(ctx)
}

func (d *cooperative) perform(req *http.Request) (*http.Response, error) {
	return d.httpClient.Do(req)
}
