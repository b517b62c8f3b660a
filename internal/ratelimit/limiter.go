// Package ratelimit provides the admission gate shared by every request issued
// through one client.
//
// A [Limiter] admits at most Limit requests in any interval of length Window.
// It never rejects a request outright; it hands out admission instants and the
// caller waits until its instant arrives. Reservations are final: a caller that
// gives up after reserving does not return its slot.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Defaults mirror the vendor ceiling of 10 requests per second with a margin
// for clock and network jitter.
const (
	DefaultLimit  = 9
	DefaultWindow = 1100 * time.Millisecond
)

var (
	// ErrUnavailable is returned when the limiter is nil or closed.
	ErrUnavailable = errors.New("rate limiter unavailable")

	// ErrDeadlineExceeded is returned when the next admission slot lies beyond
	// the caller's context deadline.
	ErrDeadlineExceeded = errors.New("rate limit wait would exceed context deadline")
)

// Limiter is a sliding-window admission gate. It is safe for concurrent use.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	// slots holds the admission instants of the last limit reservations,
	// oldest at next.
	slots  []time.Time
	next   int
	closed bool
	now    func() time.Time
}

// New creates a limiter admitting at most limit requests per window.
func New(limit int, window time.Duration) (*Limiter, error) {
	if limit < 1 {
		return nil, fmt.Errorf("rate limit must be at least 1, got %d", limit)
	}
	if window <= 0 {
		return nil, fmt.Errorf("rate window must be positive, got %v", window)
	}
	return &Limiter{
		limit:  limit,
		window: window,
		slots:  make([]time.Time, limit),
		now:    time.Now,
	}, nil
}

// Limit returns the number of admissions allowed per window.
func (l *Limiter) Limit() int { return l.limit }

// Window returns the window length.
func (l *Limiter) Window() time.Duration { return l.window }

// Close makes every subsequent acquisition fail with ErrUnavailable.
func (l *Limiter) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}

// reserve claims the earliest admission instant that keeps the window bound.
// When hasDeadline is set and that instant falls after deadline, nothing is
// claimed.
func (l *Limiter) reserve(deadline time.Time, hasDeadline bool) (time.Time, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.limit < 1 || len(l.slots) != l.limit {
		return time.Time{}, ErrUnavailable
	}

	at := l.now()
	if oldest := l.slots[l.next]; !oldest.IsZero() {
		if earliest := oldest.Add(l.window); earliest.After(at) {
			at = earliest
		}
	}
	if hasDeadline && at.After(deadline) {
		return time.Time{}, ErrDeadlineExceeded
	}

	l.slots[l.next] = at
	l.next = (l.next + 1) % l.limit
	return at, nil
}

// Acquire waits cooperatively until the caller may proceed. The wait ends
// early when ctx is done; the reserved slot is not returned in that case.
func (l *Limiter) Acquire(ctx context.Context) error {
	if l == nil {
		return ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline, hasDeadline := ctx.Deadline()
	at, err := l.reserve(deadline, hasDeadline)
	if err != nil {
		return err
	}

	delay := at.Sub(l.now())
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// AcquireBlocking parks the calling goroutine until the caller may proceed.
// Cancellation is not observed.
func (l *Limiter) AcquireBlocking() error {
	if l == nil {
		return ErrUnavailable
	}

	at, err := l.reserve(time.Time{}, false)
	if err != nil {
		return err
	}

	if delay := at.Sub(l.now()); delay > 0 {
		time.Sleep(delay)
	}
	return nil
}
