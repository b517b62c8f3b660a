//go:build !resend_blocking

package resend

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Future is the pending result of a call started with Go. It is available
// only in the default non-blocking build.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on a new goroutine and returns its Future. All calls share the
// client's limiter, so starting many futures at once queues them at the
// limiter rather than at the API.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Done is closed when the call has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await waits for the call to finish or for ctx to be done. Abandoning a
// future does not stop its call; cancel the context passed to Go for that.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitAll waits for every future and returns their results in order. It
// returns the first error encountered and stops waiting on the rest.
func AwaitAll[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range futures {
		i, f := i, f
		g.Go(func() error {
			v, err := f.Await(gctx)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
