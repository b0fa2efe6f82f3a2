// Package asyncx models the portal's simulated latency as cancellable work.
//
// A Task runs a function after a delay on its own goroutine. Cancelling the
// task, or the context it was started with, before the delay elapses means the
// function never runs, so tearing down a conversation while a reply is pending
// is a well defined no-op.
package asyncx

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCancelled is returned by Wait when the task was cancelled before fn ran.
var ErrCancelled = errors.New("asyncx: task cancelled")

// Sleep blocks for d or until ctx is done. A non-positive d returns at once.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Task is a delayed unit of work producing a T.
type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}

	once sync.Once
	val  T
	err  error
}

// After starts fn once delay has elapsed. fn receives a context that is
// cancelled together with the task.
func After[T any](ctx context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		if err := Sleep(ctx, delay); err != nil {
			t.err = ErrCancelled
			return
		}
		t.val, t.err = fn(ctx)
	}()

	return t
}

// Wait blocks until the task finishes or ctx is done. Giving up on ctx does
// not cancel the task itself.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel stops the task if fn has not started yet. Safe to call repeatedly.
func (t *Task[T]) Cancel() {
	t.once.Do(t.cancel)
}

// Done is closed once the task has finished or been cancelled.
func (t *Task[T]) Done() <-chan struct{} { return t.done }
