// Package task runs a unit of work after a delay and lets the caller cancel
// it before the work commits.
package task

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrCancelled = errors.New("task cancelled")

type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}
	value  T
	err    error
}

// Start waits for delay and then calls fn with a context that is cancelled by
// Cancel or by ctx. If cancellation happens during the delay fn never runs.
func Start[T any](ctx context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)

	t := &Task[T]{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go t.run(ctx, delay, fn)

	return t
}

// Run starts a task and waits for it.
func Run[T any](ctx context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	return Start(ctx, delay, fn).Wait()
}

func (t *Task[T]) run(ctx context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) {
	defer close(t.done)
	defer t.cancel()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			t.err = fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
			return
		case <-timer.C:
		}
	}

	if ctx.Err() != nil {
		t.err = fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
		return
	}

	t.value, t.err = fn(ctx)
}

func (t *Task[T]) Cancel() {
	t.cancel()
}

func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.value, t.err
}
