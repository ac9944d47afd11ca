// Package task runs a single blocking job off the caller's goroutine and
// exposes its outcome through a non-blocking poll.
package task

import (
	"context"
	"fmt"
)

// Outcome is the value or error produced by a finished task.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Task is a one-shot completion handle. Poll is meant to be called from a
// single goroutine, once per simulation tick.
type Task[T any] struct {
	done    chan Outcome[T]
	outcome Outcome[T]
	settled bool
}

// Start launches fn on its own goroutine. There is no cancellation beyond ctx:
// once started, fn runs to completion or failure.
func Start[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan Outcome[T], 1)}
	go func() {
		var out Outcome[T]
		defer func() {
			if r := recover(); r != nil {
				out = Outcome[T]{Err: fmt.Errorf("task panicked: %v", r)}
			}
			t.done <- out
		}()
		value, err := fn(ctx)
		out = Outcome[T]{Value: value, Err: err}
	}()
	return t
}

// Poll reports the outcome without blocking. ok is false while the job is
// still running.
func (t *Task[T]) Poll() (Outcome[T], bool) {
	if t == nil {
		return Outcome[T]{}, false
	}
	if t.settled {
		return t.outcome, true
	}
	select {
	case out := <-t.done:
		t.outcome = out
		t.settled = true
		return out, true
	default:
		return Outcome[T]{}, false
	}
}

// Done reports whether the outcome has already been observed by Poll.
func (t *Task[T]) Done() bool {
	return t != nil && t.settled
}
