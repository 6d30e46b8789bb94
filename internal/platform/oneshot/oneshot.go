// Package oneshot provides a single-fulfillment, cancellable promise.
// It backs interactive selection steps: a human either picks a value once
// or dismisses without picking, and either way every waiter unblocks
package oneshot

import (
	"context"
	"sync"
)

// Promise resolves exactly once with a value, or is cancelled.
// The zero value is not usable; construct with New
type Promise[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	val       T
	fulfilled bool
}

// New constructs an unfulfilled Promise
func New[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolve fulfills the promise with v. Only the first call wins;
// later Resolve or Cancel calls are no-ops
func (p *Promise[T]) Resolve(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-p.done:
		return
	default:
	}
	p.val = v
	p.fulfilled = true
	close(p.done)
}

// Cancel completes the promise without a value. Safe to call after Resolve
func (p *Promise[T]) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-p.done:
		return
	default:
	}
	close(p.done)
}

// Await blocks until the promise completes or ctx is done.
// ok is false when the promise was cancelled (nothing selected);
// err is non-nil only for context cancellation
func (p *Promise[T]) Await(ctx context.Context) (v T, ok bool, err error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	case <-p.done:
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.val, p.fulfilled, nil
}
