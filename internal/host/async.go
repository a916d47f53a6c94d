package host

import (
	"context"
	"sync/atomic"
)

// AsyncValue is a single-assignment result container. It transitions exactly
// once from pending to either a value or an error; no partial state is ever
// observable. The channel close inside the resolve step orders all writes
// made by the producer before any read by an observer, so a freshly built
// tensor published through Emplace is safe to read without further
// synchronization.
type AsyncValue[T any] struct {
	done     chan struct{}
	resolved atomic.Bool
	value    T
	err      error
}

// NewAsyncValue returns a pending container to be resolved later with
// Emplace or SetError.
func NewAsyncValue[T any]() *AsyncValue[T] {
	return &AsyncValue[T]{done: make(chan struct{})}
}

// Available returns a container already resolved to v.
func Available[T any](v T) *AsyncValue[T] {
	av := NewAsyncValue[T]()
	av.Emplace(v)
	return av
}

// Error returns a container already resolved to err.
func Error[T any](err error) *AsyncValue[T] {
	av := NewAsyncValue[T]()
	av.SetError(err)
	return av
}

// Emplace publishes v and wakes all waiters.
// Panics if the container was already resolved.
func (av *AsyncValue[T]) Emplace(v T) {
	if !av.resolved.CompareAndSwap(false, true) {
		panic("host: async value resolved twice")
	}
	av.value = v
	close(av.done)
}

// SetError publishes err and wakes all waiters.
// Panics if the container was already resolved.
func (av *AsyncValue[T]) SetError(err error) {
	if !av.resolved.CompareAndSwap(false, true) {
		panic("host: async value resolved twice")
	}
	av.err = err
	close(av.done)
}

// Done returns a channel that is closed once the container resolves.
func (av *AsyncValue[T]) Done() <-chan struct{} {
	return av.done
}

// Await blocks until the container resolves or ctx is cancelled.
// Cancellation abandons the wait only; it does not stop the producer.
func (av *AsyncValue[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-av.done:
		return av.value, av.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Value returns the resolved value or error.
// Panics if the container is still pending; gate on Done first.
func (av *AsyncValue[T]) Value() (T, error) {
	select {
	case <-av.done:
		return av.value, av.err
	default:
		panic("host: async value read before resolve")
	}
}
