// Package host provides the allocation context and asynchronous result
// containers that back host tensor construction.
package host

// Allocator hands out raw byte buffers for host tensor storage.
// Implementations report allocation failure through the error return instead
// of panicking, so callers can surface it as a recoverable result.
type Allocator interface {
	Allocate(size int) ([]byte, error)
}

// heapAllocator satisfies allocations from the Go heap. It never reports
// failure: the runtime aborts on exhaustion before make returns.
type heapAllocator struct{}

func (heapAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Context supplies memory for host tensors. A single Context may serve many
// conversions concurrently; it holds no mutable state of its own.
type Context struct {
	alloc Allocator
}

// New returns a Context backed by the Go heap.
func New() *Context {
	return &Context{alloc: heapAllocator{}}
}

// NewWithAllocator returns a Context that satisfies allocations through a.
// Useful for bounded arenas and for tests that inject allocation failure.
func NewWithAllocator(a Allocator) *Context {
	return &Context{alloc: a}
}

// Allocate returns a buffer of size bytes for tensor storage.
// The buffer contents are unspecified; callers must initialize every
// element they expose.
func (c *Context) Allocate(size int) ([]byte, error) {
	return c.alloc.Allocate(size)
}
