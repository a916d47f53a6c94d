// Copyright 2026 The Hearth Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package host provides the public API for the Hearth host context and
// asynchronous result containers.
//
// A Context supplies memory for host tensors; an AsyncValue is the
// single-assignment container through which conversion results are
// published to observers on other goroutines.
package host

import (
	internal "github.com/hearth-ml/hearth/internal/host"
)

// Allocator hands out raw byte buffers for host tensor storage.
type Allocator = internal.Allocator

// Context supplies memory for host tensors.
type Context = internal.Context

// AsyncValue is a single-assignment result container: it transitions
// exactly once from pending to either a value or an error.
type AsyncValue[T any] = internal.AsyncValue[T]

// New returns a Context backed by the Go heap.
func New() *Context {
	return internal.New()
}

// NewWithAllocator returns a Context that satisfies allocations through a.
func NewWithAllocator(a Allocator) *Context {
	return internal.NewWithAllocator(a)
}

// NewAsyncValue returns a pending container to be resolved later.
func NewAsyncValue[T any]() *AsyncValue[T] {
	return internal.NewAsyncValue[T]()
}

// Available returns a container already resolved to v.
func Available[T any](v T) *AsyncValue[T] {
	return internal.Available(v)
}

// Error returns a container already resolved to err.
func Error[T any](err error) *AsyncValue[T] {
	return internal.Error[T](err)
}
