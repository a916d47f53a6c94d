// Copyright 2026 The Hearth Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/hearth-ml/hearth/internal/host"
	"github.com/hearth-ml/hearth/internal/parallel"
	"github.com/hearth-ml/hearth/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// HostTensor is implemented by every host tensor representation: dense
// (RawTensor), scalar, and COO.
type HostTensor = tensor.HostTensor

// RawTensor is the dense host tensor: a contiguous row-major buffer
// covering every coordinate of its shape.
type RawTensor = tensor.RawTensor

// Scalar is the degenerate host tensor holding at most one logical value.
type Scalar[T DType] = tensor.Scalar[T]

// COO is a sparse host tensor in coordinate-list format.
type COO = tensor.COO

// View is a typed window over a RawTensor's buffer.
type View[T DType] = tensor.View[T]

// FormatMask is a bitmask of host tensor representations a caller is
// prepared to accept from a conversion.
type FormatMask = tensor.FormatMask

// Output representation bits.
const (
	FormatDense  FormatMask = tensor.FormatDense
	FormatScalar FormatMask = tensor.FormatScalar
)

// ErrOutOfMemory is the recoverable conversion failure: the host context
// could not supply the dense result buffer.
var ErrOutOfMemory = tensor.ErrOutOfMemory

// COO construction errors.
var (
	ErrIndicesDType = tensor.ErrIndicesDType
	ErrIndicesShape = tensor.ErrIndicesShape
	ErrValuesDType  = tensor.ErrValuesDType
	ErrValuesShape  = tensor.ErrValuesShape
)

// Creation functions

// NewRaw allocates a dense tensor with the given shape and type through the
// host context.
func NewRaw(shape Shape, dtype DataType, h *host.Context) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, h)
}

// NewScalar creates a scalar host tensor with the given shape metadata and
// value.
func NewScalar[T DType](shape Shape, value T) *Scalar[T] {
	return tensor.NewScalar(shape, value)
}

// NewCOO wraps pre-built indices and values tensors as a COO tensor.
func NewCOO(shape Shape, dtype DataType, indices, values *RawTensor) (*COO, error) {
	return tensor.NewCOO(shape, dtype, indices, values)
}

// NewCOOFromSlices builds a COO tensor from Go slices, allocating the index
// and value buffers through the host context.
func NewCOOFromSlices[T DType](h *host.Context, shape Shape, coords [][]int, values []T) (*COO, error) {
	return tensor.NewCOOFromSlices(h, shape, coords, values)
}

// NewView wraps r in a typed view. Panics if T does not match r's dtype.
func NewView[T DType](r *RawTensor) View[T] {
	return tensor.NewView[T](r)
}

// DataAs returns a typed slice view of the tensor's data (zero-copy).
// Panics if T does not match the tensor's dtype.
func DataAs[T DType](r *RawTensor) []T {
	return tensor.DataAs[T](r)
}

// ConvertAll converts independent COO tensors concurrently on worker
// goroutines. Results are positionally aligned with tensors.
func ConvertAll(tensors []*COO, h *host.Context, allowed FormatMask) []*host.AsyncValue[HostTensor] {
	return tensor.ConvertAll(tensors, h, allowed, parallel.DefaultConfig())
}
