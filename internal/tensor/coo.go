package tensor

import (
	"errors"
	"fmt"

	"github.com/hearth-ml/hearth/internal/host"
)

// COO construction errors.
var (
	ErrIndicesDType = errors.New("coo indices must be int64")
	ErrIndicesShape = errors.New("coo indices must have shape [count, rank]")
	ErrValuesDType  = errors.New("coo values dtype does not match tensor dtype")
	ErrValuesShape  = errors.New("coo values must be a 1-D tensor of length count")
)

// COO is a sparse host tensor in coordinate-list format: row i of indices is
// the coordinate of values[i], and every position not listed is implicitly
// zero. Duplicate coordinates are permitted; conversion resolves them by
// last write wins, never by summation.
//
// A COO tensor is read-only once constructed, so any number of conversions
// may read it concurrently without synchronization.
type COO struct {
	shape   Shape
	dtype   DataType
	indices *RawTensor // int64, shape [count, rank]
	values  *RawTensor // dtype, shape [count]
}

// NewCOO wraps pre-built indices and values tensors as a COO tensor.
// It validates the structural invariants (index dtype, [count, rank] index
// shape, value count agreement) but does not inspect coordinate contents:
// per-dimension bounds are owed by the producer.
func NewCOO(shape Shape, dtype DataType, indices, values *RawTensor) (*COO, error) {
	if indices.DType() != Int64 {
		return nil, fmt.Errorf("%w: got %s", ErrIndicesDType, indices.DType())
	}
	idxShape := indices.Shape()
	if idxShape.Rank() != 2 || idxShape[1] != shape.Rank() {
		return nil, fmt.Errorf("%w: got %v for rank %d", ErrIndicesShape, idxShape, shape.Rank())
	}
	if values.DType() != dtype {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrValuesDType, values.DType(), dtype)
	}
	if values.Shape().Rank() != 1 || values.NumElements() != idxShape[0] {
		return nil, fmt.Errorf("%w: got %v for count %d", ErrValuesShape, values.Shape(), idxShape[0])
	}

	return &COO{
		shape:   shape.Clone(),
		dtype:   dtype,
		indices: indices,
		values:  values,
	}, nil
}

// NewCOOFromSlices builds a COO tensor from Go slices, allocating the index
// and value buffers through the host context. coords[i] is the coordinate
// of values[i] and must have one component per dimension of shape.
func NewCOOFromSlices[T DType](h *host.Context, shape Shape, coords [][]int, values []T) (*COO, error) {
	if len(coords) != len(values) {
		return nil, fmt.Errorf("%w: %d values for %d coordinates", ErrValuesShape, len(values), len(coords))
	}

	rank := shape.Rank()
	indices, err := NewRaw(Shape{len(coords), rank}, Int64, h)
	if err != nil {
		return nil, err
	}
	idx := indices.AsInt64()
	for i, c := range coords {
		if len(c) != rank {
			return nil, fmt.Errorf("%w: coordinate %d has %d components, want %d", ErrIndicesShape, i, len(c), rank)
		}
		for j, component := range c {
			idx[i*rank+j] = int64(component)
		}
	}

	var dummy T
	vals, err := NewRaw(Shape{len(values)}, inferDataType(dummy), h)
	if err != nil {
		return nil, err
	}
	copy(DataAs[T](vals), values)

	return NewCOO(shape, inferDataType(dummy), indices, vals)
}

// Shape returns the tensor's declared shape.
func (c *COO) Shape() Shape {
	return c.shape
}

// DType returns the tensor's data type.
func (c *COO) DType() DataType {
	return c.dtype
}

// Indices returns the [count, rank] coordinate tensor.
func (c *COO) Indices() *RawTensor {
	return c.indices
}

// Values returns the 1-D stored-value tensor.
func (c *COO) Values() *RawTensor {
	return c.values
}

// NumValues returns the number of explicitly stored elements.
func (c *COO) NumValues() int {
	return c.values.NumElements()
}

// String returns a human-readable representation of the tensor.
func (c *COO) String() string {
	return fmt.Sprintf("CooHostTensor[%s]%v nnz = %d", c.dtype, c.shape, c.NumValues())
}
