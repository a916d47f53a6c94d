package tensor

import "fmt"

// Scalar is the degenerate host tensor: it carries full shape metadata but
// stores at most one logical value, standing in for a tensor whose every
// element equals that value. Converting a COO tensor with at most one
// explicit element produces a Scalar instead of materializing the full
// buffer.
type Scalar[T DType] struct {
	shape Shape
	value T
}

// NewScalar creates a scalar host tensor with the given shape metadata and
// value.
func NewScalar[T DType](shape Shape, value T) *Scalar[T] {
	return &Scalar[T]{shape: shape.Clone(), value: value}
}

// Shape returns the declared shape of the represented tensor.
func (s *Scalar[T]) Shape() Shape {
	return s.shape
}

// DType returns the scalar's data type.
func (s *Scalar[T]) DType() DataType {
	var dummy T
	return inferDataType(dummy)
}

// Item returns the single stored value.
func (s *Scalar[T]) Item() T {
	return s.value
}

// String returns a human-readable representation of the tensor.
func (s *Scalar[T]) String() string {
	return fmt.Sprintf("ScalarHostTensor[%s]%v value = %v", s.DType(), s.shape, s.value)
}
