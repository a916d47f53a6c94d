package tensor

import (
	"fmt"
	"iter"
)

// View is a typed window over a RawTensor's buffer, addressable by flat
// index or by multi-dimensional coordinate. It borrows the tensor's buffer;
// the tensor must outlive the view.
type View[T DType] struct {
	data   []T
	shape  Shape
	stride []int
}

// NewView wraps r. Panics if T does not match r's dtype.
func NewView[T DType](r *RawTensor) View[T] {
	return View[T]{
		data:   DataAs[T](r),
		shape:  r.Shape(),
		stride: r.Strides(),
	}
}

// NumElements returns the total number of addressable elements.
func (v View[T]) NumElements() int {
	return len(v.data)
}

// At returns the element at flat index i.
func (v View[T]) At(i int) T {
	return v.data[i]
}

// Set stores x at flat index i.
func (v View[T]) Set(i int, x T) {
	v.data[i] = x
}

// ElementAt returns the element at the given coordinate.
// Panics if the coordinate rank or any component is out of bounds.
func (v View[T]) ElementAt(coords ...int) T {
	return v.data[v.offsetOf(coords)]
}

// SetElementAt stores x at the given coordinate.
func (v View[T]) SetElementAt(x T, coords ...int) {
	v.data[v.offsetOf(coords)] = x
}

// Fill sets every element to x.
func (v View[T]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Rows returns a lazy sequence over the rows of a 2-D view.
// The yielded slice is reused between iterations; callers that retain a row
// must copy it. Panics if the view is not 2-D.
func (v View[T]) Rows() iter.Seq[[]T] {
	if v.shape.Rank() != 2 {
		panic(fmt.Sprintf("Rows() requires a 2-D view, got shape %v", v.shape))
	}
	return func(yield func([]T) bool) {
		rows, cols := v.shape[0], v.shape[1]
		row := make([]T, cols)
		for i := 0; i < rows; i++ {
			copy(row, v.data[i*cols:(i+1)*cols])
			if !yield(row) {
				return
			}
		}
	}
}

func (v View[T]) offsetOf(coords []int) int {
	if len(coords) != v.shape.Rank() {
		panic(fmt.Sprintf("expected %d indices, got %d", v.shape.Rank(), len(coords)))
	}
	offset := 0
	for i, c := range coords {
		if c < 0 || c >= v.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", c, i, v.shape[i]))
		}
		offset += c * v.stride[i]
	}
	return offset
}
