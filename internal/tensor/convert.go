package tensor

import (
	"errors"
	"fmt"

	"github.com/hearth-ml/hearth/internal/host"
)

// ErrOutOfMemory is the only recoverable conversion failure: the host
// context could not supply the dense result buffer. Everything else that
// can go wrong during conversion is a precondition violation and panics.
var ErrOutOfMemory = errors.New("out of memory converting coo tensor to dht tensor")

// ConvertToHostTensor converts the COO tensor into a representation the
// caller accepts, per allowed:
//
//   - If FormatScalar is set and the tensor stores at most one explicit
//     value (or its index buffer is structurally empty), the result is a
//     Scalar holding that value or the dtype's zero.
//   - Otherwise a dense tensor is materialized: a freshly allocated
//     row-major buffer, zero-filled, with every stored element scattered
//     into its linear position. Duplicate coordinates resolve to the later
//     entry.
//
// Conversion runs to completion on the calling goroutine; the returned
// AsyncValue is resolved before this function returns. Allocation failure
// resolves it to ErrOutOfMemory and publishes no partial buffer. A caller
// whose mask excludes the dense format on the dense path has violated the
// contract, and the conversion panics.
func (c *COO) ConvertToHostTensor(h *host.Context, allowed FormatMask) *host.AsyncValue[HostTensor] {
	switch c.dtype {
	case Float32:
		return convertCOO[float32](c, h, allowed)
	case Float64:
		return convertCOO[float64](c, h, allowed)
	case Int32:
		return convertCOO[int32](c, h, allowed)
	case Int64:
		return convertCOO[int64](c, h, allowed)
	case Uint8:
		return convertCOO[uint8](c, h, allowed)
	default:
		// The registry is closed; a tag outside it cannot be constructed.
		panic(fmt.Sprintf("coo conversion: unsupported dtype %v", c.dtype))
	}
}

// convertCOO is the dtype-generic conversion body, instantiated once per
// numeric kind by the dispatch above.
func convertCOO[T DType](c *COO, h *host.Context, allowed FormatMask) *host.AsyncValue[HostTensor] {
	// Collapse to a scalar when the caller accepts one and the tensor holds
	// at most one explicit value, or is an arbitrary-shaped COO tensor with
	// no structural index data at all.
	if allowed.Has(FormatScalar) {
		var zero T
		switch {
		case c.NumValues() == 0:
			return host.Available[HostTensor](NewScalar(c.shape, zero))
		case c.NumValues() == 1:
			return host.Available[HostTensor](NewScalar(c.shape, DataAs[T](c.values)[0]))
		case c.indices.NumElements() == 0:
			return host.Available[HostTensor](NewScalar(c.shape, zero))
		}
	}

	if !allowed.Has(FormatDense) {
		panic("coo conversion: caller accepts neither scalar nor dense format")
	}

	result := host.NewAsyncValue[HostTensor]()
	dense, err := NewRaw(c.shape, c.dtype, h)
	if err != nil {
		return host.Error[HostTensor](ErrOutOfMemory)
	}
	scatter[T](dense, c.indices, c.values)
	result.Emplace(dense)
	return result
}

// scatter writes every stored (coordinate, value) pair into its row-major
// linear position in dst. dst is zero-filled first, establishing the
// implicit-zero invariant before any scatter write. Later entries overwrite
// earlier ones mapping to the same position.
func scatter[T DType](dst *RawTensor, indices, values *RawTensor) {
	out := NewView[T](dst)
	var zero T
	out.Fill(zero)

	shape := dst.Shape()
	rank := shape.Rank()
	idx := NewView[int64](indices)
	vals := NewView[T](values)

	for i, n := 0, vals.NumElements(); i != n; i++ {
		offset := 0
		stride := 1
		for j := rank - 1; j >= 0; j-- {
			coord := int(idx.ElementAt(i, j))
			if coord < 0 || coord >= shape[j] {
				panic(fmt.Sprintf("coordinate %d out of bounds for dimension %d (size %d)", coord, j, shape[j]))
			}
			offset += stride * coord
			stride *= shape[j]
		}
		out.Set(offset, vals.At(i))
	}
}
