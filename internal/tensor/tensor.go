package tensor

// HostTensor is implemented by every in-memory tensor representation the
// runtime can hand to a caller: dense (RawTensor), scalar, and COO.
type HostTensor interface {
	DType() DataType
	Shape() Shape
}

// Interface conformance checks.
var (
	_ HostTensor = (*RawTensor)(nil)
	_ HostTensor = (*Scalar[float32])(nil)
	_ HostTensor = (*COO)(nil)
)

// FormatMask is a bitmask of host tensor representations a caller is
// prepared to accept from a conversion.
type FormatMask uint32

// Output representation bits.
const (
	// FormatDense allows a fully materialized row-major tensor.
	FormatDense FormatMask = 1 << iota
	// FormatScalar allows the degenerate single-value representation.
	FormatScalar
)

// Has reports whether every bit of f is set in m.
func (m FormatMask) Has(f FormatMask) bool {
	return m&f == f
}
