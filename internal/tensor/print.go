package tensor

import (
	"fmt"
	"io"
	"strconv"
)

// Print writes a one-line diagnostic rendering of the tensor: dtype, shape,
// then the raw index and value lists in storage order, comma-separated.
// Nothing is sorted or deduplicated, so duplicate coordinates appear as
// stored. The output is for humans, not for parsing.
func (c *COO) Print(w io.Writer) {
	fmt.Fprintf(w, "CooHostTensor dtype = %s shape = %v, indices = [", c.dtype, c.shape)
	for i, e := range c.indices.AsInt64() {
		if i != 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprint(w, strconv.FormatInt(e, 10))
	}
	fmt.Fprint(w, "], values = [")
	for i, n := 0, c.values.NumElements(); i != n; i++ {
		if i != 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprint(w, formatElement(c.values, i))
	}
	fmt.Fprint(w, "]\n")
}

// formatElement renders element i of r's buffer using the formatter
// registered for r's dtype.
func formatElement(r *RawTensor, i int) string {
	switch r.DType() {
	case Float32:
		return strconv.FormatFloat(float64(r.AsFloat32()[i]), 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(r.AsFloat64()[i], 'g', -1, 64)
	case Int32:
		return strconv.FormatInt(int64(r.AsInt32()[i]), 10)
	case Int64:
		return strconv.FormatInt(r.AsInt64()[i], 10)
	case Uint8:
		return strconv.FormatUint(uint64(r.AsUint8()[i]), 10)
	default:
		panic(fmt.Sprintf("no formatter registered for dtype %v", r.DType()))
	}
}
