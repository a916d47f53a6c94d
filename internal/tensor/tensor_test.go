package tensor

import (
	"testing"

	"github.com/hearth-ml/hearth/internal/host"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func assertPanics(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", msg)
		}
	}()
	f()
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Uint8, "uint8"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
	if dt := inferDataType(int32(0)); dt != Int32 {
		t.Errorf("inferDataType(int32) = %v, want Int32", dt)
	}
	if dt := inferDataType(int64(0)); dt != Int64 {
		t.Errorf("inferDataType(int64) = %v, want Int64", dt)
	}
	if dt := inferDataType(uint8(0)); dt != Uint8 {
		t.Errorf("inferDataType(uint8) = %v, want Uint8", dt)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{1, 1, 1}, 1},  // Ones
		{Shape{0}, 0},        // Empty
		{Shape{2, 0}, 0},     // Empty with leading dim
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeRank(t *testing.T) {
	if got := (Shape{}).Rank(); got != 0 {
		t.Errorf("Shape{}.Rank() = %d, want 0", got)
	}
	if got := (Shape{2, 3, 4}).Rank(); got != 3 {
		t.Errorf("Shape{2,3,4}.Rank() = %d, want 3", got)
	}
}

func TestShapeValidation(t *testing.T) {
	validShapes := []Shape{
		{},
		{1},
		{3, 4},
		{2, 3, 4},
		{0},
		{2, 0}, // Zero-sized dims are valid for sparse index/value buffers.
	}

	for _, s := range validShapes {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	invalidShapes := []Shape{
		{-1},
		{3, -4},
	}

	for _, s := range invalidShapes {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should fail but didn't", s)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{3}, Shape{3, 1}, false},
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{4}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.expected) {
			t.Fatalf("Shape%v.ComputeStrides() length = %d, want %d", tt.shape, len(got), len(tt.expected))
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Shape%v.ComputeStrides()[%d] = %d, want %d", tt.shape, i, got[i], tt.expected[i])
			}
		}
	}
}

// RawTensor Tests

func TestNewRaw(t *testing.T) {
	h := host.New()
	shape := Shape{3, 4}
	raw, err := NewRaw(shape, Float32, h)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(shape) {
		t.Errorf("Shape = %v, want %v", raw.Shape(), shape)
	}

	if raw.DType() != Float32 {
		t.Errorf("DType = %v, want Float32", raw.DType())
	}

	if raw.NumElements() != 12 {
		t.Errorf("NumElements = %d, want 12", raw.NumElements())
	}

	if raw.ByteSize() != 48 { // 12 * 4 bytes
		t.Errorf("ByteSize = %d, want 48", raw.ByteSize())
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	h := host.New()
	if _, err := NewRaw(Shape{2, -1}, Float32, h); err == nil {
		t.Error("NewRaw should reject negative dimensions")
	}
}

func TestRawTensorAsFloat32(t *testing.T) {
	h := host.New()
	raw, _ := NewRaw(Shape{3, 4}, Float32, h)
	data := raw.AsFloat32()

	if len(data) != 12 {
		t.Errorf("AsFloat32 length = %d, want 12", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 3.14
	if raw.AsFloat32()[0] != 3.14 {
		t.Error("AsFloat32 should return zero-copy slice")
	}
}

func TestRawTensorTypedViewMismatch(t *testing.T) {
	h := host.New()
	raw, _ := NewRaw(Shape{2}, Float32, h)

	assertPanics(t, "AsInt32 on float32 tensor", func() { raw.AsInt32() })
	assertPanics(t, "DataAs[int64] on float32 tensor", func() { DataAs[int64](raw) })
}

func TestRawTensorEmpty(t *testing.T) {
	h := host.New()
	raw, err := NewRaw(Shape{0}, Int64, h)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if got := raw.NumElements(); got != 0 {
		t.Errorf("NumElements = %d, want 0", got)
	}
	if got := raw.AsInt64(); len(got) != 0 {
		t.Errorf("AsInt64 length = %d, want 0", len(got))
	}
}

func TestDataAs(t *testing.T) {
	h := host.New()
	raw, _ := NewRaw(Shape{4}, Int32, h)

	data := DataAs[int32](raw)
	if len(data) != 4 {
		t.Fatalf("DataAs length = %d, want 4", len(data))
	}

	data[2] = 42
	if raw.AsInt32()[2] != 42 {
		t.Error("DataAs should return zero-copy slice")
	}
}

func TestRawTensorClone(t *testing.T) {
	h := host.New()
	raw, _ := NewRaw(Shape{2, 2}, Float32, h)
	data := raw.AsFloat32()
	data[0] = 1.0
	data[1] = 2.0

	clone := raw.Clone()

	// Verify data is shared (shallow copy with reference counting)
	if clone.AsFloat32()[0] != 1.0 {
		t.Error("Clone should share data")
	}

	// Modifying clone WILL affect original (shared buffer)
	clone.AsFloat32()[0] = 999.0
	if raw.AsFloat32()[0] != 999.0 {
		t.Error("Clone shares buffer, modifications should be visible")
	}

	if raw.IsUnique() {
		t.Error("IsUnique should be false while a clone is alive")
	}
	clone.Release()
	if !raw.IsUnique() {
		t.Error("IsUnique should be true after the clone is released")
	}
}
