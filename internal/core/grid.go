package core

import (
	"errors"
	"fmt"
)

// MinFieldSize is the smallest grid that has at least one interior cell.
const MinFieldSize = 3

// ErrInvalidDimensions reports a field that is undersized or does not match
// the shape of the field it is combined with.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Field stores an N×N grid of concentrations in row-major order.
type Field struct {
	N    int
	data []float64
}

// NewField allocates a zeroed n×n field.
func NewField(n int) (*Field, error) {
	if n < MinFieldSize {
		return nil, fmt.Errorf("%w: field size %d is below %d", ErrInvalidDimensions, n, MinFieldSize)
	}
	return &Field{N: n, data: make([]float64, n*n)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (f *Field) Cells() []float64 { return f.data }

// Index returns the linear slice index for (row, col).
func (f *Field) Index(row, col int) int { return row*f.N + col }

// At returns the value stored at (row, col).
func (f *Field) At(row, col int) float64 { return f.data[row*f.N+col] }

// Set stores v at (row, col).
func (f *Field) Set(row, col int, v float64) { f.data[row*f.N+col] = v }

// Size reports the field dimensions.
func (f *Field) Size() Size { return Size{W: f.N, H: f.N} }

// Fill sets every cell to v.
func (f *Field) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// CopyFrom overwrites f with the contents of src.
func (f *Field) CopyFrom(src *Field) error {
	if err := CheckSameShape(f, src); err != nil {
		return err
	}
	copy(f.data, src.data)
	return nil
}

// CheckSameShape verifies that both fields are valid and share a size.
func CheckSameShape(a, b *Field) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil field", ErrInvalidDimensions)
	}
	if a.N < MinFieldSize || len(a.data) != a.N*a.N {
		return fmt.Errorf("%w: malformed %dx%d field", ErrInvalidDimensions, a.N, a.N)
	}
	if b.N != a.N || len(b.data) != len(a.data) {
		return fmt.Errorf("%w: %dx%d does not match %dx%d", ErrInvalidDimensions, b.N, b.N, a.N, a.N)
	}
	return nil
}

// NamedField pairs a field with the label used by telemetry and overlays.
type NamedField struct {
	Name  string
	Field *Field
}

// FieldSource is implemented by sims that expose floating-point layers.
type FieldSource interface {
	Fields() []NamedField
}
