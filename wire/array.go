package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ElementKind identifies the numeric element type of an Array.
type ElementKind uint8

const (
	ElementUint8 ElementKind = iota
	ElementInt32
	ElementUint32
	ElementFloat32
)

func (k ElementKind) String() string {
	switch k {
	case ElementUint8:
		return "uint8"
	case ElementInt32:
		return "int32"
	case ElementUint32:
		return "uint32"
	case ElementFloat32:
		return "float32"
	}
	return fmt.Sprintf("ElementKind(%d)", uint8(k))
}

// Scalar is the closed set of element types the viewer accepts.
type Scalar interface {
	uint8 | int32 | uint32 | float32
}

/**
 * @brief A rank-1 or rank-2 numeric payload held in its raw little-endian
 * byte layout. Rank-2 arrays are component-major: each row is one
 * component (x, y, z, ...) and each column one data point.
 */
type Array struct {
	kind  ElementKind
	shape []int
	data  []byte
}

func (a *Array) Kind() ElementKind { return a.kind }

func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() []int {
	shape := make([]int, len(a.shape))
	copy(shape, a.shape)
	return shape
}

// Bytes returns the raw payload. The slice is shared, not copied.
func (a *Array) Bytes() []byte { return a.data }

// Vector builds a rank-1 array from a flat slice of values.
func Vector[T Scalar](values []T) *Array {
	return &Array{
		kind:  kindOf[T](),
		shape: []int{len(values)},
		data:  packBytes(values),
	}
}

// Matrix builds a rank-2 array from component rows. Every row must have
// the same length: row i holds component i of every data point.
func Matrix[T Scalar](rows [][]T) (*Array, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("matrix needs at least one component row")
	}
	cols := len(rows[0])
	flat := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("component row %d has %d values, want %d", i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return &Array{
		kind:  kindOf[T](),
		shape: []int{len(rows), cols},
		data:  packBytes(flat),
	}, nil
}

func kindOf[T Scalar]() ElementKind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return ElementUint8
	case int32:
		return ElementInt32
	case uint32:
		return ElementUint32
	default:
		return ElementFloat32
	}
}

func packBytes[T Scalar](values []T) []byte {
	var buf bytes.Buffer
	// cannot fail: fixed-size numeric slice into a bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, values)
	return buf.Bytes()
}
