package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/scenecast/core"
)

func TestPackVectorItemSize(t *testing.T) {
	block, err := Pack(Vector([]float32{1, 2, 3, 4, 5}))
	require.NoError(t, err)

	assert.Equal(t, 1, block["itemSize"])
	assert.Equal(t, "Float32Array", block["type"])
	assert.Equal(t, false, block["normalized"])
}

func TestPackMatrixItemSize(t *testing.T) {
	positions, err := Matrix([][]float32{
		{0, 1, 2, 3},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	})
	require.NoError(t, err)

	block, err := Pack(positions)
	require.NoError(t, err)

	// rows are components, so itemSize is the first axis
	assert.Equal(t, 3, block["itemSize"])
}

func TestPackTypedArrayTable(t *testing.T) {
	tests := []struct {
		name     string
		array    *Array
		typeName string
		ext      int8
	}{
		{"uint8", Vector([]uint8{1}), "Uint8Array", 0x12},
		{"int32", Vector([]int32{1}), "Int32Array", 0x15},
		{"uint32", Vector([]uint32{1}), "Uint32Array", 0x16},
		{"float32", Vector([]float32{1}), "Float32Array", 0x17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := Pack(tt.array)
			require.NoError(t, err)
			assert.Equal(t, tt.typeName, block["type"])
			ext, ok := block["array"].(Ext)
			require.True(t, ok)
			assert.Equal(t, tt.ext, ext.ID)
			assert.Equal(t, tt.array.Bytes(), ext.Data)
		})
	}
}

func TestPackUnsupportedRank(t *testing.T) {
	cube := &Array{kind: ElementFloat32, shape: []int{2, 2, 2}, data: make([]byte, 32)}

	block, err := Pack(cube)
	assert.Nil(t, block)
	assert.True(t, errors.Is(err, core.ErrUnsupportedArrayRank))
}

func TestPackUnsupportedElementKind(t *testing.T) {
	bad := &Array{kind: ElementKind(42), shape: []int{3}, data: make([]byte, 24)}

	block, err := Pack(bad)
	assert.Nil(t, block)
	assert.True(t, errors.Is(err, core.ErrUnsupportedElementKind))
}

func TestVectorLittleEndianLayout(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, Vector([]float32{1}).Bytes())
	assert.Equal(t, []byte{0x2a, 0x00, 0x00, 0x00}, Vector([]uint32{42}).Bytes())
}

func TestMatrixRowsMustMatch(t *testing.T) {
	_, err := Matrix([][]float32{{1, 2}, {3}})
	assert.Error(t, err)

	_, err = Matrix([][]float32{})
	assert.Error(t, err)
}

func TestMatrixShape(t *testing.T) {
	m, err := Matrix([][]uint8{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, m.Shape())
	assert.Equal(t, 2, m.Rank())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, m.Bytes())
}
