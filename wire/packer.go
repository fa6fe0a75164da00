package wire

import (
	"fmt"

	"github.com/spaghettifunk/scenecast/core"
)

// Typed-array descriptors understood by the three.js consumer. The
// extension codes are a fixed interop contract and must match the
// viewer exactly.
type typedArrayInfo struct {
	name string
	ext  int8
}

var typedArrays = map[ElementKind]typedArrayInfo{
	ElementUint8:   {name: "Uint8Array", ext: 0x12},
	ElementInt32:   {name: "Int32Array", ext: 0x15},
	ElementUint32:  {name: "Uint32Array", ext: 0x16},
	ElementFloat32: {name: "Float32Array", ext: 0x17},
}

/**
 * @brief Converts a numeric array into the typed wire block
 * {itemSize, type, array, normalized} where array is a tagged binary
 * extension holding the raw bytes. itemSize is 1 for rank-1 arrays and
 * the component count (first axis) for rank-2 arrays.
 */
func Pack(a *Array) (map[string]any, error) {
	info, ok := typedArrays[a.kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedElementKind, a.kind)
	}
	itemSize, err := a.itemSize()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"itemSize":   itemSize,
		"type":       info.name,
		"array":      Ext{ID: info.ext, Data: a.data},
		"normalized": false,
	}, nil
}

func (a *Array) itemSize() (int, error) {
	switch len(a.shape) {
	case 1:
		return 1, nil
	case 2:
		return a.shape[0], nil
	default:
		return 0, fmt.Errorf("%w: got %d dimensions, want 1 or 2", core.ErrUnsupportedArrayRank, len(a.shape))
	}
}
