package scene

// ObjectKind tags how the viewer renders a geometry/material pairing.
type ObjectKind uint8

const (
	KindMesh ObjectKind = iota
	KindPoints
)

// TypeName returns the viewer-side object type string.
func (k ObjectKind) TypeName() string {
	if k == KindPoints {
		return "Points"
	}
	return "Mesh"
}

// Document metadata constants of the wire format.
const (
	documentVersion = 4.5
	documentType    = "Object"
)

/**
 * @brief A renderable object: exactly one geometry paired with exactly
 * one material. An object is the root of one flattening pass and
 * produces a complete scene document.
 */
type Object struct {
	element
	kind     ObjectKind
	geometry Geometry
	material Material
}

func newObject(kind ObjectKind, geometry Geometry, material Material) *Object {
	return &Object{
		element:  newElement(),
		kind:     kind,
		geometry: geometry,
		material: material,
	}
}

// NewMesh builds a triangle-mesh object.
func NewMesh(geometry Geometry, material Material) *Object {
	return newObject(KindMesh, geometry, material)
}

// NewPoints builds a point-cloud object.
func NewPoints(geometry Geometry, material Material) *Object {
	return newObject(KindPoints, geometry, material)
}

func (o *Object) Kind() ObjectKind   { return o.kind }
func (o *Object) Geometry() Geometry { return o.geometry }
func (o *Object) Material() Material { return o.material }

/**
 * @brief Flattens the object and its dependencies into one complete
 * scene document. Each call owns a fresh accumulator, so concurrent
 * calls on different objects are safe. Geometry is flattened before
 * material; the order only affects record interleaving on the wire.
 * On error the partial accumulator is discarded, never emitted.
 *
 * Only geometry and material records become top-level lists. Texture and
 * image records stay nested inside the record that references them; the
 * three-category document shape is part of the wire contract.
 */
func (o *Object) Serialize() (Record, error) {
	acc := NewAccumulator()
	geometryID, err := acc.Flatten(o.geometry)
	if err != nil {
		return nil, err
	}
	materialID, err := acc.Flatten(o.material)
	if err != nil {
		return nil, err
	}
	return Record{
		"metadata": Record{
			"version": documentVersion,
			"type":    documentType,
		},
		"geometries": acc.Drain(CategoryGeometries),
		"materials":  acc.Drain(CategoryMaterials),
		"object": Record{
			"uuid":     o.UUID(),
			"type":     o.kind.TypeName(),
			"geometry": geometryID,
			"material": materialID,
		},
	}, nil
}
