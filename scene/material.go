package scene

// Material narrows Referenceable to the material category.
type Material interface {
	Referenceable
	material()
}

type materialBase struct {
	element
}

func newMaterialBase() materialBase {
	return materialBase{element: newElement()}
}

func (materialBase) Category() Category { return CategoryMaterials }
func (materialBase) material()          {}

// MeshMaterialKind tags the shaded mesh material variants.
type MeshMaterialKind uint8

const (
	MeshBasic MeshMaterialKind = iota
	MeshPhong
	MeshLambert
	MeshToon
)

// TypeName returns the viewer-side material type string.
func (k MeshMaterialKind) TypeName() string {
	switch k {
	case MeshPhong:
		return "MeshPhongMaterial"
	case MeshLambert:
		return "MeshLambertMaterial"
	case MeshToon:
		return "MeshToonMaterial"
	default:
		return "MeshBasicMaterial"
	}
}

const (
	/** @brief The default material color (white). */
	DefaultMaterialColor uint32 = 0xffffff
	/** @brief The default material reflectivity. */
	DefaultReflectivity float64 = 0.5
)

/**
 * @brief Configuration for a shaded mesh material. Properties holds
 * free-form extras merged into the record after the reserved fields;
 * callers must avoid extras named uuid, type, color or reflectivity as
 * the merge is last-write-wins.
 */
type MeshMaterialConfig struct {
	Color        uint32
	Reflectivity float64
	// Map is an optional texture reference, flattened recursively and
	// emitted as an identifier under the "map" key.
	Map        Texture
	Properties Record
}

func DefaultMeshMaterialConfig() MeshMaterialConfig {
	return MeshMaterialConfig{
		Color:        DefaultMaterialColor,
		Reflectivity: DefaultReflectivity,
	}
}

// MeshMaterial is a shaded material for mesh objects.
type MeshMaterial struct {
	materialBase
	kind   MeshMaterialKind
	config MeshMaterialConfig
}

func NewMeshMaterial(kind MeshMaterialKind, config MeshMaterialConfig) *MeshMaterial {
	return &MeshMaterial{
		materialBase: newMaterialBase(),
		kind:         kind,
		config:       config,
	}
}

func (m *MeshMaterial) Kind() MeshMaterialKind { return m.kind }

func (m *MeshMaterial) Serialize(acc *Accumulator) (Record, error) {
	data := Record{
		"uuid":         m.UUID(),
		"type":         m.kind.TypeName(),
		"color":        m.config.Color,
		"reflectivity": m.config.Reflectivity,
	}
	for key, value := range m.config.Properties {
		data[key] = value
	}
	if m.config.Map != nil {
		id, err := acc.Flatten(m.config.Map)
		if err != nil {
			return nil, err
		}
		data["map"] = id
		attachDrained(data, acc, CategoryTextures)
	}
	return data, nil
}

/**
 * @brief A material for point cloud objects. Points are colored per
 * vertex when the geometry carries a color attribute.
 */
type PointsMaterial struct {
	materialBase
	Size  float64
	Color uint32
}

func NewPointsMaterial(size float64, color uint32) *PointsMaterial {
	return &PointsMaterial{
		materialBase: newMaterialBase(),
		Size:         size,
		Color:        color,
	}
}

func (m *PointsMaterial) Serialize(*Accumulator) (Record, error) {
	return Record{
		"uuid":  m.UUID(),
		"type":  "PointsMaterial",
		"color": m.Color,
		"size":  m.Size,
		// 2 selects per-vertex coloring in the viewer
		"vertexColors": 2,
	}, nil
}

/**
 * @brief A free-form material: an open property mapping plus an explicit
 * optional texture reference emitted under the reserved "map" key. The
 * explicit field removes the "is this value a reference or a plain
 * property" ambiguity; a plain property named "map" is a caller error
 * and is overwritten by the reference identifier.
 */
type GenericMaterial struct {
	materialBase
	Map        Texture
	Properties Record
}

func NewGenericMaterial(properties Record, texture Texture) *GenericMaterial {
	return &GenericMaterial{
		materialBase: newMaterialBase(),
		Map:          texture,
		Properties:   properties,
	}
}

func (m *GenericMaterial) Serialize(acc *Accumulator) (Record, error) {
	// shallow copy: the caller's property mapping is never mutated
	data := Record{"uuid": m.UUID()}
	for key, value := range m.Properties {
		data[key] = value
	}
	if m.Map != nil {
		id, err := acc.Flatten(m.Map)
		if err != nil {
			return nil, err
		}
		data["map"] = id
		attachDrained(data, acc, CategoryTextures)
	}
	return data, nil
}
