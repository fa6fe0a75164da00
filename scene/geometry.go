package scene

import (
	"github.com/spaghettifunk/scenecast/wire"
)

// Geometry narrows Referenceable to the geometry category so an object
// cannot pair the wrong descriptor kinds.
type Geometry interface {
	Referenceable
	geometry()
}

type geometryBase struct {
	element
}

func newGeometryBase() geometryBase {
	return geometryBase{element: newElement()}
}

func (geometryBase) Category() Category { return CategoryGeometries }
func (geometryBase) geometry()          {}

/**
 * @brief An axis-aligned box geometry with explicit dimensions.
 */
type Box struct {
	geometryBase
	Width  float64
	Height float64
	Depth  float64
}

func NewBox(width, height, depth float64) *Box {
	return &Box{
		geometryBase: newGeometryBase(),
		Width:        width,
		Height:       height,
		Depth:        depth,
	}
}

func (b *Box) Serialize(*Accumulator) (Record, error) {
	return Record{
		"uuid":   b.UUID(),
		"type":   "BoxGeometry",
		"width":  b.Width,
		"height": b.Height,
		"depth":  b.Depth,
	}, nil
}

/**
 * @brief A geometry backed by an external mesh file whose text contents
 * are embedded verbatim; the viewer parses the format itself.
 */
type MeshFile struct {
	geometryBase
	// Format is the file format tag, e.g. "obj".
	Format   string
	Contents string
}

func NewMeshFile(format, contents string) *MeshFile {
	return &MeshFile{
		geometryBase: newGeometryBase(),
		Format:       format,
		Contents:     contents,
	}
}

func (m *MeshFile) Serialize(*Accumulator) (Record, error) {
	return Record{
		"uuid":   m.UUID(),
		"type":   "_meshfile",
		"format": m.Format,
		"data":   m.Contents,
	}, nil
}

/**
 * @brief A buffer geometry holding a packed position attribute and an
 * optional per-point color attribute. Attributes are typed binary
 * blocks, never JSON-style numeric lists.
 */
type PointCloud struct {
	geometryBase
	Positions *wire.Array
	Colors    *wire.Array
}

// NewPointCloud pairs packed positions with optional per-point colors;
// colors may be nil.
func NewPointCloud(positions, colors *wire.Array) *PointCloud {
	return &PointCloud{
		geometryBase: newGeometryBase(),
		Positions:    positions,
		Colors:       colors,
	}
}

func (p *PointCloud) Serialize(*Accumulator) (Record, error) {
	attributes := Record{}
	position, err := wire.Pack(p.Positions)
	if err != nil {
		return nil, err
	}
	attributes["position"] = position
	if p.Colors != nil {
		color, err := wire.Pack(p.Colors)
		if err != nil {
			return nil, err
		}
		attributes["color"] = color
	}
	return Record{
		"uuid": p.UUID(),
		"type": "BufferGeometry",
		"data": Record{
			"attributes": attributes,
		},
	}, nil
}
