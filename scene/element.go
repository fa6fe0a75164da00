package scene

import (
	"github.com/spaghettifunk/scenecast/core"
)

// Record is one serialized scene element as it appears on the wire.
type Record = map[string]any

// Category names one of the flattened record lists of a document.
type Category string

const (
	CategoryGeometries Category = "geometries"
	CategoryMaterials  Category = "materials"
	CategoryTextures   Category = "textures"
	CategoryImages     Category = "images"
)

// Element is anything carrying a stable unique identifier.
type Element interface {
	UUID() string
}

/**
 * @brief A scene element that flattens itself into an Accumulator and is
 * referenced elsewhere in the document only by identifier. Serialize may
 * itself flatten embedded references into the same accumulator before
 * returning; children therefore land in their category lists before the
 * parent that embeds them.
 */
type Referenceable interface {
	Element
	Category() Category
	Serialize(acc *Accumulator) (Record, error)
}

// element is the embedded base of every descriptor. The identifier is
// assigned once at construction and immutable afterwards, so composing
// the same descriptor tree twice yields identical documents.
type element struct {
	uuid string
}

func newElement() element {
	return element{uuid: core.UniqueID()}
}

func (e element) UUID() string { return e.uuid }

/**
 * @brief Collects flattened records by category during one traversal.
 * An accumulator lives for exactly one compose call and is threaded by
 * reference through the recursive Flatten calls; it must not be shared
 * across concurrent traversals.
 */
type Accumulator struct {
	records map[Category][]Record
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		records: map[Category][]Record{
			CategoryGeometries: {},
			CategoryMaterials:  {},
			CategoryTextures:   {},
			CategoryImages:     {},
		},
	}
}

// Flatten serializes el into the accumulator and returns its identifier.
// Category lists keep first-encountered, depth-first order: an element's
// embedded references are appended before the element's own record.
// Shared references are not deduplicated; an element referenced twice is
// serialized twice.
func (a *Accumulator) Flatten(el Referenceable) (string, error) {
	record, err := el.Serialize(a)
	if err != nil {
		return "", err
	}
	a.records[el.Category()] = append(a.records[el.Category()], record)
	return el.UUID(), nil
}

// Drain removes and returns the records collected for one category.
// The record that embeds a reference owns the records flattened on its
// behalf: a material drains the textures it referenced, a texture its
// images, and the document composer the geometry and material lists.
// Texture and image records are therefore never hoisted to the document
// top level.
func (a *Accumulator) Drain(category Category) []Record {
	records := a.records[category]
	a.records[category] = nil
	return records
}

// attachDrained nests the records of one category collected during
// nested flattening under the category's field name of data.
func attachDrained(data Record, acc *Accumulator, category Category) {
	if records := acc.Drain(category); len(records) > 0 {
		data[string(category)] = records
	}
}
