package protocol

import (
	"github.com/spaghettifunk/scenecast/math"
	"github.com/spaghettifunk/scenecast/scene"
)

// Command is one scene mutation the viewer applies at a tree path.
type Command interface {
	Serialize() (scene.Record, error)
}

/**
 * @brief Replaces the node at Path with a renderable object. The object
 * is flattened into a complete scene document inside the command.
 */
type SetObject struct {
	Object *scene.Object
	// Path addresses a node in the viewer's scene tree; empty means the
	// tree root.
	Path []string
}

func (c *SetObject) Serialize() (scene.Record, error) {
	document, err := c.Object.Serialize()
	if err != nil {
		return nil, err
	}
	return scene.Record{
		"type":   "set_object",
		"object": document,
		"path":   treePath(c.Path),
	}, nil
}

/**
 * @brief Updates position and orientation of the node at Path.
 */
type SetTransform struct {
	Position   math.Vec3
	Quaternion math.Quaternion
	Path       []string
}

// SetTransformAt builds a set_transform command from a Transform value.
func SetTransformAt(transform math.Transform, path ...string) *SetTransform {
	return &SetTransform{
		Position:   transform.Position,
		Quaternion: transform.Rotation,
		Path:       path,
	}
}

func (c *SetTransform) Serialize() (scene.Record, error) {
	return scene.Record{
		"type":       "set_transform",
		"path":       treePath(c.Path),
		"position":   c.Position.Slice(),
		"quaternion": c.Quaternion.Slice(),
	}, nil
}

// treePath keeps a nil path off the wire: the default is the empty list,
// addressing the scene root.
func treePath(path []string) []string {
	if path == nil {
		return []string{}
	}
	return path
}
