package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/spaghettifunk/scenecast/math"
	"github.com/spaghettifunk/scenecast/scene"
)

func TestSetTransformSerialize(t *testing.T) {
	command := &SetTransform{
		Position:   math.NewVec3(0, 0, 1),
		Quaternion: math.QuaternionIdentity(),
		Path:       []string{"camera"},
	}

	record, err := command.Serialize()
	require.NoError(t, err)

	assert.Equal(t, scene.Record{
		"type":       "set_transform",
		"path":       []string{"camera"},
		"position":   []float64{0, 0, 1},
		"quaternion": []float64{0, 0, 0, 1},
	}, record)
}

func TestPathDefaultsToRoot(t *testing.T) {
	record, err := (&SetTransform{}).Serialize()
	require.NoError(t, err)

	// nil must never reach the wire; the default is the empty path
	assert.Equal(t, []string{}, record["path"])
}

func TestSetTransformAt(t *testing.T) {
	transform := math.TransformIdentity()
	transform.Position = math.NewVec3(2, 0, 0)

	record, err := SetTransformAt(transform, "robot", "arm").Serialize()
	require.NoError(t, err)

	assert.Equal(t, []string{"robot", "arm"}, record["path"])
	assert.Equal(t, []float64{2, 0, 0}, record["position"])
	assert.Equal(t, []float64{0, 0, 0, 1}, record["quaternion"])
}

func TestSetObjectSerialize(t *testing.T) {
	object := scene.NewMesh(
		scene.NewBox(1, 2, 3),
		scene.NewMeshMaterial(scene.MeshBasic, scene.DefaultMeshMaterialConfig()),
	)
	command := &SetObject{Object: object, Path: []string{"robot", "torso"}}

	record, err := command.Serialize()
	require.NoError(t, err)

	assert.Equal(t, "set_object", record["type"])
	assert.Equal(t, []string{"robot", "torso"}, record["path"])

	document := record["object"].(scene.Record)
	assert.Equal(t, scene.Record{"version": 4.5, "type": "Object"}, document["metadata"])
	assert.Equal(t, object.UUID(), document["object"].(scene.Record)["uuid"])
}

func TestMessageSerialize(t *testing.T) {
	message := NewMessage(
		&SetTransform{Position: math.NewVec3(1, 0, 0), Quaternion: math.QuaternionIdentity()},
		&SetTransform{Position: math.NewVec3(0, 1, 0), Quaternion: math.QuaternionIdentity()},
	)

	record, err := message.Serialize()
	require.NoError(t, err)

	commands := record["commands"].([]scene.Record)
	require.Len(t, commands, 2)
	assert.Equal(t, []float64{1, 0, 0}, commands[0]["position"])
	assert.Equal(t, []float64{0, 1, 0}, commands[1]["position"])
}

func TestMessagePackRoundTrip(t *testing.T) {
	message := NewMessage(&SetTransform{
		Position:   math.NewVec3(0, 0, 1),
		Quaternion: math.QuaternionIdentity(),
		Path:       []string{"camera"},
	})

	data, err := message.Pack()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, msgpack.Unmarshal(data, &decoded))

	commands := decoded["commands"].([]any)
	require.Len(t, commands, 1)
	command := commands[0].(map[string]any)
	assert.Equal(t, "set_transform", command["type"])
	assert.Equal(t, []any{"camera"}, command["path"])
	assert.Equal(t, []any{float64(0), float64(0), float64(1)}, command["position"])
	assert.Equal(t, []any{float64(0), float64(0), float64(0), float64(1)}, command["quaternion"])
}
