package testbed

import (
	"encoding/base64"

	"github.com/spaghettifunk/scenecast/math"
	"github.com/spaghettifunk/scenecast/protocol"
	"github.com/spaghettifunk/scenecast/scene"
	"github.com/spaghettifunk/scenecast/wire"
)

// 1x1 white PNG, enough to see the texture path end to end.
const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8/5+hHgAHggJ/PchI7wAAAABJRU5ErkJggg=="

// DemoCommands builds a small scene under prefix: a textured box, a
// point cloud, and a transform moving the box off the origin.
func DemoCommands(prefix string) ([]protocol.Command, error) {
	pixels, err := base64.StdEncoding.DecodeString(pixelPNG)
	if err != nil {
		return nil, err
	}

	texture := scene.NewImageTexture(scene.NewPNGImage(pixels), scene.DefaultImageTextureConfig())
	boxMaterial := scene.DefaultMeshMaterialConfig()
	boxMaterial.Color = 0xff0000
	boxMaterial.Map = texture
	box := scene.NewMesh(scene.NewBox(1, 1, 1), scene.NewMeshMaterial(scene.MeshPhong, boxMaterial))

	positions, err := wire.Matrix([][]float32{
		{0, 0.5, 1, 1.5},
		{0, 0, 0, 0},
		{0.5, 0.5, 0.5, 0.5},
	})
	if err != nil {
		return nil, err
	}
	cloud := scene.NewPoints(
		scene.NewPointCloud(positions, nil),
		scene.NewPointsMaterial(0.05, 0x00ff00),
	)

	return []protocol.Command{
		&protocol.SetObject{Object: box, Path: []string{prefix, "box"}},
		&protocol.SetObject{Object: cloud, Path: []string{prefix, "cloud"}},
		&protocol.SetTransform{
			Position:   math.NewVec3(0, 0, 1),
			Quaternion: math.QuaternionIdentity(),
			Path:       []string{prefix, "box"},
		},
	}, nil
}
