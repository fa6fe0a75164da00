package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshDocument(t *testing.T) {
	box := NewBox(1, 2, 3)
	config := DefaultMeshMaterialConfig()
	config.Color = 0xff0000
	material := NewMeshMaterial(MeshBasic, config)
	object := NewMesh(box, material)

	document, err := object.Serialize()
	require.NoError(t, err)

	assert.Equal(t, Record{"version": 4.5, "type": "Object"}, document["metadata"])

	geometries := document["geometries"].([]Record)
	require.Len(t, geometries, 1)
	assert.Equal(t, Record{
		"uuid":   box.UUID(),
		"type":   "BoxGeometry",
		"width":  1.0,
		"height": 2.0,
		"depth":  3.0,
	}, geometries[0])

	materials := document["materials"].([]Record)
	require.Len(t, materials, 1)
	assert.Equal(t, Record{
		"uuid":         material.UUID(),
		"type":         "MeshBasicMaterial",
		"color":        uint32(16711680),
		"reflectivity": 0.5,
	}, materials[0])

	assert.Equal(t, Record{
		"uuid":     object.UUID(),
		"type":     "Mesh",
		"geometry": box.UUID(),
		"material": material.UUID(),
	}, document["object"])
}

func TestTextureAndImageStayNested(t *testing.T) {
	image := NewPNGImage([]byte{0x89, 0x50, 0x4e, 0x47})
	texture := NewGenericTexture(Record{"wrap": []int{1001, 1001}}, image)
	material := NewGenericMaterial(Record{"shininess": 40.0}, texture)
	object := NewMesh(NewBox(1, 1, 1), material)

	document, err := object.Serialize()
	require.NoError(t, err)

	// only three categories at the top level
	assert.NotContains(t, document, "textures")
	assert.NotContains(t, document, "images")

	materials := document["materials"].([]Record)
	require.Len(t, materials, 1)
	record := materials[0]
	assert.Equal(t, 40.0, record["shininess"])

	// the map field is an identifier resolving to a record nested
	// inside the material record itself
	textures, ok := record["textures"].([]Record)
	require.True(t, ok)
	require.Len(t, textures, 1)
	assert.Equal(t, record["map"], textures[0]["uuid"])
	assert.Equal(t, texture.UUID(), textures[0]["uuid"])

	// the image record nests one level further down, in the texture
	images, ok := textures[0]["images"].([]Record)
	require.True(t, ok)
	require.Len(t, images, 1)
	assert.Equal(t, textures[0]["image"], images[0]["uuid"])
	assert.Equal(t, image.UUID(), images[0]["uuid"])
}

func TestDocumentsAreStable(t *testing.T) {
	image := NewPNGImage([]byte("pixels"))
	texture := NewImageTexture(image, DefaultImageTextureConfig())
	config := DefaultMeshMaterialConfig()
	config.Map = texture
	object := NewMesh(NewBox(0.5, 0.5, 0.5), NewMeshMaterial(MeshPhong, config))

	first, err := object.Serialize()
	require.NoError(t, err)
	second, err := object.Serialize()
	require.NoError(t, err)

	// identifiers are assigned at construction, so repeated composition
	// yields identical documents
	assert.Equal(t, first, second)
}

func TestPointsDocument(t *testing.T) {
	positions := mustMatrix(t, [][]float32{
		{0, 1},
		{0, 0},
		{0, 1},
	})
	colors := mustMatrix(t, [][]float32{
		{1, 0},
		{0, 1},
		{0, 0},
	})
	geometry := NewPointCloud(positions, colors)
	material := NewPointsMaterial(0.01, 0xffffff)
	object := NewPoints(geometry, material)

	document, err := object.Serialize()
	require.NoError(t, err)

	assert.Equal(t, "Points", document["object"].(Record)["type"])

	geometries := document["geometries"].([]Record)
	require.Len(t, geometries, 1)
	attributes := geometries[0]["data"].(Record)["attributes"].(Record)
	position := attributes["position"].(map[string]any)
	assert.Equal(t, 3, position["itemSize"])
	color := attributes["color"].(map[string]any)
	assert.Equal(t, "Float32Array", color["type"])

	materials := document["materials"].([]Record)
	require.Len(t, materials, 1)
	assert.Equal(t, 2, materials[0]["vertexColors"])
}

func TestComposeAbortsOnError(t *testing.T) {
	// an image texture without an image cannot serialize
	broken := NewImageTexture(nil, DefaultImageTextureConfig())
	config := DefaultMeshMaterialConfig()
	config.Map = broken
	object := NewMesh(NewBox(1, 1, 1), NewMeshMaterial(MeshBasic, config))

	document, err := object.Serialize()
	assert.Error(t, err)
	assert.Nil(t, document)
}
