package scene

import "fmt"

// Texture narrows Referenceable to the texture category.
type Texture interface {
	Referenceable
	texture()
}

type textureBase struct {
	element
}

func newTextureBase() textureBase {
	return textureBase{element: newElement()}
}

func (textureBase) Category() Category { return CategoryTextures }
func (textureBase) texture()           {}

// Wrap modes understood by the viewer.
const (
	WrapRepeat         = 1000
	WrapClampToEdge    = 1001
	WrapMirroredRepeat = 1002
)

/**
 * @brief A free-form texture: an open property mapping plus an explicit
 * optional image reference emitted under the reserved "image" key.
 */
type GenericTexture struct {
	textureBase
	Image      Image
	Properties Record
}

func NewGenericTexture(properties Record, image Image) *GenericTexture {
	return &GenericTexture{
		textureBase: newTextureBase(),
		Image:       image,
		Properties:  properties,
	}
}

func (t *GenericTexture) Serialize(acc *Accumulator) (Record, error) {
	// shallow copy: the caller's property mapping is never mutated
	data := Record{"uuid": t.UUID()}
	for key, value := range t.Properties {
		data[key] = value
	}
	if t.Image != nil {
		id, err := acc.Flatten(t.Image)
		if err != nil {
			return nil, err
		}
		data["image"] = id
		attachDrained(data, acc, CategoryImages)
	}
	return data, nil
}

/**
 * @brief Configuration for an image-backed texture. Wrap and Repeat are
 * (u, v) pairs; Properties holds free-form extras merged last.
 */
type ImageTextureConfig struct {
	Wrap       [2]int
	Repeat     [2]int
	Properties Record
}

func DefaultImageTextureConfig() ImageTextureConfig {
	return ImageTextureConfig{
		Wrap:   [2]int{WrapClampToEdge, WrapClampToEdge},
		Repeat: [2]int{1, 1},
	}
}

// ImageTexture wraps an image reference with sampling parameters.
type ImageTexture struct {
	textureBase
	image  Image
	config ImageTextureConfig
}

func NewImageTexture(image Image, config ImageTextureConfig) *ImageTexture {
	return &ImageTexture{
		textureBase: newTextureBase(),
		image:       image,
		config:      config,
	}
}

func (t *ImageTexture) Serialize(acc *Accumulator) (Record, error) {
	if t.image == nil {
		return nil, fmt.Errorf("image texture %s has no image", t.UUID())
	}
	id, err := acc.Flatten(t.image)
	if err != nil {
		return nil, err
	}
	data := Record{
		"uuid":   t.UUID(),
		"wrap":   t.config.Wrap,
		"repeat": t.config.Repeat,
		"image":  id,
	}
	for key, value := range t.config.Properties {
		data[key] = value
	}
	attachDrained(data, acc, CategoryImages)
	return data, nil
}
