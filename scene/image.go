package scene

import "encoding/base64"

// Image narrows Referenceable to the image category. Images are leaf
// nodes of the descriptor graph and never embed other references.
type Image interface {
	Referenceable
	image()
}

type imageBase struct {
	element
}

func newImageBase() imageBase {
	return imageBase{element: newElement()}
}

func (imageBase) Category() Category { return CategoryImages }
func (imageBase) image()             {}

/**
 * @brief An inline raster image. The encoded payload bytes are emitted
 * as a base64 data URI; they are opaque to this layer and never decoded.
 */
type PNGImage struct {
	imageBase
	Data []byte
}

func NewPNGImage(data []byte) *PNGImage {
	return &PNGImage{
		imageBase: newImageBase(),
		Data:      data,
	}
}

func (i *PNGImage) Serialize(*Accumulator) (Record, error) {
	return Record{
		"uuid": i.UUID(),
		"url":  "data:image/png;base64," + base64.StdEncoding.EncodeToString(i.Data),
	}, nil
}
