package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/scenecast/core"
	"github.com/spaghettifunk/scenecast/scene"
)

// LoadMeshFile reads an external mesh file (obj, stl, ...) into a
// mesh-file geometry. The format tag is taken from the file extension.
func LoadMeshFile(path string) (*scene.MeshFile, error) {
	contents, err := readFile(path)
	if err != nil {
		return nil, err
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return scene.NewMeshFile(format, string(contents)), nil
}

// LoadImageFile reads an encoded raster file into an inline image. The
// bytes are kept as-is; decoding is the viewer's job.
func LoadImageFile(path string) (*scene.PNGImage, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return scene.NewPNGImage(data), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", core.ErrMissingFile, path)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
