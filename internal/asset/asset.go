// Package asset loads the background raster of the map.
package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmpty is wrapped by a LoadError for an image without pixels.
var ErrEmpty = errors.New("image has no pixels")

// LoadError means the background could not be used. Drawing onto layers
// sized from a failed load is never attempted.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Image is a decoded raster with its natural pixel size.
type Image struct {
	Path   string
	Format string
	Pixels image.Image
	Width  int
	Height int
}

// Load decodes the image at path. JPEG, PNG, BMP, TIFF and WebP are known.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &LoadError{Path: path, Err: ErrEmpty}
	}
	return &Image{
		Path:   path,
		Format: format,
		Pixels: img,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// Scaled returns the device size of the image under ratio.
func (img *Image) Scaled(ratio float64) (width, height int) {
	return int(float64(img.Width) * ratio), int(float64(img.Height) * ratio)
}
