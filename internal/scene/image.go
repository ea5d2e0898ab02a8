package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"vpdetect/pkg/geometry"
)

// ProbeImageSize reads the dimensions from an image header without decoding
// the pixels. JPEG, PNG, TIFF, BMP and WebP are recognised.
func ProbeImageSize(path string) (geometry.Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return geometry.Size{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return geometry.Size{}, fmt.Errorf("read image header %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return geometry.Size{}, fmt.Errorf("%s image %s has no pixels", format, path)
	}
	return geometry.NewSize(float64(cfg.Width), float64(cfg.Height)), nil
}

// ProbeImageCenter returns the centre of the image at path, the
// conventional principal point for an uncalibrated camera.
func ProbeImageCenter(path string) (geometry.Point2D, error) {
	size, err := ProbeImageSize(path)
	if err != nil {
		return geometry.Point2D{}, err
	}
	return size.Center(), nil
}
