package ppm

import (
	"fmt"
	"os"

	"github.com/taigrr/pixmap/pkg/render"
)

// ReadFile reads and decodes the PPM image at path.
func ReadFile(path string) (*render.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ppm: %w", err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// WriteFile encodes img in the given format and writes it to path.
func WriteFile(path string, img *render.Image, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ppm: %w", err)
	}
	if err := Encode(file, img, f); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close ppm: %w", err)
	}
	return nil
}
