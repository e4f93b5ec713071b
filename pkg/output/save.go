package output

import (
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultPath is where renders are written when no path is given
const DefaultPath = "image.ppm"

// Save quantizes per-pixel sums and writes them to path in the given format
func Save(path string, format Format, pixels []core.Color, width, height, samplesPerPixel int) error {
	img, err := ToRGBA(pixels, width, height, samplesPerPixel)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
