package output

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ToRGBA converts per-pixel sums of samplesPerPixel radiance estimates into an
// 8-bit image. Pixels are row-major with row 0 at the top.
func ToRGBA(pixels []core.Color, width, height, samplesPerPixel int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || samplesPerPixel <= 0 {
		return nil, fmt.Errorf("cannot quantize %dx%d image at %d samples per pixel", width, height, samplesPerPixel)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("expected %d pixels for a %dx%d image, got %d", width*height, width, height, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, Quantize(pixels[y*width+x], samplesPerPixel))
		}
	}
	return img, nil
}

// Quantize averages a pixel sum, applies gamma 2 and maps it to 8 bits
func Quantize(sum core.Color, samplesPerPixel int) color.RGBA {
	c := sum.Divide(float64(samplesPerPixel)).Sqrt()
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

// toByte clamps to [0, 0.999] so that 1.0 maps to 255 rather than overflowing
func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(256 * math.Max(0, math.Min(0.999, v)))
}
