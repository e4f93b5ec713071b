package renderer

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Framebuffer holds accumulated linear color sums in row-major order, row 0 at the top.
// Concurrent writers must each go through their own Band.
type Framebuffer struct {
	width, height int
	pixels        []core.Color
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// Pixels returns the row-major accumulated sums. The slice aliases the framebuffer.
func (fb *Framebuffer) Pixels() []core.Color { return fb.pixels }

// At returns the accumulated sum at column x, row y (row 0 at the top)
func (fb *Framebuffer) At(x, y int) core.Color {
	return fb.pixels[y*fb.width+x]
}

// Band is an exclusive view of a contiguous range of framebuffer rows [MinY, MaxY)
type Band struct {
	Index      int
	MinY, MaxY int
	width      int
	pixels     []core.Color
}

// Bands partitions the framebuffer into disjoint bands of at most rowsPerBand rows.
// Each band's pixel slice is capped at its own range, so no band can reach another's pixels.
func (fb *Framebuffer) Bands(rowsPerBand int) []Band {
	if rowsPerBand <= 0 {
		rowsPerBand = 1
	}

	var bands []Band
	for minY := 0; minY < fb.height; minY += rowsPerBand {
		maxY := min(minY+rowsPerBand, fb.height)
		lo, hi := minY*fb.width, maxY*fb.width
		bands = append(bands, Band{
			Index:  len(bands),
			MinY:   minY,
			MaxY:   maxY,
			width:  fb.width,
			pixels: fb.pixels[lo:hi:hi],
		})
	}
	return bands
}

// Rows returns the number of rows in the band
func (b Band) Rows() int { return b.MaxY - b.MinY }

// Add accumulates c into the pixel at column x, framebuffer row y
func (b Band) Add(x, y int, c core.Color) {
	if y < b.MinY || y >= b.MaxY {
		panic(fmt.Sprintf("renderer: row %d outside band %d [%d, %d)", y, b.Index, b.MinY, b.MaxY))
	}
	i := (y-b.MinY)*b.width + x
	b.pixels[i] = b.pixels[i].Add(c)
}
