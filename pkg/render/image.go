// Package render provides an in-memory pixel buffer and the rasterizers that
// draw lines, rectangles and polygons into it.
package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/pixmap/pkg/math2d"
)

// ErrInvalidDimensions is returned when an image is created with a zero or
// negative width or height.
var ErrInvalidDimensions = errors.New("invalid image dimensions")

// Image is a fixed-size 2D grid of colors.
// Coordinates start at the top-left corner; x grows right and y grows down.
type Image struct {
	width  int
	height int
	pix    []Color // Row-major pixel data
}

// NewImage creates a black image with the given dimensions.
// Both dimensions must be positive.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// Width returns the number of columns.
func (img *Image) Width() int {
	return img.width
}

// Height returns the number of rows.
func (img *Image) Height() int {
	return img.height
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// Get returns the color at (x, y).
// The second result is false if (x, y) lies outside the image.
func (img *Image) Get(x, y int) (Color, bool) {
	if !img.inBounds(x, y) {
		return Color{}, false
	}
	return img.pix[y*img.width+x], true
}

// Set sets the pixel at (x, y) to c.
// Writes outside the image are silently dropped so that shapes which are
// partly off-canvas still draw their visible part.
func (img *Image) Set(x, y int, c Color) {
	if !img.inBounds(x, y) {
		return
	}
	img.pix[y*img.width+x] = c
}

// SampleAt returns the color of the pixel containing p, truncating p to
// integer coordinates. Negative coordinates (and NaN) report false instead
// of being truncated toward zero.
func (img *Image) SampleAt(p math2d.Vec2) (Color, bool) {
	if !(p.X >= 0 && p.Y >= 0) {
		return Color{}, false
	}
	x, y := p.Trunc()
	return img.Get(x, y)
}

// Fill sets every pixel to c.
func (img *Image) Fill(c Color) {
	for i := range img.pix {
		img.pix[i] = c
	}
}

// Draw renders the given shapes in order.
func (img *Image) Draw(shapes ...Shape) {
	for _, s := range shapes {
		s.Draw(img)
	}
}

// Pixels returns the row-major pixel data. The slice aliases the image.
func (img *Image) Pixels() []Color {
	return img.pix
}

// Row returns row y as a slice aliasing the image, or nil if y is out of
// bounds.
func (img *Image) Row(y int) []Color {
	if y < 0 || y >= img.height {
		return nil
	}
	return img.pix[y*img.width : (y+1)*img.width]
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	pix := make([]Color, len(img.pix))
	copy(pix, img.pix)
	return &Image{width: img.width, height: img.height, pix: pix}
}

// Equal reports whether both images have the same size and pixels.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	if img.width != other.width || img.height != other.height {
		return false
	}
	for i, c := range img.pix {
		if other.pix[i] != c {
			return false
		}
	}
	return true
}
