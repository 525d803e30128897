package ppm

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/taigrr/pixmap/pkg/render"
)

// Decode inspects the magic number on the first line and decodes data
// accordingly. Only P6 is supported; any other token yields a *FormatError.
func Decode(data []byte) (*render.Image, error) {
	first, _, _ := bytes.Cut(data, []byte{'\n'})
	magic := strings.TrimSpace(string(first))
	if magic != "P6" {
		return nil, &FormatError{Magic: magic}
	}
	return DecodeP6(data)
}

// DecodeP6 decodes a binary PPM image. The header is exactly three
// newline-terminated lines: the magic number, "width height" and the
// maximum sample value. The remaining bytes must hold exactly
// width*height*3 samples.
func DecodeP6(data []byte) (*render.Image, error) {
	magic, rest, ok := bytes.Cut(data, []byte{'\n'})
	if !ok {
		return nil, fmt.Errorf("%w: missing magic number", ErrMalformedHeader)
	}
	if m := strings.TrimSpace(string(magic)); m != "P6" {
		return nil, &FormatError{Magic: m}
	}

	dims, rest, ok := bytes.Cut(rest, []byte{'\n'})
	if !ok {
		return nil, fmt.Errorf("%w: missing dimensions", ErrMalformedHeader)
	}
	width, height, err := parseDimensions(string(dims))
	if err != nil {
		return nil, err
	}

	maxVal, body, ok := bytes.Cut(rest, []byte{'\n'})
	if !ok {
		return nil, fmt.Errorf("%w: missing max value", ErrMalformedHeader)
	}
	// The sample range is not checked; samples are taken as 8-bit values.
	if _, err := strconv.ParseUint(strings.TrimSpace(string(maxVal)), 10, 64); err != nil {
		return nil, fmt.Errorf("%w: max value %q", ErrMalformedHeader, maxVal)
	}

	if expected := width * height * 3; len(body) != expected {
		return nil, &DataLengthError{Expected: expected, Actual: len(body)}
	}

	img, err := render.NewImage(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}
	pix := img.Pixels()
	for i := range pix {
		pix[i] = render.RGB(body[3*i], body[3*i+1], body[3*i+2])
	}

	render.Logger().Debug("decoded ppm", "width", width, "height", height)
	return img, nil
}

func parseDimensions(line string) (width, height int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: dimensions %q", ErrMalformedHeader, line)
	}
	var dims [2]int
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: dimensions %q", ErrMalformedHeader, line)
		}
		if v == 0 {
			return 0, 0, fmt.Errorf("%w: %w: %q", ErrMalformedHeader, render.ErrInvalidDimensions, line)
		}
		// Keep width*height*3 representable.
		if v > math.MaxInt32 {
			return 0, 0, fmt.Errorf("%w: dimensions %q too large", ErrMalformedHeader, line)
		}
		dims[i] = int(v)
	}
	if dims[0] > math.MaxInt/3/dims[1] {
		return 0, 0, fmt.Errorf("%w: dimensions %q too large", ErrMalformedHeader, line)
	}
	return dims[0], dims[1], nil
}
