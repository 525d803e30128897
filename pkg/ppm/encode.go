// Package ppm encodes and decodes images in the portable pixmap format.
//
// Both the ASCII (P3) and binary (P6) variants can be written. Only P6 can
// be read back.
package ppm

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taigrr/pixmap/pkg/render"
)

// Format selects a PPM variant.
type Format int

const (
	P6 Format = iota // Binary
	P3               // ASCII
)

// ParseFormat parses "p3" or "p6", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p6":
		return P6, nil
	case "p3":
		return P3, nil
	}
	return 0, &FormatError{Magic: s}
}

func (f Format) String() string {
	switch f {
	case P6:
		return "P6"
	case P3:
		return "P3"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

func writeHeader(buf *bytes.Buffer, magic string, img *render.Image) {
	fmt.Fprintf(buf, "%s\n%d %d\n255\n", magic, img.Width(), img.Height())
}

// EncodeP3 returns the ASCII encoding of img. Every pixel is written as
// "r g b " and each row ends with a newline.
func EncodeP3(img *render.Image) []byte {
	var buf bytes.Buffer
	// Worst case "255 255 255 " per pixel.
	buf.Grow(16 + img.Width()*img.Height()*12 + img.Height())
	writeHeader(&buf, "P3", img)

	var num []byte
	for y := range img.Height() {
		for _, c := range img.Row(y) {
			for _, v := range [3]uint8{c.R, c.G, c.B} {
				num = strconv.AppendUint(num[:0], uint64(v), 10)
				buf.Write(num)
				buf.WriteByte(' ')
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// EncodeP6 returns the binary encoding of img.
func EncodeP6(img *render.Image) []byte {
	var buf bytes.Buffer
	buf.Grow(16 + img.Width()*img.Height()*3)
	writeHeader(&buf, "P6", img)

	for _, c := range img.Pixels() {
		buf.Write([]byte{c.R, c.G, c.B})
	}
	return buf.Bytes()
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img *render.Image, f Format) error {
	var data []byte
	switch f {
	case P6:
		data = EncodeP6(img)
	case P3:
		data = EncodeP3(img)
	default:
		return &FormatError{Magic: f.String()}
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}
