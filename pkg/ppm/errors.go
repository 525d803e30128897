package ppm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for magic numbers other than P6.
	ErrUnsupportedFormat = errors.New("unsupported ppm format")
	// ErrMalformedHeader is returned when the three header lines cannot be parsed.
	ErrMalformedHeader = errors.New("malformed ppm header")
	// ErrTruncatedOrPaddedData is returned when the pixel data does not
	// match the header dimensions.
	ErrTruncatedOrPaddedData = errors.New("ppm pixel data truncated or padded")
)

// FormatError reports the magic token of an input that cannot be decoded.
type FormatError struct {
	Magic string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedFormat, e.Magic)
}

func (e *FormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// DataLengthError reports how many pixel bytes were expected and found.
type DataLengthError struct {
	Expected int
	Actual   int
}

func (e *DataLengthError) Error() string {
	return fmt.Sprintf("%v: expected %d bytes, got %d", ErrTruncatedOrPaddedData, e.Expected, e.Actual)
}

func (e *DataLengthError) Unwrap() error {
	return ErrTruncatedOrPaddedData
}
