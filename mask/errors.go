package mask

import (
	"errors"
	"fmt"
)

// Sentinel errors for mask package.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("mask: invalid dimensions")

	// ErrShortBuffer is returned when the coverage buffer holds fewer than
	// width*height*3 bytes.
	ErrShortBuffer = errors.New("mask: coverage buffer too short")
)

// DimensionsError reports the rejected size. It matches
// ErrInvalidDimensions with errors.Is.
type DimensionsError struct {
	Width, Height int
}

func (e *DimensionsError) Error() string {
	return fmt.Sprintf("mask: invalid dimensions %dx%d", e.Width, e.Height)
}

// Unwrap returns ErrInvalidDimensions.
func (e *DimensionsError) Unwrap() error { return ErrInvalidDimensions }

func checkSource(src []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return &DimensionsError{Width: width, Height: height}
	}
	if want := width * height * SourceBytesPerPixel; len(src) < want {
		return fmt.Errorf("%w: have %d bytes, need %d for %dx%d", ErrShortBuffer, len(src), want, width, height)
	}
	return nil
}
