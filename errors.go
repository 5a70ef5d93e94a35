package cleartype

import (
	"errors"

	"github.com/gogpu/cleartype/coverage"
	"github.com/gogpu/cleartype/internal/pixbuf"
	"github.com/gogpu/cleartype/mask"
)

// Error taxonomy. Match with errors.Is.
var (
	// ErrNoInk means the glyph run paints no pixels. Skip the draw; it is
	// not retryable.
	ErrNoInk = coverage.ErrNoInk

	// ErrInvalidDimensions means a conversion was asked for a non-positive
	// size. It indicates a caller bug.
	ErrInvalidDimensions = mask.ErrInvalidDimensions

	// ErrResourceExhaustion means a pixel buffer would exceed the
	// allocation limit.
	ErrResourceExhaustion = pixbuf.ErrResourceExhaustion

	// ErrNilCompositor is returned by Draw when no compositor is given.
	ErrNilCompositor = errors.New("cleartype: nil compositor")

	// ErrCoverageMismatch is returned when a sampler's buffer does not match
	// the bounds it reported.
	ErrCoverageMismatch = errors.New("cleartype: coverage buffer does not match bounds")
)
