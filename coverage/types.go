package coverage

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/cleartype/internal/pixbuf"
)

// Sentinel errors for coverage package.
var (
	// ErrNoInk is returned when a glyph run paints no pixels. Callers skip
	// the draw; retrying cannot help.
	ErrNoInk = errors.New("coverage: glyph run has no ink")

	// ErrInvalidRun is returned for malformed glyph runs.
	ErrInvalidRun = errors.New("coverage: invalid glyph run")
)

// RenderMode selects how glyphs are rasterized.
type RenderMode int

const (
	// RenderClearTypeNatural keeps fractional glyph origins and filters
	// the subpixels to reduce color fringes.
	RenderClearTypeNatural RenderMode = iota

	// RenderGDIClassic snaps glyph origins to whole pixels and leaves the
	// subpixels unfiltered, like classic GDI ClearType.
	RenderGDIClassic

	// RenderDefault picks GDIClassic for small text and ClearTypeNatural
	// otherwise.
	RenderDefault
)

// String returns the string representation of the render mode.
func (m RenderMode) String() string {
	switch m {
	case RenderClearTypeNatural:
		return "ClearTypeNatural"
	case RenderGDIClassic:
		return "GDIClassic"
	case RenderDefault:
		return "Default"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// defaultModeThreshold is the em size, in pixels, below which RenderDefault
// behaves like RenderGDIClassic.
const defaultModeThreshold = 20

// Resolve maps RenderDefault to a concrete mode for the given em size.
func (m RenderMode) Resolve(emSize float32) RenderMode {
	if m != RenderDefault {
		return m
	}
	if emSize < defaultModeThreshold {
		return RenderGDIClassic
	}
	return RenderClearTypeNatural
}

// MeasureMode selects how glyph advances turn into pen positions.
type MeasureMode int

const (
	// MeasureNatural keeps fractional advances.
	MeasureNatural MeasureMode = iota

	// MeasureGDIClassic rounds every advance to whole pixels.
	MeasureGDIClassic

	// MeasureGDINatural accumulates fractional advances and rounds each
	// resulting pen position.
	MeasureGDINatural
)

// String returns the string representation of the measure mode.
func (m MeasureMode) String() string {
	switch m {
	case MeasureNatural:
		return "Natural"
	case MeasureGDIClassic:
		return "GDIClassic"
	case MeasureGDINatural:
		return "GDINatural"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// Point is a position in device pixels.
type Point struct {
	X, Y float32
}

// GlyphIndex is a glyph's index within its font.
type GlyphIndex uint16

// GlyphRun is a sequence of glyphs from one font at one size, positioned
// from Origin along the baseline.
//
// A GlyphRun is built by the shaper and only read here.
type GlyphRun struct {
	// Font holds the outlines of Glyphs.
	Font *Font

	// Glyphs are the glyph indices in visual order.
	Glyphs []GlyphIndex

	// Advances holds the horizontal advance of each glyph in pixels.
	// len(Advances) must equal len(Glyphs).
	Advances []float32

	// Offsets optionally displaces each glyph from its pen position, in
	// device pixels with y pointing down. It is nil or as long as Glyphs.
	Offsets []Point

	// EmSize is the font size in pixels per em.
	EmSize float32

	// Origin is the baseline position of the first glyph.
	Origin Point
}

// Validate reports whether r can be sampled.
func (r *GlyphRun) Validate() error {
	switch {
	case r == nil:
		return fmt.Errorf("%w: nil run", ErrInvalidRun)
	case r.Font == nil:
		return fmt.Errorf("%w: nil font", ErrInvalidRun)
	case len(r.Advances) != len(r.Glyphs):
		return fmt.Errorf("%w: %d glyphs but %d advances", ErrInvalidRun, len(r.Glyphs), len(r.Advances))
	case r.Offsets != nil && len(r.Offsets) != len(r.Glyphs):
		return fmt.Errorf("%w: %d glyphs but %d offsets", ErrInvalidRun, len(r.Glyphs), len(r.Offsets))
	case !(r.EmSize > 0) || math.IsInf(float64(r.EmSize), 0):
		return fmt.Errorf("%w: em size %v", ErrInvalidRun, r.EmSize)
	}
	return nil
}

// Scaled returns a copy of r magnified by factor: em size, advances and
// origin all scale. This is the only place magnification enters the
// pipeline.
func (r *GlyphRun) Scaled(factor float32) *GlyphRun {
	out := &GlyphRun{
		Font:     r.Font,
		Glyphs:   append([]GlyphIndex(nil), r.Glyphs...),
		Advances: make([]float32, len(r.Advances)),
		EmSize:   r.EmSize * factor,
		Origin:   Point{X: r.Origin.X * factor, Y: r.Origin.Y * factor},
	}
	for i, a := range r.Advances {
		out.Advances[i] = a * factor
	}
	if r.Offsets != nil {
		out.Offsets = make([]Point, len(r.Offsets))
		for i, o := range r.Offsets {
			out.Offsets[i] = Point{X: o.X * factor, Y: o.Y * factor}
		}
	}
	return out
}

// penPositions returns the horizontal offset of every glyph from
// Origin.X under mm.
func (r *GlyphRun) penPositions(mm MeasureMode) []float32 {
	pos := make([]float32, len(r.Glyphs))
	var pen float32
	for i, adv := range r.Advances {
		switch mm {
		case MeasureGDIClassic:
			pos[i] = pen
			pen += roundf(adv)
		case MeasureGDINatural:
			pos[i] = roundf(pen)
			pen += adv
		default:
			pos[i] = pen
			pen += adv
		}
	}
	return pos
}

// Bounds is an integer rectangle in device pixels. Right and Bottom are
// exclusive.
type Bounds struct {
	Left, Top, Right, Bottom int
}

// Width returns Right - Left.
func (b Bounds) Width() int { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b Bounds) Height() int { return b.Bottom - b.Top }

// Empty reports whether b covers no pixels.
func (b Bounds) Empty() bool { return b.Width() <= 0 || b.Height() <= 0 }

// Rect returns b as an image.Rectangle.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// Union returns the smallest bounds containing b and o. Empty operands are
// ignored.
func (b Bounds) Union(o Bounds) Bounds {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Bounds{
		Left:   min(b.Left, o.Left),
		Top:    min(b.Top, o.Top),
		Right:  max(b.Right, o.Right),
		Bottom: max(b.Bottom, o.Bottom),
	}
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.Left, b.Top, b.Right, b.Bottom)
}

// BytesPerPixel is the size of one coverage pixel: red, green and blue.
const BytesPerPixel = 3

// Buffer is a row-major coverage mask, BytesPerPixel bytes per pixel.
// Pixel (0, 0) corresponds to device position (Bounds.Left, Bounds.Top).
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
}

// NewBuffer allocates a zeroed buffer for w x h pixels.
func NewBuffer(w, h int) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrNoInk
	}
	n, err := pixbuf.Size(w, h, BytesPerPixel)
	if err != nil {
		return nil, err
	}
	pix, err := pixbuf.Get(n, 0)
	if err != nil {
		return nil, err
	}
	return &Buffer{Pix: pix, Width: w, Height: h}, nil
}

// Release returns the buffer's storage to the pool. The buffer must not be
// used afterwards.
func (b *Buffer) Release() {
	if b == nil || b.Pix == nil {
		return
	}
	pixbuf.Put(b.Pix)
	b.Pix = nil
}

// Sampler exposes the two rasterizer queries the conversion stage needs.
type Sampler interface {
	// Bounds returns the pixel rectangle r paints, or ErrNoInk.
	Bounds(r *GlyphRun, rm RenderMode, mm MeasureMode) (Bounds, error)

	// Coverage rasterizes r into a buffer of exactly
	// b.Width()*b.Height()*3 bytes.
	Coverage(r *GlyphRun, b Bounds, rm RenderMode, mm MeasureMode) (*Buffer, error)
}

func roundf(v float32) float32 {
	return float32(math.Floor(float64(v) + 0.5))
}
