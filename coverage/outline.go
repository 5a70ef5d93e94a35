package coverage

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/cleartype/internal/logging"
)

// subpixels is the horizontal oversampling factor: one sample per stripe.
const subpixels = 3

// OutlineSampler rasterizes glyph outlines into subpixel coverage.
//
// OutlineSampler is safe for concurrent use: it keeps no state between
// calls.
type OutlineSampler struct {
	filter bool
}

// SamplerOption configures an OutlineSampler.
type SamplerOption func(*OutlineSampler)

// WithLCDFilter enables or disables the LCD filter for
// RenderClearTypeNatural. It is on by default. RenderGDIClassic never
// filters.
func WithLCDFilter(enabled bool) SamplerOption {
	return func(s *OutlineSampler) {
		s.filter = enabled
	}
}

// NewOutlineSampler creates a sampler.
func NewOutlineSampler(opts ...SamplerOption) *OutlineSampler {
	s := &OutlineSampler{filter: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// placement is the resolved device position of one glyph.
type placement struct {
	glyph GlyphIndex
	x, y  float32
}

// layout resolves the modes and positions every glyph of r.
func (s *OutlineSampler) layout(r *GlyphRun, rm RenderMode, mm MeasureMode) ([]placement, RenderMode) {
	rm = rm.Resolve(r.EmSize)
	pens := r.penPositions(mm)
	out := make([]placement, len(r.Glyphs))
	for i, g := range r.Glyphs {
		x := r.Origin.X + pens[i]
		y := r.Origin.Y
		if r.Offsets != nil {
			x += r.Offsets[i].X
			y += r.Offsets[i].Y
		}
		y = roundf(y)
		if rm == RenderGDIClassic {
			x = roundf(x)
		}
		out[i] = placement{glyph: g, x: x, y: y}
	}
	return out, rm
}

// padding returns the horizontal pixels the filter may bleed into.
func (s *OutlineSampler) padding(rm RenderMode) int {
	if s.filter && rm == RenderClearTypeNatural {
		return 1
	}
	return 0
}

// Bounds implements Sampler.
func (s *OutlineSampler) Bounds(r *GlyphRun, rm RenderMode, mm MeasureMode) (Bounds, error) {
	if err := r.Validate(); err != nil {
		return Bounds{}, err
	}
	places, rm := s.layout(r, rm, mm)

	var (
		buf   sfnt.Buffer
		total Bounds
	)
	for _, p := range places {
		segs, err := r.Font.outline(&buf, p.glyph, r.EmSize)
		if err != nil {
			return Bounds{}, err
		}
		if len(segs) == 0 {
			continue
		}
		gb := segs.Bounds()
		total = total.Union(Bounds{
			Left:   floorInt(p.x + fromFixed(gb.Min.X)),
			Top:    floorInt(p.y + fromFixed(gb.Min.Y)),
			Right:  ceilInt(p.x + fromFixed(gb.Max.X)),
			Bottom: ceilInt(p.y + fromFixed(gb.Max.Y)),
		})
	}
	if total.Empty() {
		return Bounds{}, ErrNoInk
	}

	pad := s.padding(rm)
	total.Left -= pad
	total.Right += pad

	logging.Logger().Debug("coverage: bounds",
		"glyphs", len(r.Glyphs), "render", rm.String(), "measure", mm.String(), "bounds", total.String())
	return total, nil
}

// Coverage implements Sampler.
func (s *OutlineSampler) Coverage(r *GlyphRun, b Bounds, rm RenderMode, mm MeasureMode) (*Buffer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if b.Empty() {
		return nil, ErrNoInk
	}
	places, rm := s.layout(r, rm, mm)

	w, h := b.Width(), b.Height()
	out, err := NewBuffer(w, h)
	if err != nil {
		return nil, err
	}

	z := vector.NewRasterizer(w*subpixels, h)
	left, top := float32(b.Left), float32(b.Top)

	var buf sfnt.Buffer
	for _, p := range places {
		segs, err := r.Font.outline(&buf, p.glyph, r.EmSize)
		if err != nil {
			out.Release()
			return nil, err
		}
		addOutline(z, segs, (p.x-left)*subpixels, p.y-top)
	}

	sub := image.NewAlpha(z.Bounds())
	z.Draw(sub, sub.Bounds(), image.Opaque, image.Point{})

	filter := s.filter && rm == RenderClearTypeNatural
	row := make([]byte, w*subpixels)
	for y := 0; y < h; y++ {
		src := sub.Pix[y*sub.Stride : y*sub.Stride+w*subpixels]
		if filter {
			filterRow(row, src)
			src = row
		}
		// Left, middle and right stripes map to R, G, B.
		copy(out.Pix[y*w*BytesPerPixel:(y+1)*w*BytesPerPixel], src)
	}

	logging.Logger().Debug("coverage: rasterized",
		"width", w, "height", h, "bytes", len(out.Pix), "filtered", filter)
	return out, nil
}

// addOutline appends segs to z. Outline x coordinates are stretched by the
// subpixel factor; (dx, dy) is the glyph origin in rasterizer space.
func addOutline(z *vector.Rasterizer, segs sfnt.Segments, dx, dy float32) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return dx + fromFixed(p.X)*subpixels, dy + fromFixed(p.Y)
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			x, y := pt(seg.Args[0])
			z.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			z.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			z.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		z.ClosePath()
	}
}

func floorInt(v float32) int { return int(math.Floor(float64(v))) }

func ceilInt(v float32) int { return int(math.Ceil(float64(v))) }
