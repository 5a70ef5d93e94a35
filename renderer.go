package cleartype

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/cleartype/coverage"
	"github.com/gogpu/cleartype/internal/logging"
	"github.com/gogpu/cleartype/mask"
)

// Compositor draws finished bitmaps onto a destination surface.
type Compositor interface {
	// Composite draws bm with its top-left corner at (x, y). The bitmap is
	// only valid for the duration of the call.
	Composite(bm *mask.Bitmap, x, y int, opacity float32) error
}

// Result is a converted glyph run.
type Result struct {
	// Bitmap holds the pixels. Release it when done.
	Bitmap *mask.Bitmap

	// Bounds is the device rectangle the bitmap covers, relative to the
	// run's coordinate space.
	Bounds coverage.Bounds
}

// Release returns the bitmap storage to the pool.
func (r *Result) Release() {
	if r != nil {
		r.Bitmap.Release()
	}
}

// Renderer turns glyph runs into bitmaps with one profile.
//
// Renderer is safe for concurrent use when its sampler is.
type Renderer struct {
	sampler coverage.Sampler
	profile Profile
	scale   float32
}

// NewRenderer creates a renderer sampling coverage from s.
func NewRenderer(s coverage.Sampler, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		sampler: s,
		profile: o.resolved(),
		scale:   o.scale,
	}
}

// Profile returns the renderer's profile.
func (r *Renderer) Profile() Profile { return r.profile }

// Render samples run and converts its coverage. ErrNoInk is returned
// unwrapped when the run paints nothing.
func (r *Renderer) Render(run *coverage.GlyphRun) (*Result, error) {
	if r.scale != 1 && run != nil {
		run = run.Scaled(r.scale)
	}
	p := r.profile

	b, err := r.sampler.Bounds(run, p.RenderMode, p.MeasureMode)
	if err != nil {
		if errors.Is(err, coverage.ErrNoInk) {
			return nil, err
		}
		return nil, fmt.Errorf("cleartype: bounds: %w", err)
	}
	if b.Empty() {
		return nil, ErrNoInk
	}

	buf, err := r.sampler.Coverage(run, b, p.RenderMode, p.MeasureMode)
	if err != nil {
		return nil, fmt.Errorf("cleartype: coverage: %w", err)
	}
	defer buf.Release()

	if buf.Width != b.Width() || buf.Height != b.Height() {
		return nil, fmt.Errorf("%w: buffer %dx%d, bounds %v", ErrCoverageMismatch, buf.Width, buf.Height, b)
	}

	bm, err := p.Convert(buf)
	if err != nil {
		return nil, fmt.Errorf("cleartype: convert: %w", err)
	}

	if logging.Enabled(slog.LevelDebug) {
		logging.Logger().Debug("cleartype: rendered run",
			"profile", p.Kind.String(), "bounds", b.String(), "bytes", len(bm.Pix))
	}
	return &Result{Bitmap: bm, Bounds: b}, nil
}

// Draw renders run and composites it with its origin offset by (x, y).
// The bitmap is released after compositing.
func (r *Renderer) Draw(c Compositor, run *coverage.GlyphRun, x, y int) error {
	if c == nil {
		return ErrNilCompositor
	}
	res, err := r.Render(run)
	if err != nil {
		return err
	}
	defer res.Release()

	if err := c.Composite(res.Bitmap, x+res.Bounds.Left, y+res.Bounds.Top, 1.0); err != nil {
		return fmt.Errorf("cleartype: composite: %w", err)
	}
	return nil
}
