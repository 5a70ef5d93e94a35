package shape

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/cleartype/coverage"
	"github.com/gogpu/cleartype/internal/cache"
	"github.com/gogpu/cleartype/internal/logging"
)

// ErrNilFont is returned when Shape is called without a font.
var ErrNilFont = errors.New("shape: nil font")

// Direction is the horizontal direction of a run.
type Direction int

const (
	// DirectionAuto picks the direction of the first strong character.
	DirectionAuto Direction = iota

	// DirectionLTR shapes left to right.
	DirectionLTR

	// DirectionRTL shapes right to left.
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionAuto:
		return "auto"
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Shaper converts text into glyph runs.
//
// Shaper is safe for concurrent use. Parsed fonts are cached per
// *coverage.Font; HarfBuzz shapers are pooled because they keep mutable
// buffers.
type Shaper struct {
	pool  sync.Pool
	fonts *cache.Cache[*coverage.Font, parsed]

	lang      language.Language
	direction Direction
}

// parsed is a cache entry; a font that fails to parse is cached with its
// error so it is not parsed again.
type parsed struct {
	font *font.Font
	err  error
}

// Option configures a Shaper.
type Option func(*Shaper)

// WithLanguage sets the BCP 47 language used for language-specific
// shaping. The default is "en".
func WithLanguage(tag string) Option {
	return func(s *Shaper) {
		s.lang = language.NewLanguage(tag)
	}
}

// WithDirection forces the run direction. The default is DirectionAuto.
func WithDirection(d Direction) Option {
	return func(s *Shaper) {
		s.direction = d
	}
}

// WithFontCacheSize sets how many parsed fonts are kept. The default is 16.
func WithFontCacheSize(n int) Option {
	return func(s *Shaper) {
		s.fonts = cache.New[*coverage.Font, parsed](n)
	}
}

// New creates a Shaper.
func New(opts ...Option) *Shaper {
	s := &Shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts:     cache.New[*coverage.Font, parsed](16),
		lang:      language.NewLanguage("en"),
		direction: DirectionAuto,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shape shapes text with f at emSize pixels per em, starting at origin.
// Empty text yields a run with no glyphs.
func (s *Shaper) Shape(f *coverage.Font, text string, emSize float32, origin coverage.Point) (*coverage.GlyphRun, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	run := &coverage.GlyphRun{Font: f, EmSize: emSize, Origin: origin}
	if err := run.Validate(); err != nil {
		return nil, err
	}
	if text == "" {
		return run, nil
	}

	gf, err := s.parse(f)
	if err != nil {
		return nil, err
	}

	runes := []rune(norm.NFC.String(text))
	dir := s.resolveDirection(runes)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(gf),
		Size:      fixed.Int26_6(emSize*64 + 0.5),
		Script:    detectScript(runes),
		Language:  s.lang,
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	fillRun(run, out.Glyphs)
	logging.Logger().Debug("shape: shaped run",
		"runes", len(runes), "glyphs", len(run.Glyphs), "rtl", dir == di.DirectionRTL, "size", emSize)
	return run, nil
}

// parse returns the go-text font for f.
func (s *Shaper) parse(f *coverage.Font) (*font.Font, error) {
	p := s.fonts.GetOrCreate(f, func() parsed {
		face, err := font.ParseTTF(bytes.NewReader(f.Data()))
		if err != nil {
			return parsed{err: fmt.Errorf("shape: failed to parse font %q: %w", f.Name(), err)}
		}
		return parsed{font: face.Font}
	})
	return p.font, p.err
}

func (s *Shaper) resolveDirection(runes []rune) di.Direction {
	switch s.direction {
	case DirectionLTR:
		return di.DirectionLTR
	case DirectionRTL:
		return di.DirectionRTL
	}
	return detectDirection(runes)
}

// detectDirection returns the direction of the first strong character,
// LTR when there is none.
func detectDirection(runes []rune) di.Direction {
	for _, r := range runes {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return di.DirectionLTR
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		}
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fillRun copies shaped glyphs into run. HarfBuzz output is in visual
// order for both directions, so advances always move right.
func fillRun(run *coverage.GlyphRun, glyphs []shaping.Glyph) {
	run.Glyphs = make([]coverage.GlyphIndex, len(glyphs))
	run.Advances = make([]float32, len(glyphs))
	var offsets []coverage.Point
	for i, g := range glyphs {
		run.Glyphs[i] = coverage.GlyphIndex(uint16(g.GlyphID)) //nolint:gosec // sfnt glyph indices are 16-bit
		run.Advances[i] = float32(g.Advance) / 64
		if g.XOffset != 0 || g.YOffset != 0 {
			if offsets == nil {
				offsets = make([]coverage.Point, len(glyphs))
			}
			// go-text offsets point up; device y points down.
			offsets[i] = coverage.Point{X: float32(g.XOffset) / 64, Y: -float32(g.YOffset) / 64}
		}
	}
	run.Offsets = offsets
}
