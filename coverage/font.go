package coverage

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("coverage: empty font data")

// Font is a parsed TrueType or OpenType font. It keeps the raw data so a
// shaper can parse the same bytes.
//
// Font is safe for concurrent use; every query allocates its own
// sfnt.Buffer.
type Font struct {
	sf   *sfnt.Font
	data []byte
	name string
}

// ParseFont parses TrueType or OpenType data. data must not be modified
// afterwards.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("coverage: failed to parse font: %w", err)
	}
	name, _ := f.Name(nil, sfnt.NameIDFamily)
	return &Font{sf: f, data: data, name: name}, nil
}

// Name returns the font family name, or "".
func (f *Font) Name() string { return f.name }

// Data returns the raw font bytes. Callers must not modify them.
func (f *Font) Data() []byte { return f.data }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.sf.NumGlyphs() }

// GlyphIndex maps r to a glyph index, 0 (.notdef) when absent.
func (f *Font) GlyphIndex(r rune) GlyphIndex {
	var b sfnt.Buffer
	idx, err := f.sf.GlyphIndex(&b, r)
	if err != nil {
		return 0
	}
	return GlyphIndex(idx)
}

// Advance returns the advance width of g at emSize pixels per em. With
// hinting it is rounded to whole pixels the way GDI measures.
func (f *Font) Advance(g GlyphIndex, emSize float32, hinting font.Hinting) float32 {
	var b sfnt.Buffer
	adv, err := f.sf.GlyphAdvance(&b, sfnt.GlyphIndex(g), toFixed(emSize), hinting)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

// outline loads g's segments at emSize. The segments are only valid until
// b is reused.
func (f *Font) outline(b *sfnt.Buffer, g GlyphIndex, emSize float32) (sfnt.Segments, error) {
	segs, err := f.sf.LoadGlyph(b, sfnt.GlyphIndex(g), toFixed(emSize), nil)
	if err != nil {
		return nil, fmt.Errorf("coverage: glyph %d: %w", g, err)
	}
	return segs, nil
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
