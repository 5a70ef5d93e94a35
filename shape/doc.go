// Package shape turns text into coverage.GlyphRun values using HarfBuzz
// shaping from go-text/typesetting.
//
// The shaper resolves ligatures, kerning and mark positioning; the result
// is positioned along a single baseline and is ready for a
// coverage.Sampler:
//
//	s := shape.New()
//	run, err := s.Shape(f, "Hello", 16, coverage.Point{X: 4, Y: 20})
//
// Text is normalized to NFC before shaping. Runs are single-line and
// single-font; line breaking and font fallback belong to the caller.
package shape
