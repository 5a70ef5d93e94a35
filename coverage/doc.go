// Package coverage is the boundary to the glyph rasterizer.
//
// A Sampler answers two questions about a GlyphRun: where it paints
// (Bounds) and how much of each subpixel it covers (Coverage). Everything
// downstream of a Sampler works on the resulting Buffer only, at a fixed
// scale of one device-independent pixel; magnification is applied to the
// GlyphRun beforehand with Scaled.
//
// OutlineSampler is the bundled Sampler. It loads glyph outlines with
// golang.org/x/image/font/sfnt and rasterizes them at three times the
// horizontal resolution with golang.org/x/image/vector, so each output
// pixel carries separate red, green and blue coverage.
package coverage
