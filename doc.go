// Package cleartype converts subpixel text coverage into premultiplied BGRA
// bitmaps whose pixels match Skia's mask-gamma pre-blend.
//
// # Overview
//
// A glyph run is rasterized by a coverage.Sampler into three coverage bytes
// per pixel, one per LCD stripe. A RenderProfile then chooses how those
// bytes become color:
//
//   - ClearType: per-channel gamma correction, 5-bit quantization, ink over
//     paper blend, written as B, G, R, 0xFF.
//   - GDIClassic: the same conversion with the GDI-compatible gamma table
//     and whole-pixel glyph placement.
//   - Grayscale: one coverage value per pixel replicated into all three
//     color channels.
//
// The finished bitmap is handed to a Compositor at the run's device
// position.
//
// # Quick Start
//
//	f, _ := coverage.ParseFont(goregular.TTF)
//	run, _ := shape.New().Shape(f, "Hello", 16, coverage.Point{Y: 16})
//
//	r := cleartype.NewRenderer(coverage.NewOutlineSampler(),
//	    cleartype.WithProfile(cleartype.ClearType()))
//
//	dst := image.NewRGBA(image.Rect(0, 0, 200, 40))
//	c, _ := compositor.NewImage(dst)
//	err := r.Draw(c, run, 0, 0)
//
// # Architecture
//
// The library is organized into:
//   - gamma: correction tables, presets and a shared table cache
//   - coverage: the Sampler contract and an outline-based sampler
//   - shape: text to glyph runs via HarfBuzz shaping
//   - mask: coverage to BGRA conversion and grayscale reduction
//   - compositor: draw.Image and GPU texture destinations
//
// # Logging
//
// cleartype is silent by default. SetLogger enables structured logging for
// every sub-package.
package cleartype
