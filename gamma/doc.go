// Package gamma builds the per-channel correction tables applied to
// subpixel coverage before it is blended.
//
// A Table maps raw coverage (0..255) to corrected coverage for each of the
// red, green and blue channels. Tables follow Skia's mask-gamma pre-blend:
// coverage is sharpened by a contrast term, blended in linear light toward
// the background luminance, and re-encoded with the device gamma. The
// result lets a plain linear blend of the corrected coverage reproduce a
// gamma-correct composite.
//
// Tables are 768-byte values. Build them once, share them by pointer and
// never write to them afterwards; Lookup does this for you.
//
//	lut := gamma.Lookup(gamma.StandardParams())
//	corrected := lut.Apply(gamma.Green, 128)
package gamma
