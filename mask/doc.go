// Package mask converts 3-byte-per-pixel subpixel coverage into 4-byte
// premultiplied BGRA bitmaps.
//
// Convert keeps the three subpixel channels independent (ClearType output).
// Grayscale reduces coverage to one intensity per pixel the way Skia's
// non-ClearType fallback does, for bit-exact comparison against it.
//
// Both paths draw black ink over a white background, so more coverage
// yields a darker pixel, and both always produce opaque pixels.
package mask
