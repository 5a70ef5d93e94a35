// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/cleartype/mask"
)

// bitmap builds a w x h bitmap with every pixel set to bgr.
func bitmap(w, h int, bgr [3]byte) *mask.Bitmap {
	bm := &mask.Bitmap{
		Pix:         make([]byte, w*h*4),
		PixelFormat: gputypes.TextureFormatBGRA8Unorm,
		Width:       w,
		Height:      h,
		Stride:      w * 4,
	}
	for i := 0; i < len(bm.Pix); i += 4 {
		bm.Pix[i], bm.Pix[i+1], bm.Pix[i+2], bm.Pix[i+3] = bgr[0], bgr[1], bgr[2], 0xFF
	}
	return bm
}

func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestNewImageNil(t *testing.T) {
	if _, err := NewImage(nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("NewImage(nil) error = %v, want ErrNilDestination", err)
	}
}

func TestImageCompositePlacement(t *testing.T) {
	dst := filled(8, 8, color.RGBA{R: 0xFF, A: 0xFF})
	c, err := NewImage(dst)
	if err != nil {
		t.Fatal(err)
	}
	if c.Destination() != dst {
		t.Error("Destination() does not return dst")
	}

	bm := bitmap(2, 3, [3]byte{0x10, 0x20, 0x30})
	if err := c.Composite(bm, 4, 1, 1); err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	want := color.RGBA{R: 0x30, G: 0x20, B: 0x10, A: 0xFF}
	red := color.RGBA{R: 0xFF, A: 0xFF}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{4, 1, want},
		{5, 3, want},
		{3, 1, red},
		{6, 1, red},
		{4, 0, red},
		{4, 4, red},
	}
	for _, tt := range tests {
		if got := dst.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestImageCompositeClips(t *testing.T) {
	dst := filled(4, 4, color.RGBA{A: 0xFF})
	c, _ := NewImage(dst)

	bm := bitmap(3, 3, [3]byte{0xFF, 0xFF, 0xFF})
	if err := c.Composite(bm, -2, 2, 1); err != nil {
		t.Fatalf("Composite() error = %v", err)
	}
	if got := dst.RGBAAt(0, 2); got.R != 0xFF {
		t.Errorf("visible part not drawn: %v", got)
	}
	if got := dst.RGBAAt(1, 2); got.R != 0 {
		t.Errorf("drew past the bitmap's right edge: %v", got)
	}

	// Entirely outside.
	if err := c.Composite(bm, 10, 10, 1); err != nil {
		t.Errorf("Composite() outside error = %v", err)
	}
}

func TestImageCompositeOpacity(t *testing.T) {
	dst := filled(1, 1, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	c, _ := NewImage(dst)

	if err := c.Composite(bitmap(1, 1, [3]byte{}), 0, 0, 0.5); err != nil {
		t.Fatalf("Composite() error = %v", err)
	}
	got := dst.RGBAAt(0, 0)
	if got.R < 0x7E || got.R > 0x81 || got.A != 0xFF {
		t.Errorf("half-opaque black over white = %v, want about 0x7f gray", got)
	}

	before := dst.RGBAAt(0, 0)
	if err := c.Composite(bitmap(1, 1, [3]byte{}), 0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if dst.RGBAAt(0, 0) != before {
		t.Error("opacity 0 changed the destination")
	}
}

func TestImageCompositeErrors(t *testing.T) {
	c, _ := NewImage(filled(2, 2, color.RGBA{}))
	if err := c.Composite(nil, 0, 0, 1); !errors.Is(err, ErrNilBitmap) {
		t.Errorf("Composite(nil) error = %v, want ErrNilBitmap", err)
	}
	released := bitmap(1, 1, [3]byte{})
	released.Pix = nil
	if err := c.Composite(released, 0, 0, 1); !errors.Is(err, ErrNilBitmap) {
		t.Errorf("Composite(released) error = %v, want ErrNilBitmap", err)
	}
	for _, o := range []float32{-0.1, 1.5, float32(math.NaN())} {
		if err := c.Composite(bitmap(1, 1, [3]byte{}), 0, 0, o); !errors.Is(err, ErrInvalidOpacity) {
			t.Errorf("Composite(opacity %v) error = %v, want ErrInvalidOpacity", o, err)
		}
	}
}

func TestImageCompositeConverted(t *testing.T) {
	bm, err := mask.Convert([]byte{255, 255, 255, 0, 0, 0}, 2, 1, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	defer bm.Release()

	dst := filled(2, 1, color.RGBA{R: 9, G: 9, B: 9, A: 0xFF})
	c, _ := NewImage(dst)
	if err := c.Composite(bm, 0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("full ink = %v, want black", got)
	}
	if got := dst.RGBAAt(1, 0); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("no ink = %v, want white", got)
	}
}

func TestImageRejectsUnknownFormat(t *testing.T) {
	dst := filled(2, 2, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})
	c, _ := NewImage(dst)

	bm := bitmap(1, 1, [3]byte{})
	bm.PixelFormat = gputypes.TextureFormatR8Unorm
	if err := c.Composite(bm, 0, 0, 1); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Composite() error = %v, want ErrUnsupportedFormat", err)
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}) {
		t.Errorf("destination changed to %v", got)
	}
}
