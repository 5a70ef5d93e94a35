// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/cleartype/internal/logging"
	"github.com/gogpu/cleartype/mask"
)

// Image composites bitmaps onto a draw.Image.
//
// Image is NOT safe for concurrent use unless the destination is.
type Image struct {
	dst draw.Image
}

// NewImage creates a compositor drawing onto dst.
func NewImage(dst draw.Image) (*Image, error) {
	if dst == nil {
		return nil, ErrNilDestination
	}
	return &Image{dst: dst}, nil
}

// Destination returns the image being drawn onto.
func (c *Image) Destination() draw.Image { return c.dst }

// Composite draws bm with its top-left corner at (x, y). Pixels outside the
// destination are clipped. Opacity below 1 blends the bitmap over what is
// already there.
func (c *Image) Composite(bm *mask.Bitmap, x, y int, opacity float32) error {
	if bm == nil || bm.Pix == nil {
		return ErrNilBitmap
	}
	if err := checkOpacity(opacity); err != nil {
		return err
	}
	if opacity == 0 {
		return nil
	}

	pix, err := rgbaPixels(bm)
	if err != nil {
		return err
	}
	src := &image.RGBA{Pix: pix, Stride: bm.Stride, Rect: bm.Bounds()}
	r := bm.Bounds().Add(image.Pt(x, y))

	if opacity == 1 {
		draw.Draw(c.dst, r, src, image.Point{}, draw.Src)
	} else {
		m := image.NewUniform(color.Alpha{A: uint8(opacity*255 + 0.5)})
		draw.DrawMask(c.dst, r, src, image.Point{}, m, image.Point{}, draw.Over)
	}

	logging.Logger().Debug("compositor: drew bitmap",
		"x", x, "y", y, "width", bm.Width, "height", bm.Height, "opacity", opacity)
	return nil
}

// rgbaPixels returns bm's pixels in R, G, B, A order. BGRA bitmaps are
// swizzled into a copy; RGBA bitmaps are returned as is.
func rgbaPixels(bm *mask.Bitmap) ([]byte, error) {
	switch f := bm.Format(); f {
	case gputypes.TextureFormatBGRA8Unorm:
		return bm.RGBA(), nil
	case gputypes.TextureFormatRGBA8Unorm:
		return bm.Pix, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

func checkOpacity(opacity float32) error {
	if math.IsNaN(float64(opacity)) || opacity < 0 || opacity > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidOpacity, opacity)
	}
	return nil
}
