// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/cleartype/internal/logging"
	"github.com/gogpu/cleartype/mask"
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// premultipliedSetter is implemented by textures that select a blend
// pipeline from the alpha convention.
type premultipliedSetter interface {
	SetPremultiplied(bool)
}

// Texture composites bitmaps by uploading them as GPU textures.
//
// Each Composite creates a texture. The GPU may still read it after
// DrawTexture returns, so textures are kept until EndFrame, which the host
// calls once the frame has been submitted.
//
// Texture is NOT safe for concurrent use.
type Texture struct {
	drawer  gpucontext.TextureDrawer
	pending []gpucontext.Texture
	closed  bool
}

// NewTexture creates a compositor drawing through d.
func NewTexture(d gpucontext.TextureDrawer) (*Texture, error) {
	if d == nil {
		return nil, ErrNilDestination
	}
	return &Texture{drawer: d}, nil
}

// Composite uploads bm and draws it at (x, y). Only opacity 1 is supported;
// gpucontext.TextureDrawer carries no alpha.
func (c *Texture) Composite(bm *mask.Bitmap, x, y int, opacity float32) error {
	if c.closed {
		return ErrClosed
	}
	if bm == nil || bm.Pix == nil {
		return ErrNilBitmap
	}
	if err := checkOpacity(opacity); err != nil {
		return err
	}
	if opacity != 1 {
		return fmt.Errorf("%w: got %v", ErrUnsupportedOpacity, opacity)
	}

	creator := c.drawer.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}
	// TextureCreator only accepts RGBA uploads.
	pix, err := rgbaPixels(bm)
	if err != nil {
		return err
	}
	tex, err := creator.NewTextureFromRGBA(bm.Width, bm.Height, pix)
	if err != nil {
		return fmt.Errorf("compositor: NewTextureFromRGBA failed: %w", err)
	}
	if ps, ok := tex.(premultipliedSetter); ok {
		ps.SetPremultiplied(bm.Premultiplied())
	}
	c.pending = append(c.pending, tex)

	if err := c.drawer.DrawTexture(tex, float32(x), float32(y)); err != nil {
		return fmt.Errorf("compositor: DrawTexture failed: %w", err)
	}
	return nil
}

// Pending returns the number of textures awaiting EndFrame.
func (c *Texture) Pending() int { return len(c.pending) }

// EndFrame destroys the textures created since the previous EndFrame.
func (c *Texture) EndFrame() {
	for _, tex := range c.pending {
		if d, ok := tex.(textureDestroyer); ok {
			d.Destroy()
		}
	}
	if len(c.pending) > 0 {
		logging.Logger().Debug("compositor: released textures", "count", len(c.pending))
	}
	clear(c.pending)
	c.pending = c.pending[:0]
}

// Close releases all textures. Close is idempotent.
func (c *Texture) Close() error {
	if c.closed {
		return nil
	}
	c.EndFrame()
	c.closed = true
	c.drawer = nil
	return nil
}
