// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// mockTexture implements the texture interfaces for testing.
type mockTexture struct {
	width, height int
	data          []byte
	premultiplied bool
	destroyed     bool
}

func (m *mockTexture) Width() int              { return m.width }
func (m *mockTexture) Height() int             { return m.height }
func (m *mockTexture) Destroy()                { m.destroyed = true }
func (m *mockTexture) SetPremultiplied(p bool) { m.premultiplied = p }

// mockCreator implements gpucontext.TextureCreator for testing.
type mockCreator struct {
	textures []*mockTexture
	err      error
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.err != nil {
		return nil, m.err
	}
	tex := &mockTexture{width: width, height: height, data: append([]byte(nil), data...)}
	m.textures = append(m.textures, tex)
	return tex, nil
}

type drawCall struct {
	tex  gpucontext.Texture
	x, y float32
}

// mockDrawer implements gpucontext.TextureDrawer for testing.
type mockDrawer struct {
	creator *mockCreator
	calls   []drawCall
	err     error
}

func (m *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.calls = append(m.calls, drawCall{tex: tex, x: x, y: y})
	return m.err
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator {
	if m.creator == nil {
		return nil
	}
	return m.creator
}

func newMockDrawer() *mockDrawer {
	return &mockDrawer{creator: &mockCreator{}}
}

func TestNewTextureNil(t *testing.T) {
	if _, err := NewTexture(nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("NewTexture(nil) error = %v, want ErrNilDestination", err)
	}
}

func TestTextureCompositeSwizzles(t *testing.T) {
	d := newMockDrawer()
	c, err := NewTexture(d)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Composite(bitmap(2, 1, [3]byte{0x10, 0x20, 0x30}), 7, -3, 1); err != nil {
		t.Fatalf("Composite() error = %v", err)
	}
	if len(d.creator.textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(d.creator.textures))
	}
	tex := d.creator.textures[0]
	if tex.width != 2 || tex.height != 1 {
		t.Errorf("texture %dx%d, want 2x1", tex.width, tex.height)
	}
	want := []byte{0x30, 0x20, 0x10, 0xFF, 0x30, 0x20, 0x10, 0xFF}
	for i := range want {
		if tex.data[i] != want[i] {
			t.Fatalf("uploaded % x, want % x", tex.data, want)
		}
	}
	if !tex.premultiplied {
		t.Error("texture not marked premultiplied")
	}

	if len(d.calls) != 1 || d.calls[0].x != 7 || d.calls[0].y != -3 || d.calls[0].tex != tex {
		t.Errorf("draw calls = %+v", d.calls)
	}
}

func TestTextureCompositeFormats(t *testing.T) {
	tests := []struct {
		name   string
		format gputypes.TextureFormat
		want   []byte
		err    error
	}{
		{"bgra", gputypes.TextureFormatBGRA8Unorm, []byte{0x30, 0x20, 0x10, 0xFF}, nil},
		{"rgba", gputypes.TextureFormatRGBA8Unorm, []byte{0x10, 0x20, 0x30, 0xFF}, nil},
		{"r8", gputypes.TextureFormatR8Unorm, nil, ErrUnsupportedFormat},
		{"undefined", gputypes.TextureFormatUndefined, nil, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newMockDrawer()
			c, _ := NewTexture(d)
			bm := bitmap(1, 1, [3]byte{0x10, 0x20, 0x30})
			bm.PixelFormat = tt.format

			err := c.Composite(bm, 0, 0, 1)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Composite() error = %v, want %v", err, tt.err)
				}
				if len(d.creator.textures) != 0 || len(d.calls) != 0 {
					t.Error("texture created or drawn for a rejected format")
				}
				if c.Pending() != 0 {
					t.Errorf("Pending() = %d, want 0", c.Pending())
				}
				return
			}
			if err != nil {
				t.Fatalf("Composite() error = %v", err)
			}
			got := d.creator.textures[0].data
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("uploaded % x, want % x", got, tt.want)
				}
			}
		})
	}
}

func TestTextureDeferredDestroy(t *testing.T) {
	d := newMockDrawer()
	c, _ := NewTexture(d)

	for i := 0; i < 3; i++ {
		if err := c.Composite(bitmap(1, 1, [3]byte{}), i, 0, 1); err != nil {
			t.Fatal(err)
		}
	}
	if c.Pending() != 3 {
		t.Fatalf("Pending() = %d, want 3", c.Pending())
	}
	for _, tex := range d.creator.textures {
		if tex.destroyed {
			t.Fatal("texture destroyed before EndFrame")
		}
	}

	c.EndFrame()
	if c.Pending() != 0 {
		t.Errorf("Pending() after EndFrame = %d", c.Pending())
	}
	for i, tex := range d.creator.textures {
		if !tex.destroyed {
			t.Errorf("texture %d not destroyed by EndFrame", i)
		}
	}
}

func TestTextureOpacity(t *testing.T) {
	d := newMockDrawer()
	c, _ := NewTexture(d)
	if err := c.Composite(bitmap(1, 1, [3]byte{}), 0, 0, 0.5); !errors.Is(err, ErrUnsupportedOpacity) {
		t.Errorf("Composite(0.5) error = %v, want ErrUnsupportedOpacity", err)
	}
	if err := c.Composite(bitmap(1, 1, [3]byte{}), 0, 0, 2); !errors.Is(err, ErrInvalidOpacity) {
		t.Errorf("Composite(2) error = %v, want ErrInvalidOpacity", err)
	}
	if len(d.creator.textures) != 0 {
		t.Error("texture created for a rejected composite")
	}
}

func TestTextureErrors(t *testing.T) {
	c, _ := NewTexture(&mockDrawer{})
	if err := c.Composite(bitmap(1, 1, [3]byte{}), 0, 0, 1); !errors.Is(err, ErrNoTextureCreator) {
		t.Errorf("no creator error = %v, want ErrNoTextureCreator", err)
	}
	if err := c.Composite(nil, 0, 0, 1); !errors.Is(err, ErrNilBitmap) {
		t.Errorf("nil bitmap error = %v, want ErrNilBitmap", err)
	}

	boom := errors.New("out of memory")
	d := &mockDrawer{creator: &mockCreator{err: boom}}
	c, _ = NewTexture(d)
	if err := c.Composite(bitmap(1, 1, [3]byte{}), 0, 0, 1); !errors.Is(err, boom) {
		t.Errorf("creation error = %v, want wrapped %v", err, boom)
	}

	lost := errors.New("surface lost")
	d = newMockDrawer()
	d.err = lost
	c, _ = NewTexture(d)
	if err := c.Composite(bitmap(1, 1, [3]byte{}), 0, 0, 1); !errors.Is(err, lost) {
		t.Errorf("draw error = %v, want wrapped %v", err, lost)
	}
	if c.Pending() != 1 {
		t.Error("texture from a failed draw is not kept for EndFrame")
	}
}

func TestTextureClose(t *testing.T) {
	d := newMockDrawer()
	c, _ := NewTexture(d)
	if err := c.Composite(bitmap(1, 1, [3]byte{}), 0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !d.creator.textures[0].destroyed {
		t.Error("Close did not destroy pending textures")
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := c.Composite(bitmap(1, 1, [3]byte{}), 0, 0, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("Composite after Close error = %v, want ErrClosed", err)
	}
}
