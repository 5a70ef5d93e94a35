package mask

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/cleartype/internal/pixbuf"
)

// Bitmap is a premultiplied 8-bit image produced by Convert or Grayscale.
//
// A Bitmap is owned by one caller at a time. Once handed to a compositor and
// drawn, Release returns its storage for reuse; the Bitmap must not be used
// afterwards.
type Bitmap struct {
	// Pix holds the pixels row-major, channels ordered by PixelFormat.
	Pix []byte

	// PixelFormat is the channel order of Pix. Converters always produce
	// gputypes.TextureFormatBGRA8Unorm.
	PixelFormat gputypes.TextureFormat

	// Width and Height are the dimensions in pixels.
	Width, Height int

	// Stride is the byte distance between rows, always Width*4.
	Stride int
}

// newBitmap allocates a bitmap from the buffer pool. The pixels are not
// cleared: every converter writes each byte exactly once.
func newBitmap(width, height int) (*Bitmap, error) {
	n, err := pixbuf.Size(width, height, BytesPerPixel)
	if err != nil {
		return nil, err
	}
	pix, err := pixbuf.Get(n, 0)
	if err != nil {
		return nil, err
	}
	return &Bitmap{
		Pix:         pix,
		PixelFormat: gputypes.TextureFormatBGRA8Unorm,
		Width:       width,
		Height:      height,
		Stride:      width * BytesPerPixel,
	}, nil
}

// Format returns the GPU texture format matching the pixel layout.
func (b *Bitmap) Format() gputypes.TextureFormat {
	return b.PixelFormat
}

// Premultiplied reports whether color channels are scaled by alpha. Always true.
func (b *Bitmap) Premultiplied() bool { return true }

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	return b.RGBAAt(x, y)
}

// RGBAAt returns the pixel at (x, y), or transparent outside the bitmap.
func (b *Bitmap) RGBAAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return color.RGBA{}
	}
	o := y*b.Stride + x*BytesPerPixel
	p := b.Pix[o : o+4 : o+4]
	if b.PixelFormat == gputypes.TextureFormatRGBA8Unorm {
		return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	return color.RGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
}

// RGBA returns a copy of the pixels in R, G, B, A order, for consumers that
// only accept RGBA uploads.
func (b *Bitmap) RGBA() []byte {
	out := make([]byte, len(b.Pix))
	if b.PixelFormat == gputypes.TextureFormatRGBA8Unorm {
		copy(out, b.Pix)
		return out
	}
	for i := 0; i+3 < len(b.Pix); i += BytesPerPixel {
		out[i] = b.Pix[i+2]
		out[i+1] = b.Pix[i+1]
		out[i+2] = b.Pix[i]
		out[i+3] = b.Pix[i+3]
	}
	return out
}

// Release returns the pixel storage to the pool.
func (b *Bitmap) Release() {
	if b == nil || b.Pix == nil {
		return
	}
	pixbuf.Put(b.Pix)
	b.Pix = nil
}
