package gamma

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/cleartype/internal/logging"
)

// Channel selects one of the three subpixel channels.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
}

// Table holds one 256-entry correction curve per channel.
type Table struct {
	R, G, B [256]uint8
}

// Channel returns the curve for ch. Unknown channels fall back to green,
// the luminance-dominant curve.
func (t *Table) Channel(ch Channel) *[256]uint8 {
	switch ch {
	case Red:
		return &t.R
	case Blue:
		return &t.B
	default:
		return &t.G
	}
}

// Apply returns the corrected value of v on channel ch.
func (t *Table) Apply(ch Channel, v uint8) uint8 {
	return t.Channel(ch)[v]
}

// IsMonotonic reports whether every channel is non-decreasing.
func (t *Table) IsMonotonic() bool {
	for _, curve := range []*[256]uint8{&t.R, &t.G, &t.B} {
		for i := 1; i < 256; i++ {
			if curve[i] < curve[i-1] {
				return false
			}
		}
	}
	return true
}

// Identity returns a table that leaves every value unchanged.
func Identity() Table {
	var t Table
	for i := 0; i < 256; i++ {
		t.R[i] = uint8(i)
		t.G[i] = uint8(i)
		t.B[i] = uint8(i)
	}
	return t
}

// Params describes a correction profile.
type Params struct {
	// Contrast sharpens coverage before blending. Clamped to [0, 1].
	Contrast float32

	// PaintGamma decodes the background luminance to linear light.
	PaintGamma float32

	// DeviceGamma encodes the blended result back for the display.
	DeviceGamma float32

	// Background is the luminance color the text is pre-blended against.
	// Only the top lumBits of each channel matter.
	Background color.RGBA
}

// MinGamma is the smallest gamma Build accepts; smaller values are raised
// to it so the power curves stay finite.
const MinGamma = 1.0 / 64

// lumBits is the number of background luminance bits per channel; tables
// exist for 1<<lumBits distinct levels.
const lumBits = 3

func (p Params) String() string {
	return fmt.Sprintf("contrast=%g paint=%g device=%g bg=#%02x%02x%02x",
		p.Contrast, p.PaintGamma, p.DeviceGamma, p.Background.R, p.Background.G, p.Background.B)
}

// normalized returns p with every field in its valid range, and the
// background reduced to its luminance levels, so equal tables share a key.
func (p Params) normalized() Params {
	p.Contrast = clamp01(finiteOr(p.Contrast, 0))
	p.PaintGamma = clampGamma(p.PaintGamma)
	p.DeviceGamma = clampGamma(p.DeviceGamma)
	p.Background = color.RGBA{
		R: lumLevel(p.Background.R),
		G: lumLevel(p.Background.G),
		B: lumLevel(p.Background.B),
		A: 0xFF,
	}
	return p
}

// Build computes the table for p. It never fails: out-of-range inputs are
// clamped.
func Build(p Params) Table {
	p = p.normalized()

	var t Table
	buildCurve(&t.R, p.Background.R, p)
	buildCurve(&t.G, p.Background.G, p)
	buildCurve(&t.B, p.Background.B, p)

	logging.Logger().Debug("gamma: table built", "params", p.String())
	return t
}

// buildCurve fills table with the correcting curve for background level lum.
func buildCurve(table *[256]uint8, lum uint8, p Params) {
	src := float32(lum) / 255
	linSrc := toLinear(src, p.PaintGamma)
	dst := 1 - src
	linDst := toLinear(dst, p.DeviceGamma)

	// Contrast fades out as the background approaches white.
	contrast := p.Contrast * linDst

	// Close to src == dst the division below is unstable; keep the
	// sharpened coverage as is.
	if abs32(src-dst) < 1.0/256 {
		for i := 0; i < 256; i++ {
			srca := applyContrast(float32(i)/255, contrast)
			table[i] = round255(srca)
		}
		return
	}

	for i := 0; i < 256; i++ {
		// Divide instead of accumulating 1/255 steps: the running sum
		// overshoots 1.0 and table[255] wraps to 0.
		srca := applyContrast(float32(i)/255, contrast)
		dsta := 1 - srca

		linOut := linSrc*srca + dsta*linDst
		out := fromLinear(linOut, p.DeviceGamma)

		// Undo the linear blend the caller will perform.
		table[i] = round255((out - dst) / (src - dst))
	}
}

// applyContrast sharpens coverage a: a + (1-a)*c*a.
func applyContrast(a, c float32) float32 {
	return a + (1-a)*c*a
}

func toLinear(v, g float32) float32 {
	return float32(math.Pow(float64(v), float64(g)))
}

func fromLinear(v, g float32) float32 {
	if v <= 0 {
		return 0
	}
	return float32(math.Pow(float64(v), 1/float64(g)))
}

// lumLevel reduces an 8-bit channel to lumBits and expands it back to 8 bits
// by bit replication.
func lumLevel(c uint8) uint8 {
	i := c >> (8 - lumBits)
	return i<<5 | i<<2 | i>>1
}

func round255(v float32) uint8 {
	r := math.Floor(float64(v)*255 + 0.5)
	switch {
	case r < 0:
		return 0
	case r > 255:
		return 255
	default:
		return uint8(r)
	}
}

func clampGamma(g float32) float32 {
	g = finiteOr(g, 1)
	if g < MinGamma {
		return MinGamma
	}
	return g
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func finiteOr(v, fallback float32) float32 {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return v
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
