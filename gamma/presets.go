package gamma

import (
	"image/color"

	"github.com/gogpu/cleartype/internal/cache"
)

const (
	// StandardGamma is the paint and device gamma of the standard profile.
	StandardGamma = 1.8

	// GDIGamma is the paint and device gamma of the GDI-compatible profile.
	GDIGamma = 2.3

	// DefaultContrastLevel is the font-smoothing contrast preference, in
	// thousandths, assumed when the host does not report one.
	DefaultContrastLevel = 1400
)

// black is the pre-blend background. Text is always pre-blended against a
// black luminance color.
var black = color.RGBA{A: 0xFF}

// StandardParams returns the parameters of the standard profile.
func StandardParams() Params {
	return Params{
		Contrast:    1,
		PaintGamma:  StandardGamma,
		DeviceGamma: StandardGamma,
		Background:  black,
	}
}

// GDIParams returns the parameters of the GDI-compatible profile. The gamma
// is fixed; hosts that want their font-smoothing contrast preference to
// drive the curve use GDIParamsFromLevel.
func GDIParams() Params {
	return Params{
		Contrast:    1,
		PaintGamma:  GDIGamma,
		DeviceGamma: GDIGamma,
		Background:  black,
	}
}

// GDIParamsFromLevel returns GDI-compatible parameters whose paint and
// device gamma are derived from the contrast preference.
func GDIParamsFromLevel(level int) Params {
	g := GammaForContrastLevel(level)
	return Params{
		Contrast:    1,
		PaintGamma:  g,
		DeviceGamma: g,
		Background:  black,
	}
}

// ContrastLevel returns level, or DefaultContrastLevel when level is not a
// usable preference.
func ContrastLevel(level int) int {
	if level <= 0 {
		return DefaultContrastLevel
	}
	return level
}

// GammaForContrastLevel converts a contrast preference in thousandths to a
// gamma value.
func GammaForContrastLevel(level int) float32 {
	return float32(ContrastLevel(level)) / 1000
}

// Standard builds the standard table.
func Standard() Table { return Build(StandardParams()) }

// GDICompatible builds the GDI-compatible table.
func GDICompatible() Table { return Build(GDIParams()) }

// tables caches built tables by normalized parameters.
var tables = cache.New[Params, *Table](32)

// Lookup returns the shared table for p, building it on first use.
// The returned table must not be modified.
func Lookup(p Params) *Table {
	key := p.normalized()
	return tables.GetOrCreate(key, func() *Table {
		t := Build(key)
		return &t
	})
}

// CacheStats reports how many tables Lookup holds and how many lookups
// were served from the cache or had to build a table.
func CacheStats() (n int, hits, misses uint64) {
	st := tables.Stats()
	return st.Len, st.Hits, st.Misses
}
