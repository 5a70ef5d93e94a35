package cleartype

import (
	"fmt"

	"github.com/gogpu/cleartype/coverage"
	"github.com/gogpu/cleartype/gamma"
	"github.com/gogpu/cleartype/mask"
)

// RenderProfile selects how coverage becomes color.
type RenderProfile int

const (
	// ProfileClearType converts each stripe with its own gamma curve.
	ProfileClearType RenderProfile = iota

	// ProfileGDIClassic converts like ProfileClearType with the
	// GDI-compatible curve and whole-pixel glyph placement.
	ProfileGDIClassic

	// ProfileGrayscale reduces coverage to one value per pixel.
	ProfileGrayscale
)

// String returns the string representation of the profile.
func (p RenderProfile) String() string {
	switch p {
	case ProfileClearType:
		return "ClearType"
	case ProfileGDIClassic:
		return "GDIClassic"
	case ProfileGrayscale:
		return "Grayscale"
	default:
		return fmt.Sprintf("RenderProfile(%d)", int(p))
	}
}

// Profile is a complete conversion recipe. The zero value is not useful;
// start from ClearType, GDIClassic or Grayscale.
type Profile struct {
	// Kind selects the converter.
	Kind RenderProfile

	// Table is the gamma table applied to coverage. Nil skips correction.
	// Tables from the constructors are shared and must not be modified.
	Table *gamma.Table

	// Quantize drops the three low bits of corrected coverage. Ignored by
	// ProfileGrayscale.
	Quantize bool

	// RenderMode and MeasureMode are passed to the sampler.
	RenderMode  coverage.RenderMode
	MeasureMode coverage.MeasureMode
}

// ClearType returns the standard subpixel profile.
func ClearType() Profile {
	return Profile{
		Kind:        ProfileClearType,
		Table:       gamma.Lookup(gamma.StandardParams()),
		Quantize:    true,
		RenderMode:  coverage.RenderClearTypeNatural,
		MeasureMode: coverage.MeasureNatural,
	}
}

// GDIClassic returns the GDI-compatible subpixel profile. The table uses
// the fixed GDI gamma unless cfg.DeriveGDIGamma is set, in which case the
// gamma follows cfg.ContrastLevel.
func GDIClassic(cfg Config) Profile {
	params := gamma.GDIParams()
	if cfg.DeriveGDIGamma {
		params = gamma.GDIParamsFromLevel(cfg.ContrastLevel)
	}
	return Profile{
		Kind:        ProfileGDIClassic,
		Table:       gamma.Lookup(params),
		Quantize:    true,
		RenderMode:  coverage.RenderGDIClassic,
		MeasureMode: coverage.MeasureNatural,
	}
}

// Grayscale returns the grayscale profile. Coverage is always sampled in
// ClearTypeNatural mode, whatever the size, so the reduced output matches
// Skia's grayscale path.
func Grayscale() Profile {
	return Profile{
		Kind:        ProfileGrayscale,
		Table:       gamma.Lookup(gamma.StandardParams()),
		RenderMode:  coverage.RenderClearTypeNatural,
		MeasureMode: coverage.MeasureNatural,
	}
}

// Convert turns a coverage buffer into a bitmap of the same size.
func (p Profile) Convert(buf *coverage.Buffer) (*mask.Bitmap, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrCoverageMismatch)
	}
	switch p.Kind {
	case ProfileClearType, ProfileGDIClassic:
		return mask.Convert(buf.Pix, buf.Width, buf.Height, p.Table, p.Quantize)
	case ProfileGrayscale:
		return mask.Grayscale(buf.Pix, buf.Width, buf.Height, p.Table)
	default:
		return nil, fmt.Errorf("cleartype: unknown profile %v", p.Kind)
	}
}

func (p Profile) String() string {
	return fmt.Sprintf("%v(render=%v, measure=%v, quantize=%t)", p.Kind, p.RenderMode, p.MeasureMode, p.Quantize)
}
