package cleartype

import "github.com/gogpu/cleartype/gamma"

// Option configures a Renderer during creation.
//
// Example:
//
//	r := cleartype.NewRenderer(sampler,
//	    cleartype.WithProfile(cleartype.GDIClassic(cleartype.LoadConfig())),
//	    cleartype.WithScale(2))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	profile  Profile
	scale    float32
	table    *gamma.Table
	quantize *bool
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		profile: ClearType(),
		scale:   1,
	}
}

// resolved returns the profile with overrides applied.
func (o options) resolved() Profile {
	p := o.profile
	if o.table != nil {
		p.Table = o.table
	}
	if o.quantize != nil {
		p.Quantize = *o.quantize
	}
	return p
}

// WithProfile sets the conversion profile. The default is ClearType().
func WithProfile(p Profile) Option {
	return func(o *options) {
		o.profile = p
	}
}

// WithGammaTable replaces the profile's gamma table, regardless of option
// order.
func WithGammaTable(t *gamma.Table) Option {
	return func(o *options) {
		o.table = t
	}
}

// WithQuantize overrides the profile's quantization, regardless of option
// order.
func WithQuantize(enabled bool) Option {
	return func(o *options) {
		o.quantize = &enabled
	}
}

// WithScale magnifies every run before sampling. Non-positive factors are
// ignored. The default is 1.
func WithScale(factor float32) Option {
	return func(o *options) {
		if factor > 0 {
			o.scale = factor
		}
	}
}
