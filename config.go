package cleartype

import (
	"errors"
	"os"
	"strconv"

	"github.com/gogpu/cleartype/gamma"
	"github.com/gogpu/cleartype/internal/logging"
)

// ContrastEnv names the environment variable that overrides the host
// font-smoothing contrast preference, in thousandths.
const ContrastEnv = "CLEARTYPE_FONT_SMOOTHING_CONTRAST"

// errNoHostPreference is returned on platforms without a font-smoothing
// contrast setting.
var errNoHostPreference = errors.New("cleartype: host has no font-smoothing contrast preference")

// Config holds host preferences consumed when building profiles.
type Config struct {
	// ContrastLevel is the font-smoothing contrast preference in
	// thousandths, 1000 to 2200 on Windows.
	ContrastLevel int

	// DeriveGDIGamma makes GDIClassic derive its gamma from ContrastLevel
	// instead of using the fixed GDI gamma.
	DeriveGDIGamma bool
}

// DefaultConfig returns the configuration used when the host reports
// nothing.
func DefaultConfig() Config {
	return Config{ContrastLevel: gamma.DefaultContrastLevel}
}

// LoadConfig reads the host preference. ContrastEnv wins when set; otherwise
// the operating system is asked. Any failure falls back to
// gamma.DefaultContrastLevel.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv(ContrastEnv); ok {
		level, err := strconv.Atoi(v)
		if err == nil && level > 0 {
			cfg.ContrastLevel = level
			return cfg
		}
		logging.Logger().Warn("cleartype: ignoring invalid contrast override", "env", ContrastEnv, "value", v)
	}

	level, err := hostContrastLevel()
	switch {
	case err != nil:
		if !errors.Is(err, errNoHostPreference) {
			logging.Logger().Warn("cleartype: font-smoothing contrast unavailable", "err", err)
		}
	case level > 0:
		cfg.ContrastLevel = level
	}
	return cfg
}
