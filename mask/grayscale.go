package mask

import (
	"log/slog"

	"github.com/gogpu/cleartype/gamma"
	"github.com/gogpu/cleartype/internal/logging"
)

// Grayscale reduces an R, G, B coverage buffer to a single intensity per
// pixel and replicates it into B, G and R with alpha 0xFF.
//
// The intensity is the red subpixel corrected through the green lut
// channel, matching Skia's grayscale fallback byte for byte. A nil lut
// skips correction.
func Grayscale(src []byte, width, height int, lut *gamma.Table) (*Bitmap, error) {
	if err := checkSource(src, width, height); err != nil {
		return nil, err
	}
	dst, err := newBitmap(width, height)
	if err != nil {
		return nil, err
	}

	var curve *[256]uint8
	if lut != nil {
		curve = lut.Channel(gamma.Green)
	}
	t := channelTable(curve, false)

	// The true average is only gathered for the debug log.
	diag := logging.Enabled(slog.LevelDebug)
	var sumAvg, sumRed uint64

	n := width * height
	s := src[:n*SourceBytesPerPixel]
	d := dst.Pix
	for i := 0; i < n; i++ {
		si := i * SourceBytesPerPixel
		r := s[si]
		if diag {
			sumAvg += uint64(Average(r, s[si+1], s[si+2]))
			sumRed += uint64(r)
		}
		v := t[r]
		di := i * BytesPerPixel
		px := d[di : di+4 : di+4]
		px[0] = v
		px[1] = v
		px[2] = v
		px[3] = 0xFF
	}

	if diag {
		logging.Logger().Debug("mask: grayscale converted",
			"width", width, "height", height,
			"mean_red", float64(sumRed)/float64(n),
			"mean_average", float64(sumAvg)/float64(n))
	}
	return dst, nil
}
