package mask

import (
	"github.com/gogpu/cleartype/gamma"
	"github.com/gogpu/cleartype/internal/logging"
)

// Convert turns an R, G, B coverage buffer into a BGRA bitmap.
//
// Each of the three source bytes is processed on its own: corrected through
// the matching lut channel when lut is non-nil, truncated to 5 bits when
// quantize is set, then blended as ink over paper. The results land in B,
// G, R order with alpha 0xFF.
func Convert(src []byte, width, height int, lut *gamma.Table, quantize bool) (*Bitmap, error) {
	if err := checkSource(src, width, height); err != nil {
		return nil, err
	}
	dst, err := newBitmap(width, height)
	if err != nil {
		return nil, err
	}

	var curveR, curveG, curveB *[256]uint8
	if lut != nil {
		curveR, curveG, curveB = &lut.R, &lut.G, &lut.B
	}
	tr := channelTable(curveR, quantize)
	tg := channelTable(curveG, quantize)
	tb := channelTable(curveB, quantize)

	n := width * height
	s := src[:n*SourceBytesPerPixel]
	d := dst.Pix
	for i := 0; i < n; i++ {
		si := i * SourceBytesPerPixel
		di := i * BytesPerPixel
		px := d[di : di+4 : di+4]
		px[0] = tb[s[si+2]]
		px[1] = tg[s[si+1]]
		px[2] = tr[s[si]]
		px[3] = 0xFF
	}

	logging.Logger().Debug("mask: converted",
		"width", width, "height", height, "lut", lut != nil, "quantize", quantize)
	return dst, nil
}
