package mask

const (
	// SourceBytesPerPixel is the size of one coverage pixel (R, G, B).
	SourceBytesPerPixel = 3

	// BytesPerPixel is the size of one output pixel (B, G, R, A).
	BytesPerPixel = 4

	// Ink and Paper are the foreground and background intensities.
	Ink   = 0x00
	Paper = 0xFF
)

// Quantize truncates v to its 5 most significant bits, matching the
// 565-style precision the reference pipeline keeps.
func Quantize(v uint8) uint8 {
	return (v >> 3) << 3
}

// Blend mixes fg over bg with coverage alpha a, rounding to nearest.
func Blend(fg, bg, a uint8) uint8 {
	return uint8((uint32(fg)*uint32(a) + uint32(bg)*uint32(255-a) + 127) / 255)
}

// BlendInk blends black ink over white paper with coverage a:
// 0xFF - round(0xFF * a/255).
func BlendInk(a uint8) uint8 {
	return Blend(Ink, Paper, a)
}

// Average returns the mean of three subpixel coverages, truncated.
func Average(r, g, b uint8) uint8 {
	return uint8((uint16(r) + uint16(g) + uint16(b)) / 3)
}

// channelTable folds the optional LUT curve, quantization and the ink blend
// of one channel into a single lookup.
func channelTable(curve *[256]uint8, quantize bool) *[256]uint8 {
	var t [256]uint8
	for i := 0; i < 256; i++ {
		v := uint8(i)
		if curve != nil {
			v = curve[v]
		}
		if quantize {
			v = Quantize(v)
		}
		t[i] = BlendInk(v)
	}
	return &t
}
