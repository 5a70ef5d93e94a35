package coverage

// lcdWeights is FreeType's default 5-tap LCD filter. The taps sum to 256.
var lcdWeights = [5]uint32{0x08, 0x4D, 0x56, 0x4D, 0x08}

// filterRow applies the LCD filter to one row of subpixel coverage, writing
// into dst. len(dst) must equal len(src).
func filterRow(dst, src []byte) {
	n := len(src)
	for i := 0; i < n; i++ {
		var sum uint32
		for k, w := range lcdWeights {
			j := i + k - 2
			if j < 0 || j >= n {
				continue
			}
			sum += w * uint32(src[j])
		}
		v := (sum + 128) >> 8
		if v > 255 {
			v = 255
		}
		dst[i] = byte(v)
	}
}
