package debayer

// tilePartner returns the coordinate paired with v inside its 2x2 CFA
// tile, flipping direction when the partner would leave [0, n). The flip
// keeps the partner on the opposite parity, so it still carries the other
// filter color for any extent of at least 2.
func tilePartner(v, n int) int {
	p := v + 1
	if v&1 == 1 || p >= n {
		p = v - 1
	}
	if p < 0 {
		p = 0
	}
	return p
}

// demosaicNearest copies each missing channel from the closest raw sample
// of that channel: the row, column and diagonal partners of the pixel's
// 2x2 tile carry the remaining filter colors between them. The directly
// sampled channel is assigned last so partners never override it.
func demosaicNearest(raw *RawImage, cfa CFA, dst *Raster) error {
	for y := 0; y < dst.h; y++ {
		py := tilePartner(y, dst.h)
		for x := 0; x < dst.w; x++ {
			px := tilePartner(x, dst.w)

			var out [3]uint16
			out[cfa.ChannelAt(px, y)] = uint16(raw.SampleAt(px, y))
			out[cfa.ChannelAt(x, py)] = uint16(raw.SampleAt(x, py))
			out[cfa.ChannelAt(px, py)] = uint16(raw.SampleAt(px, py))
			out[cfa.ChannelAt(x, y)] = uint16(raw.SampleAt(x, y))
			if err := dst.SetPixel(y, x, out[Red], out[Green], out[Blue]); err != nil {
				return err
			}
		}
	}
	return nil
}
