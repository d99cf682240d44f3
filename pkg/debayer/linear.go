package debayer

// demosaicLinear averages the nearest same-channel neighbors for each
// missing channel: the four orthogonal greens at a red or blue site, the
// two axis neighbors for red or blue at a green site, and the four
// diagonals for the opposite color. Neighbors beyond the grid clamp to
// the nearest edge sample, keeping every denominator constant.
func demosaicLinear(raw *RawImage, cfa CFA, dst *Raster) error {
	w, h := dst.w, dst.h
	px := func(x, y int) int {
		return raw.SampleAt(clampCoord(x, w), clampCoord(y, h))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			own := cfa.ChannelAt(x, y)
			var out [3]uint16
			out[own] = uint16(raw.SampleAt(x, y))

			for ch := Red; ch <= Blue; ch++ {
				if ch == own {
					continue
				}
				offs := cfa.NeighborOffsets(x, y, ch)
				sum := 0
				for _, o := range offs {
					sum += px(x+o.DX, y+o.DY)
				}
				out[ch] = uint16(sum / len(offs))
			}

			if err := dst.SetPixel(y, x, out[Red], out[Green], out[Blue]); err != nil {
				return err
			}
		}
	}
	return nil
}

// clampCoord clamps v to [0, n).
func clampCoord(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
