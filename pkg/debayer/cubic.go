package debayer

// demosaicCubic estimates missing channels with a cubic convolution over
// the same-channel footprint, taps at distance 1 and 3 along each axis:
//
//	green at a red/blue site, over 256:
//	      81 * (orthogonal cross at distance 1)
//	    +      (orthogonal cross at distance 3)
//	    -  9 * (the eight samples at (+-1, +-2) and (+-2, +-1))
//
//	red/blue at the opposite color site, over 256:
//	      81 * (diagonals at distance 1)
//	    +      (diagonals at distance 3)
//	    -  9 * (the eight samples at (+-1, +-3) and (+-3, +-1))
//
//	red/blue at a green site, along the axis carrying it, over 16:
//	       9 * (distance 1) - (distance 3)
//
// The weights of each case sum to the divisor, so flat regions pass
// through unchanged. Negative lobes can overshoot near hard edges, so
// intermediate sums clamp to zero and results to the sample maximum.
// Out-of-grid taps clamp to the nearest edge sample.
func demosaicCubic(raw *RawImage, cfa CFA, dst *Raster) error {
	w, h := dst.w, dst.h
	max := raw.depth.MaxValue()
	px := func(x, y int) int {
		return raw.SampleAt(clampCoord(x, w), clampCoord(y, h))
	}
	norm := func(v, div int) uint16 {
		if v < 0 {
			return 0
		}
		v /= div
		if v > max {
			v = max
		}
		return uint16(v)
	}
	axis := func(a1, b1, a3, b3 int) uint16 {
		return norm(9*(a1+b1)-(a3+b3), 16)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			own := cfa.ChannelAt(x, y)
			var out [3]uint16
			out[own] = uint16(raw.SampleAt(x, y))

			if own == Green {
				rowCh := cfa.ChannelAt(x+1, y)
				out[rowCh] = axis(px(x-1, y), px(x+1, y), px(x-3, y), px(x+3, y))
				out[otherColor(rowCh)] = axis(px(x, y-1), px(x, y+1), px(x, y-3), px(x, y+3))
			} else {
				gPos := 81*(px(x, y-1)+px(x-1, y)+px(x+1, y)+px(x, y+1)) +
					(px(x, y-3) + px(x-3, y) + px(x+3, y) + px(x, y+3))
				gNeg := 9 * (px(x-1, y-2) + px(x+1, y-2) +
					px(x-2, y-1) + px(x+2, y-1) +
					px(x-2, y+1) + px(x+2, y+1) +
					px(x-1, y+2) + px(x+1, y+2))
				out[Green] = norm(gPos-gNeg, 256)

				dPos := 81*(px(x-1, y-1)+px(x+1, y-1)+px(x-1, y+1)+px(x+1, y+1)) +
					(px(x-3, y-3) + px(x+3, y-3) + px(x-3, y+3) + px(x+3, y+3))
				dNeg := 9 * (px(x-1, y-3) + px(x+1, y-3) +
					px(x-3, y-1) + px(x+3, y-1) +
					px(x-3, y+1) + px(x+3, y+1) +
					px(x-1, y+3) + px(x+1, y+3))
				out[otherColor(own)] = norm(dPos-dNeg, 256)
			}

			if err := dst.SetPixel(y, x, out[Red], out[Green], out[Blue]); err != nil {
				return err
			}
		}
	}
	return nil
}

// otherColor maps red to blue and blue to red.
func otherColor(ch Channel) Channel {
	if ch == Red {
		return Blue
	}
	return Red
}
