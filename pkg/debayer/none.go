package debayer

// demosaicNone writes each raw sample into the channel selected by the CFA
// pattern and leaves the other two channels zero. No interpolation, no
// neighbor access; the populated channel equals the raw data exactly.
func demosaicNone(raw *RawImage, cfa CFA, dst *Raster) error {
	for y := 0; y < dst.h; y++ {
		for x := 0; x < dst.w; x++ {
			var out [3]uint16
			out[cfa.ChannelAt(x, y)] = uint16(raw.SampleAt(x, y))
			if err := dst.SetPixel(y, x, out[Red], out[Green], out[Blue]); err != nil {
				return err
			}
		}
	}
	return nil
}
