// Package debayer reconstructs full-color rasters from single-channel raw
// sensor buffers laid out in a 2x2 Bayer color filter array.
//
// A raw buffer carries one of red, green or blue per pixel site; the four
// demosaic algorithms fill in the other two channels by interpolation and
// write dense RGB triplets into a caller-owned raster. Both 8-bit and
// 16-bit samples are supported, the latter in either byte order.
//
// Neighbor lookups that would leave the grid clamp to the nearest valid
// coordinate, so border pixels average replicated edge samples rather than
// zeros. A channel directly observed at a pixel site is always copied
// through exactly, whatever the algorithm.
//
// Calls are pure and reentrant: no shared state, no locking, no I/O.
// Concurrent calls are safe as long as each call gets disjoint buffers.
package debayer

import "fmt"

// Algorithm selects how the two missing channels at each pixel site are
// filled in.
type Algorithm uint8

const (
	// None writes each raw sample into its own channel and zeroes the
	// other two, visualizing the mosaic itself.
	None Algorithm = iota
	// NearestNeighbour copies missing channels from the 2x2 tile
	// partners. Blocky but free of interpolation artifacts.
	NearestNeighbour
	// Linear averages the nearest same-channel neighbors.
	Linear
	// Cubic applies a cubic convolution over a wider same-channel
	// footprint. Sharper than Linear, with mild ringing at hard edges.
	Cubic
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case NearestNeighbour:
		return "nearest-neighbour"
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	}
	return "unknown"
}

// ParseAlgorithm maps an algorithm name onto an Algorithm. Both
// "nearest" and "nearest-neighbour" select NearestNeighbour.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "none":
		return None, nil
	case "nearest", "nearest-neighbour":
		return NearestNeighbour, nil
	case "linear":
		return Linear, nil
	case "cubic":
		return Cubic, nil
	}
	return 0, fmt.Errorf("demosaic algorithm %q: %w", name, ErrGeneric)
}

// Demosaic runs the selected algorithm over src and writes the
// reconstructed image into dst. src must hold exactly dst.Width() times
// dst.Height() samples at the given depth, and the raw depth must match
// the raster depth (8 into 8, 16 into 16).
//
// All validation happens before the first write: on error the destination
// buffer is left byte-for-byte untouched. A second call with identical
// inputs produces identical output.
func Demosaic(src []byte, depth RawDepth, cfa CFA, alg Algorithm, dst *Raster) error {
	if dst == nil || !cfa.valid() {
		return fmt.Errorf("demosaic parameters: %w", ErrGeneric)
	}
	if !compatibleDepth(depth, dst.depth) {
		return fmt.Errorf("%s raw samples into %s raster: %w", depth, dst.depth, ErrWrongDepth)
	}
	raw, err := NewRawImage(src, dst.w, dst.h, depth)
	if err != nil {
		return err
	}

	switch alg {
	case None:
		return demosaicNone(raw, cfa, dst)
	case NearestNeighbour:
		return demosaicNearest(raw, cfa, dst)
	case Linear:
		return demosaicLinear(raw, cfa, dst)
	case Cubic:
		return demosaicCubic(raw, cfa, dst)
	}
	return fmt.Errorf("demosaic algorithm %d: %w", alg, ErrGeneric)
}

// compatibleDepth reports whether raw samples of depth d can be written
// into a raster of depth rd without rescaling.
func compatibleDepth(d RawDepth, rd RasterDepth) bool {
	if rd == RasterDepth8 {
		return d == Depth8
	}
	return d == Depth16BE || d == Depth16LE
}
