package debayer

import (
	"encoding/binary"
	"fmt"
)

// RawDepth describes the sample width and byte order of the raw sensor
// buffer. Cameras that capture 12 bits per sample but store 16 should be
// treated as 16 bits per sample.
type RawDepth uint8

const (
	Depth8 RawDepth = iota
	Depth16BE
	Depth16LE
)

// RawDepthFrom maps the boundary's (bits, byte order) pair onto a RawDepth.
// Only 8 and 16 bits per sample are supported; the byte order flag is
// ignored for 8-bit data.
func RawDepthFrom(bits int, bigEndian bool) (RawDepth, error) {
	switch {
	case bits == 8:
		return Depth8, nil
	case bits == 16 && bigEndian:
		return Depth16BE, nil
	case bits == 16:
		return Depth16LE, nil
	}
	return 0, fmt.Errorf("raw depth %d: %w", bits, ErrWrongDepth)
}

func (d RawDepth) String() string {
	switch d {
	case Depth8:
		return "8-bit"
	case Depth16BE:
		return "16-bit big-endian"
	case Depth16LE:
		return "16-bit little-endian"
	}
	return "unknown"
}

// BytesPerSample is the storage width of one raw sample.
func (d RawDepth) BytesPerSample() int {
	if d == Depth8 {
		return 1
	}
	return 2
}

// MaxValue is the largest sample value representable at this depth.
func (d RawDepth) MaxValue() int {
	if d == Depth8 {
		return 0xff
	}
	return 0xffff
}

// RawImage interprets a byte buffer as a row-major grid of unsigned
// samples. It performs no coordinate clamping of its own: the demosaic
// kernels clamp before calling SampleAt, and an out-of-grid access is a
// programming error caught by the slice bounds check.
type RawImage struct {
	data   []byte
	width  int
	height int
	depth  RawDepth
}

// NewRawImage wraps data as a width x height sample grid. The buffer length
// must equal width*height samples at the given depth exactly, otherwise the
// call fails with ErrWrongResolution before anything is read.
func NewRawImage(data []byte, width, height int, depth RawDepth) (*RawImage, error) {
	if width < 1 || height < 1 || len(data) != width*height*depth.BytesPerSample() {
		return nil, fmt.Errorf("raw buffer of %d bytes for %dx%d %s samples: %w",
			len(data), width, height, depth, ErrWrongResolution)
	}
	return &RawImage{data: data, width: width, height: height, depth: depth}, nil
}

func (r *RawImage) Width() int      { return r.width }
func (r *RawImage) Height() int     { return r.height }
func (r *RawImage) Depth() RawDepth { return r.depth }

// SampleAt returns the sample at (x, y) as an unsigned value in
// [0, MaxValue], honoring the declared byte order for 16-bit data.
func (r *RawImage) SampleAt(x, y int) int {
	i := y*r.width + x
	switch r.depth {
	case Depth16BE:
		return int(binary.BigEndian.Uint16(r.data[2*i:]))
	case Depth16LE:
		return int(binary.LittleEndian.Uint16(r.data[2*i:]))
	default:
		return int(r.data[i])
	}
}
