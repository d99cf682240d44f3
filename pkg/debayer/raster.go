package debayer

import (
	"encoding/binary"
	"fmt"
)

// RasterDepth is the channel depth of the output raster.
type RasterDepth uint8

const (
	RasterDepth8 RasterDepth = iota
	RasterDepth16
)

func (d RasterDepth) String() string {
	if d == RasterDepth8 {
		return "8-bit"
	}
	return "16-bit"
}

// BytesPerPixel is the storage width of one RGB triplet.
func (d RasterDepth) BytesPerPixel() int {
	if d == RasterDepth8 {
		return 3
	}
	return 6
}

// Raster is a mutable view over a caller-owned destination buffer: an
// origin, a logical size, a row stride in bytes and a channel depth. The
// pixel storage stays owned by the caller; the raster only borrows it for
// the duration of a demosaic call.
//
// The geometry is validated once at construction, so every in-range
// SetPixel afterwards is guaranteed to land inside the buffer.
type Raster struct {
	x, y   int
	w, h   int
	stride int
	depth  RasterDepth
	buf    []byte
}

// NewRaster wraps buf as a w x h raster with no origin offset and a
// minimal stride.
func NewRaster(w, h int, depth RasterDepth, buf []byte) (*Raster, error) {
	return NewRasterWithOffset(0, 0, w, h, w*depth.BytesPerPixel(), depth, buf)
}

// NewRasterWithOffset wraps buf as a w x h raster whose top-left pixel
// lives at (x, y), with stride bytes between row starts. The call fails if
// the buffer cannot hold the declared geometry.
func NewRasterWithOffset(x, y, w, h, stride int, depth RasterDepth, buf []byte) (*Raster, error) {
	bpp := depth.BytesPerPixel()
	switch {
	case x < 0 || y < 0 || w < 1 || h < 1:
		return nil, fmt.Errorf("raster geometry %dx%d at (%d,%d): %w", w, h, x, y, ErrGeneric)
	case stride%bpp != 0 || (x+w)*bpp > stride:
		return nil, fmt.Errorf("raster stride %d for %d pixels at x offset %d: %w",
			stride, w, x, ErrGeneric)
	case (y+h)*stride > len(buf):
		return nil, fmt.Errorf("raster buffer of %d bytes, geometry needs %d: %w",
			len(buf), (y+h)*stride, ErrGeneric)
	}
	return &Raster{x: x, y: y, w: w, h: h, stride: stride, depth: depth, buf: buf}, nil
}

func (r *Raster) Width() int         { return r.w }
func (r *Raster) Height() int        { return r.h }
func (r *Raster) Stride() int        { return r.stride }
func (r *Raster) Depth() RasterDepth { return r.depth }

// SetPixel writes the RGB triplet of the pixel at (row, col), encoding
// each value per the raster depth. 16-bit values are written big-endian,
// the byte order of image.RGBA64 rows. Writes outside the declared size
// fail with ErrGeneric instead of touching memory.
func (r *Raster) SetPixel(row, col int, red, green, blue uint16) error {
	if row < 0 || row >= r.h || col < 0 || col >= r.w {
		return fmt.Errorf("raster write at (%d,%d) outside %dx%d: %w",
			col, row, r.w, r.h, ErrGeneric)
	}
	off := (r.y+row)*r.stride + (r.x+col)*r.depth.BytesPerPixel()
	if r.depth == RasterDepth8 {
		r.buf[off+0] = uint8(red)
		r.buf[off+1] = uint8(green)
		r.buf[off+2] = uint8(blue)
		return nil
	}
	binary.BigEndian.PutUint16(r.buf[off+0:], red)
	binary.BigEndian.PutUint16(r.buf[off+2:], green)
	binary.BigEndian.PutUint16(r.buf[off+4:], blue)
	return nil
}
