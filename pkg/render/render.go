// Package render turns demosaiced raster buffers into standard Go images
// for the command-line tools, and draws small text labels on them.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"debayer/pkg/debayer"
)

// Image wraps a demosaiced raster buffer as a standard image: NRGBA for
// 8-bit rasters, RGBA64 for 16-bit. The buffer must use the minimal
// stride for its width. Alpha is fully opaque.
func Image(buf []byte, w, h int, depth debayer.RasterDepth) (image.Image, error) {
	if len(buf) != w*h*depth.BytesPerPixel() {
		return nil, fmt.Errorf("raster buffer of %d bytes for %dx%d at %s depth",
			len(buf), w, h, depth)
	}

	if depth == debayer.RasterDepth8 {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < w*h; i++ {
			copy(img.Pix[4*i:], buf[3*i:3*i+3])
			img.Pix[4*i+3] = 0xff
		}
		return img, nil
	}

	// Raster rows are big-endian RGB; RGBA64 rows are big-endian RGBA.
	img := image.NewRGBA64(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		copy(img.Pix[8*i:], buf[6*i:6*i+6])
		img.Pix[8*i+6] = 0xff
		img.Pix[8*i+7] = 0xff
	}
	return img, nil
}

// Label draws s in the top-left corner of img, with a one-pixel shadow
// so it stays readable on bright frames.
func Label(img draw.Image, s string) {
	face := basicfont.Face7x13
	drawText(img, face, s, 9, 17, color.RGBA{0, 0, 0, 255})
	drawText(img, face, s, 8, 16, color.RGBA{255, 255, 255, 255})
}

func drawText(img draw.Image, face font.Face, s string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
