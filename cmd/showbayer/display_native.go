//go:build !purego && !js && cgo

package main

import (
	"fmt"
	"image"
	"image/draw"

	"gocv.io/x/gocv"
)

// display shows img in an OpenCV window and waits for a keypress. The
// fallback path is only used by the purego build.
func display(title, _ string, img image.Image) error {
	// gocv wants a tightly packed RGBA image; 16-bit rasters are
	// rendered at display depth.
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	mat, err := gocv.ImageToMatRGBA(rgba)
	if err != nil {
		return fmt.Errorf("converting to mat: %w", err)
	}
	defer mat.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(mat, &bgr, gocv.ColorRGBAToBGR)

	window := gocv.NewWindow(title)
	defer window.Close()
	window.IMShow(bgr)
	window.WaitKey(0)
	return nil
}
