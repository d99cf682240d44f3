//go:build purego || js || !cgo

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// display falls back to writing a PNG next to the input when no GUI
// backend is compiled in.
func display(title, out string, img image.Image) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	fmt.Printf("%s written to %s\n", title, out)
	return nil
}
