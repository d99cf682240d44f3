// showbayer demosaics a headerless raw sensor dump and displays the
// result in a window. Without OpenCV support (purego or js builds) it
// falls back to writing a PNG next to the input.
package main

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/alecthomas/kong"

	"debayer/pkg/debayer"
	"debayer/pkg/rawfile"
	"debayer/pkg/render"
)

type cli struct {
	Input        string `arg:"" type:"existingfile" help:"Raw sensor dump, optionally zstd compressed."`
	Width        int    `short:"W" required:"" help:"Frame width in pixels."`
	Height       int    `short:"H" required:"" help:"Frame height in pixels."`
	Bits         int    `default:"8" enum:"8,16" help:"Bits per raw sample."`
	LittleEndian bool   `help:"Treat 16-bit samples as little-endian."`
	CFA          string `default:"rggb" enum:"bggr,gbrg,grbg,rggb" help:"Sensor CFA pattern."`
	Algorithm    string `default:"linear" enum:"none,nearest,linear,cubic" help:"Demosaic algorithm."`
	Label        bool   `help:"Overlay the pattern and algorithm in the corner."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("showbayer"),
		kong.Description("Demosaic a raw Bayer frame and show it."))
	kctx.FatalIfErrorf(run(&c))
}

func run(c *cli) error {
	img, err := demosaicFile(c)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s  %s %s", c.Input, c.CFA, c.Algorithm)
	return display(title, c.Input+".png", img)
}

func demosaicFile(c *cli) (image.Image, error) {
	src, err := rawfile.Load(c.Input)
	if err != nil {
		return nil, err
	}

	depth, err := debayer.RawDepthFrom(c.Bits, !c.LittleEndian)
	if err != nil {
		return nil, err
	}
	cfa, err := debayer.ParseCFA(c.CFA)
	if err != nil {
		return nil, err
	}
	alg, err := debayer.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, err
	}

	rd := debayer.RasterDepth8
	if c.Bits == 16 {
		rd = debayer.RasterDepth16
	}
	buf := make([]byte, c.Width*c.Height*rd.BytesPerPixel())
	dst, err := debayer.NewRaster(c.Width, c.Height, rd, buf)
	if err != nil {
		return nil, err
	}

	if err := debayer.Demosaic(src, depth, cfa, alg, dst); err != nil {
		return nil, fmt.Errorf("demosaicing %s: %w", c.Input, err)
	}
	fmt.Fprintf(os.Stderr, "%s: %dx%d %d-bit %s, %s\n",
		c.Input, c.Width, c.Height, c.Bits, cfa, alg)

	img, err := render.Image(buf, c.Width, c.Height, rd)
	if err != nil {
		return nil, err
	}
	if c.Label {
		render.Label(img.(draw.Image), fmt.Sprintf("%s %s", cfa, alg))
	}
	return img, nil
}
