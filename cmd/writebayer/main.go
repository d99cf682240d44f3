// writebayer demosaics a headerless raw sensor dump and writes the
// result as PNG or TIFF. TIFF keeps the full 16-bit range; PNG and any
// scaled output are rendered at 8 bits.
package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/disintegration/imaging"
	"golang.org/x/image/tiff"

	"debayer/pkg/debayer"
	"debayer/pkg/rawfile"
	"debayer/pkg/render"
)

type cli struct {
	Input        string `arg:"" type:"existingfile" help:"Raw sensor dump, optionally zstd compressed."`
	Out          string `short:"o" required:"" help:"Output image (.png, .tif or .tiff)."`
	Width        int    `short:"W" required:"" help:"Frame width in pixels."`
	Height       int    `short:"H" required:"" help:"Frame height in pixels."`
	Bits         int    `default:"8" enum:"8,16" help:"Bits per raw sample."`
	LittleEndian bool   `help:"Treat 16-bit samples as little-endian."`
	CFA          string `default:"rggb" enum:"bggr,gbrg,grbg,rggb" help:"Sensor CFA pattern."`
	Algorithm    string `default:"linear" enum:"none,nearest,linear,cubic" help:"Demosaic algorithm."`
	Scale        int    `default:"100" help:"Output scale in percent. Anything but 100 renders at 8 bits."`
	Label        string `help:"Text to overlay in the corner."`
}

func (c *cli) Validate() error {
	switch strings.ToLower(filepath.Ext(c.Out)) {
	case ".png", ".tif", ".tiff":
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(c.Out))
	}
	if c.Scale < 1 {
		return fmt.Errorf("invalid scale: %d%%", c.Scale)
	}
	return nil
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("writebayer"),
		kong.Description("Demosaic a raw Bayer frame and write it to an image file."))
	kctx.FatalIfErrorf(run(&c))
}

func run(c *cli) error {
	src, err := rawfile.Load(c.Input)
	if err != nil {
		return err
	}

	depth, err := debayer.RawDepthFrom(c.Bits, !c.LittleEndian)
	if err != nil {
		return err
	}
	cfa, err := debayer.ParseCFA(c.CFA)
	if err != nil {
		return err
	}
	alg, err := debayer.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return err
	}

	rd := debayer.RasterDepth8
	if c.Bits == 16 {
		rd = debayer.RasterDepth16
	}
	buf := make([]byte, c.Width*c.Height*rd.BytesPerPixel())
	dst, err := debayer.NewRaster(c.Width, c.Height, rd, buf)
	if err != nil {
		return err
	}
	if err := debayer.Demosaic(src, depth, cfa, alg, dst); err != nil {
		return fmt.Errorf("demosaicing %s: %w", c.Input, err)
	}

	img, err := render.Image(buf, c.Width, c.Height, rd)
	if err != nil {
		return err
	}
	if c.Scale != 100 {
		img = imaging.Resize(img, c.Width*c.Scale/100, c.Height*c.Scale/100, imaging.Lanczos)
	}
	if c.Label != "" {
		render.Label(img.(draw.Image), c.Label)
	}

	if err := writeImage(c.Out, img); err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d %s %s -> %s\n", c.Input, c.Width, c.Height, cfa, alg, c.Out)
	return nil
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
