// Command palettecore-extract is a small demonstration CLI: decode a
// PNG, optionally downsample it, run palettecore.Extract, and print
// the resulting swatches as hex/Lab/population rows.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/brackishlabs/palettecore"
	"github.com/brackishlabs/palettecore/pkg/extractor"
	"github.com/nfnt/resize"
	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
	"github.com/willibrandon/mtlog/sinks"
)

func main() {
	var (
		maxColors = flag.Int("colors", 8, "maximum number of swatches to extract")
		algorithm = flag.String("algorithm", "kmeans", "clustering algorithm: kmeans or dbscan")
		theme     = flag.String("theme", "basic", "theme strategy: basic, vivid, muted, light, dark")
		maxWidth  = flag.Uint("max-width", 256, "downsample the image to this width before extracting; 0 disables")
		debugMode = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := createLogger(*debugMode)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: palettecore-extract [flags] <image.png>")
		os.Exit(1)
	}

	if err := run(logger, flag.Arg(0), *maxColors, *algorithm, *theme, *maxWidth); err != nil {
		logger.Fatal("extraction failed: {Error}", err)
	}
}

func run(logger core.Logger, path string, maxColors int, algorithm, themeName string, maxWidth uint) error {
	img, err := decodePNG(path)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if maxWidth > 0 && uint(img.Bounds().Dx()) > maxWidth {
		logger.Debug("downsampling to width {Width}", maxWidth)
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	data := rasterize(img)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pal, err := palettecore.Extract(ctx, data, palettecore.Options{
		MaxColors: maxColors,
		Algorithm: extractor.Algorithm(algorithm),
		Theme:     palettecore.ThemeName(themeName),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Information("extracted {Count} swatches from {Path}", pal.Size(), path)
	for _, s := range pal.Swatches() {
		out := s.ToOutput()
		fmt.Printf("%-8s  pop=%-6d  lab(%.1f, %.1f, %.1f)\n",
			out.Color.Hex, out.Population, out.Color.Lab.L, out.Color.Lab.A, out.Color.Lab.B)
	}
	return nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// rasterize flattens an image.Image into the packed RGBA8 buffer
// extractor.ImageData expects.
func rasterize(img image.Image) extractor.ImageData {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	data := make([]byte, width*height*4)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			data[i] = byte(r >> 8)
			data[i+1] = byte(g >> 8)
			data[i+2] = byte(b >> 8)
			data[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return extractor.ImageData{Data: data, Width: width, Height: height}
}

func createLogger(debug bool) core.Logger {
	sink := sinks.NewConsoleSink()
	opts := []mtlog.Option{mtlog.WithSink(sink)}
	if debug {
		opts = append(opts, mtlog.WithMinimumLevel(core.DebugLevel))
	} else {
		opts = append(opts, mtlog.WithMinimumLevel(core.InformationLevel))
	}
	return mtlog.New(opts...)
}
