// Package extractor implements the pixel-to-swatch pipeline: walk a raw
// RGBA buffer, filter pixels, convert survivors to 5-dimensional
// feature vectors in Lab + normalized (x,y), hand them to a clusterer,
// then de-normalize each non-empty cluster back into a Swatch.
package extractor

import (
	"math/rand"

	"github.com/brackishlabs/palettecore/pkg/cluster"
	"github.com/brackishlabs/palettecore/pkg/colorspace"
	"github.com/brackishlabs/palettecore/pkg/paletteerr"
	"github.com/brackishlabs/palettecore/pkg/swatch"
	"github.com/willibrandon/mtlog/core"
)

// ImageData is the collaborator contract for raster input: a packed
// RGBA8 byte buffer with known width and height. Pixel i occupies
// bytes [4i, 4i+4); its opacity byte is data[4i+3].
type ImageData struct {
	Data          []byte
	Width, Height int
}

// Extract runs the full pipeline and returns one Swatch per non-empty
// cluster, except that clusters whose colors are Equal are merged into
// a single Swatch with the summed population and the population-weighted
// mean coordinate (so a solid-color image yields one swatch). It fails with an EmptyImageError if img.Data has zero
// length, and returns an empty (nil) slice, no error, if every pixel is
// filtered out.
//
// rng seeds k-means++; nil falls back to a fixed seed so that callers
// who don't care about reproducibility still get deterministic output.
// cancel, if non-nil, is checked between pixels during filtering and
// threaded through to the clustering algorithm; a true result aborts
// the run with a CancelledError. logger is optional — nil disables
// extraction logging.
func Extract(img ImageData, opts Options, rng *rand.Rand, cancel func() bool, logger core.Logger) ([]swatch.Swatch, error) {
	if len(img.Data) == 0 {
		return nil, paletteerr.NewEmptyImageError()
	}

	opts = opts.setDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	filters := opts.Filters
	if len(filters) == 0 {
		filters = []PixelFilter{defaultFilter()}
	}
	filter := Compose(filters...)

	numPixels := len(img.Data) / 4
	points := make([]cluster.Point, 0, numPixels)

	for i := 0; i < numPixels; i++ {
		if cancel != nil && cancel() {
			return nil, paletteerr.NewCancelledError("extract:filter")
		}

		off := i * 4
		rgb := colorspace.RGBA{
			R: img.Data[off],
			G: img.Data[off+1],
			B: img.Data[off+2],
			A: float64(img.Data[off+3]) / 255.0,
		}

		x := i % img.Width
		y := i / img.Width
		if !filter(rgb, x, y) {
			continue
		}

		lab := colorspace.RGBToLab(rgb)
		points = append(points, featureVector(lab, x, y, img.Width, img.Height))
	}

	if logger != nil {
		logger.Debug("extractor: {Surviving}/{Total} pixels survived filtering", len(points), numPixels)
	}

	if len(points) == 0 {
		return nil, nil
	}

	var clusters []cluster.Cluster
	var err error
	switch opts.Algorithm {
	case AlgorithmDBSCAN:
		radius := opts.DBSCAN.Radius
		if radius < 0 {
			radius = autoRadius(points, opts.DBSCAN.MinPoints)
		}
		clusters, err = cluster.DBSCAN(points, cluster.DBSCANOptions{
			MinPoints: opts.DBSCAN.MinPoints,
			Radius:    radius,
		}, cancel)
	default:
		clusters, err = cluster.KMeans(points, cluster.KMeansOptions{
			K:             opts.MaxColors,
			MaxIterations: opts.KMeans.MaxIterations,
			Tolerance:     opts.KMeans.Tolerance,
		}, rng, cancel)
	}
	if err != nil {
		return nil, err
	}

	swatches := make([]swatch.Swatch, 0, len(clusters))
	for _, c := range clusters {
		if len(c.Members) == 0 {
			continue
		}
		lab := denormalizeLab(c.Centroid)
		x, y := denormalizeXY(c.Centroid, img.Width, img.Height)
		pop := len(c.Members)
		merged := false
		for i, s := range swatches {
			if s.Color.Equal(lab) {
				total := float64(s.Population + pop)
				swatches[i] = swatch.New(s.Color, s.Population+pop, swatch.Coordinate{
					X: (s.Coordinate.X*float64(s.Population) + x*float64(pop)) / total,
					Y: (s.Coordinate.Y*float64(s.Population) + y*float64(pop)) / total,
				})
				merged = true
				break
			}
		}
		if !merged {
			swatches = append(swatches, swatch.New(lab, pop, swatch.Coordinate{X: x, Y: y}))
		}
	}

	if logger != nil {
		logger.Debug("extractor: emitted {Count} swatches from {Clusters} clusters", len(swatches), len(clusters))
	}

	return swatches, nil
}

func featureVector(lab colorspace.Color, x, y, width, height int) cluster.Point {
	return cluster.Point{
		normalize(lab.L(), 0, 100),
		normalize(lab.A(), -128, 128),
		normalize(lab.B(), -128, 128),
		normalize(float64(x), 0, float64(width)),
		normalize(float64(y), 0, float64(height)),
	}
}

func denormalizeLab(fv cluster.Point) colorspace.Color {
	return colorspace.New(
		denormalize(fv[0], 0, 100),
		denormalize(fv[1], -128, 128),
		denormalize(fv[2], -128, 128),
	)
}

func denormalizeXY(fv cluster.Point, width, height int) (x, y float64) {
	return denormalize(fv[3], 0, float64(width)), denormalize(fv[4], 0, float64(height))
}

func normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

func denormalize(v, lo, hi float64) float64 {
	return v*(hi-lo) + lo
}
