package extractor

import (
	"math"

	"github.com/brackishlabs/palettecore/pkg/cluster"
	"github.com/brackishlabs/palettecore/pkg/paletteerr"
)

// Algorithm names the clustering algorithm the extractor dispatches to.
type Algorithm string

const (
	AlgorithmKMeans Algorithm = "kmeans"
	AlgorithmDBSCAN Algorithm = "dbscan"
)

// KMeansParams holds the tunable knobs for the k-means clustering stage.
type KMeansParams struct {
	MaxIterations int
	Tolerance     float64
}

// DBSCANParams holds the tunable knobs for the DBSCAN clustering
// stage. A negative Radius is an explicit "auto" sentinel: the
// extractor derives a radius from the point set's nearest-neighbor
// distances instead of failing
// validation. A zero or omitted Radius still takes the literal spec
// default of 0.016.
type DBSCANParams struct {
	MinPoints int
	Radius    float64
}

// Options configures one extraction: a plain struct with
// setDefaults/Validate methods, no env vars or file I/O.
type Options struct {
	MaxColors int
	Algorithm Algorithm
	Filters   []PixelFilter
	KMeans    KMeansParams
	DBSCAN    DBSCANParams
}

// DefaultOptions returns the extractor's recommended defaults.
func DefaultOptions() Options {
	return Options{
		MaxColors: 8,
		Algorithm: AlgorithmKMeans,
		KMeans:    KMeansParams{MaxIterations: 10, Tolerance: 1e-4},
		DBSCAN:    DBSCANParams{MinPoints: 9, Radius: 0.016},
	}
}

func (o Options) setDefaults() Options {
	d := DefaultOptions()
	if o.MaxColors <= 0 {
		o.MaxColors = d.MaxColors
	}
	if o.Algorithm == "" {
		o.Algorithm = d.Algorithm
	}
	if o.KMeans.MaxIterations <= 0 {
		o.KMeans.MaxIterations = d.KMeans.MaxIterations
	}
	if o.KMeans.Tolerance <= 0 {
		o.KMeans.Tolerance = d.KMeans.Tolerance
	}
	if o.DBSCAN.MinPoints <= 0 {
		o.DBSCAN.MinPoints = d.DBSCAN.MinPoints
	}
	if o.DBSCAN.Radius == 0 {
		o.DBSCAN.Radius = d.DBSCAN.Radius
	}
	return o
}

// Validate checks the configured parameters eagerly, before any
// clustering work starts.
func (o Options) Validate() error {
	if o.MaxColors <= 0 {
		return paletteerr.NewValidationError("maxColors", "must be >= 1")
	}
	switch o.Algorithm {
	case AlgorithmDBSCAN:
		if o.DBSCAN.MinPoints <= 0 {
			return paletteerr.NewValidationError("dbscan.minPoints", "must be >= 1")
		}
		if o.DBSCAN.Radius < 0 {
			return nil // negative Radius is the documented auto-radius sentinel
		}
	case AlgorithmKMeans, "":
		if o.KMeans.MaxIterations <= 0 {
			return paletteerr.NewValidationError("kmeans.maxIterations", "must be >= 1")
		}
		if o.KMeans.Tolerance < 0 {
			return paletteerr.NewValidationError("kmeans.tolerance", "must be >= 0")
		}
	default:
		return paletteerr.NewValidationError("algorithm", "must be \"kmeans\" or \"dbscan\"")
	}
	return nil
}

// autoRadius derives a DBSCAN radius from the average nearest-neighbor
// distance of a capped sample of points, scaled by sqrt(minPoints) — a
// standard k-distance heuristic for picking an eps value when the
// caller opts in with a negative Radius.
func autoRadius(points []cluster.Point, minPoints int) float64 {
	n := len(points)
	if n < 2 {
		return DefaultOptions().DBSCAN.Radius
	}

	sampleSize := n
	if sampleSize > 200 {
		sampleSize = 200
	}
	step := n / sampleSize
	if step < 1 {
		step = 1
	}

	total := 0.0
	count := 0
	for i := 0; i < n; i += step {
		best := math.Inf(1)
		for j := 0; j < n; j += step {
			if i == j {
				continue
			}
			if d := pointDistance(points[i], points[j]); d < best {
				best = d
			}
		}
		if !math.IsInf(best, 1) {
			total += best
			count++
		}
	}
	if count == 0 {
		return DefaultOptions().DBSCAN.Radius
	}
	return (total / float64(count)) * math.Sqrt(float64(minPoints))
}

func pointDistance(a, b cluster.Point) float64 {
	sum := 0.0
	for d := range a {
		diff := a[d] - b[d]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
