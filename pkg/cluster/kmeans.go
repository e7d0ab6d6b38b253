package cluster

import (
	"math/rand"

	"github.com/brackishlabs/palettecore/pkg/kdtree"
	"github.com/brackishlabs/palettecore/pkg/paletteerr"
)

// KMeansOptions configures a k-means run.
type KMeansOptions struct {
	K             int
	MaxIterations int
	Tolerance     float64
	Distance      DistanceFunc // defaults to SquaredEuclidean
	Init          Initializer  // defaults to KMeansPlusPlus
}

// KMeans partitions points into at most K clusters. If n <= K it emits
// n singleton clusters without iterating. Otherwise it seeds K centers
// via opts.Init, then repeats up to MaxIterations times: assign each
// point to its nearest center (via a KD-tree over the current
// centers), recompute centroids, and stop once every cluster's
// centroid moved less than Tolerance since the previous iteration.
// Stopping as soon as a single cluster converges under-iterates the
// rest; this implementation requires all clusters to converge.
//
// cancel, if non-nil, is checked between iterations; a true result
// aborts the run with a CancelledError.
func KMeans(points []Point, opts KMeansOptions, rng *rand.Rand, cancel func() bool) ([]Cluster, error) {
	if opts.K <= 0 {
		return nil, paletteerr.NewValidationError("k", "must be >= 1")
	}
	if opts.MaxIterations <= 0 {
		return nil, paletteerr.NewValidationError("maxIterations", "must be >= 1")
	}
	if opts.Tolerance < 0 {
		return nil, paletteerr.NewValidationError("tolerance", "must be >= 0")
	}

	n := len(points)
	if n == 0 {
		return nil, nil
	}

	distance := opts.Distance
	if distance == nil {
		distance = SquaredEuclidean
	}

	if n <= opts.K {
		clusters := make([]Cluster, n)
		for i, p := range points {
			clusters[i] = Cluster{ID: i, Centroid: p, Members: []int{i}}
		}
		return clusters, nil
	}

	init := opts.Init
	if init == nil {
		init = KMeansPlusPlus
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	centers := init(points, opts.K, rng, distance)
	k := len(centers)
	dim := len(points[0])

	assignments := make([]int, n)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		if cancel != nil && cancel() {
			return nil, paletteerr.NewCancelledError("kmeans")
		}

		tree := kdtree.Build(toKDPoints(centers), kdtree.DefaultLeafSize)
		for i, p := range points {
			res, _ := tree.Nearest(kdtree.Point(p))
			assignments[i] = res.Index
		}

		sums := make([]Point, k)
		counts := make([]int, k)
		for j := range sums {
			sums[j] = make(Point, dim)
		}
		for i, p := range points {
			c := assignments[i]
			counts[c]++
			for d := 0; d < dim; d++ {
				sums[c][d] += p[d]
			}
		}

		newCenters := make([]Point, k)
		maxDelta := 0.0
		for j := 0; j < k; j++ {
			if counts[j] == 0 {
				newCenters[j] = centers[j]
				continue
			}
			mean := make(Point, dim)
			for d := 0; d < dim; d++ {
				mean[d] = sums[j][d] / float64(counts[j])
			}
			newCenters[j] = mean
			if delta := euclidean(mean, centers[j]); delta > maxDelta {
				maxDelta = delta
			}
		}
		centers = newCenters

		if maxDelta < opts.Tolerance {
			break
		}
	}

	membersByCenter := make([][]int, k)
	for i, c := range assignments {
		membersByCenter[c] = append(membersByCenter[c], i)
	}

	clusters := make([]Cluster, 0, k)
	id := 0
	for j := 0; j < k; j++ {
		if len(membersByCenter[j]) == 0 {
			continue
		}
		clusters = append(clusters, Cluster{ID: id, Centroid: centers[j], Members: membersByCenter[j]})
		id++
	}
	return clusters, nil
}

func toKDPoints(points []Point) []kdtree.Point {
	out := make([]kdtree.Point, len(points))
	for i, p := range points {
		out[i] = kdtree.Point(p)
	}
	return out
}
