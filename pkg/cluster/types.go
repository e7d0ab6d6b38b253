// Package cluster implements two interchangeable clustering algorithms
// (k-means with k-means++ seeding, and DBSCAN) over 5-dimensional
// feature vectors, accelerated by pkg/kdtree. Polymorphic pieces
// (distance function, center initializer) are modeled as function
// values, not a class hierarchy.
package cluster

import (
	"math"

	"github.com/brackishlabs/palettecore/pkg/kdtree"
)

// Point is a feature vector in Euclidean space.
type Point = kdtree.Point

// DistanceFunc computes the distance between two points. Implementations
// must return a non-negative, finite value.
type DistanceFunc func(a, b Point) float64

// SquaredEuclidean is the default DistanceFunc: squared Euclidean
// distance, cheaper than true Euclidean distance for nearest-center
// comparisons where only relative order matters.
func SquaredEuclidean(a, b Point) float64 {
	sum := 0.0
	for d := range a {
		diff := a[d] - b[d]
		sum += diff * diff
	}
	return sum
}

// Cluster is the output of either clustering algorithm: an id, the
// arithmetic-mean centroid of its members, and the indices of the
// member points in the original input slice.
type Cluster struct {
	ID       int
	Centroid Point
	Members  []int
}

func meanPoint(points []Point, indices []int) Point {
	dim := len(points[indices[0]])
	sum := make(Point, dim)
	for _, i := range indices {
		p := points[i]
		for d := 0; d < dim; d++ {
			sum[d] += p[d]
		}
	}
	n := float64(len(indices))
	for d := range sum {
		sum[d] /= n
	}
	return sum
}

func euclidean(a, b Point) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}
