// Package kdtree implements a KD-tree over Euclidean points, used to
// accelerate nearest-neighbor and radius queries for pixel clustering.
// Internal nodes and leaves are represented as a tagged variant stored
// in a flat arena indexed by int, rather than a linked tree of
// heap-allocated nodes, for cache-friendly traversal.
package kdtree

import (
	"math"
	"sort"
)

// Point is a single point in an n-dimensional Euclidean space.
type Point []float64

// Result is a query hit: the index into the original point slice and
// its distance to the query point.
type Result struct {
	Index    int
	Distance float64
}

// DefaultLeafSize is the default maximum number of points held by a
// leaf node.
const DefaultLeafSize = 16

type node struct {
	leaf bool

	// leaf fields
	indices []int

	// internal fields
	dim         int
	splitValue  float64
	left, right int

	min, max []float64
}

// Tree is an immutable KD-tree built over a fixed point set.
type Tree struct {
	points   []Point
	dim      int
	leafSize int
	nodes    []node
	root     int
}

// Build constructs a Tree over points using the median-of-middles split
// on the dimension of maximum variance at each node. leafSize <= 0
// falls back to DefaultLeafSize. Every input point ends up in exactly
// one leaf.
func Build(points []Point, leafSize int) *Tree {
	if leafSize <= 0 {
		leafSize = DefaultLeafSize
	}
	t := &Tree{points: points, leafSize: leafSize}
	if len(points) == 0 {
		return t
	}
	t.dim = len(points[0])
	indices := make([]int, len(points))
	for i := range indices {
		indices[i] = i
	}
	t.root = t.build(indices)
	return t
}

// Len returns the number of points in the tree.
func (t *Tree) Len() int { return len(t.points) }

func (t *Tree) build(indices []int) int {
	lo, hi := t.bounds(indices)

	if len(indices) <= t.leafSize {
		idx := len(t.nodes)
		t.nodes = append(t.nodes, node{leaf: true, indices: indices, min: lo, max: hi})
		return idx
	}

	dim := t.maxVarianceDim(indices)
	sort.Slice(indices, func(i, j int) bool {
		return t.points[indices[i]][dim] < t.points[indices[j]][dim]
	})
	mid := len(indices) / 2
	splitValue := t.points[indices[mid]][dim]

	left := append([]int(nil), indices[:mid]...)
	right := append([]int(nil), indices[mid:]...)

	leftIdx := t.build(left)
	rightIdx := t.build(right)

	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{
		leaf: false, dim: dim, splitValue: splitValue,
		left: leftIdx, right: rightIdx, min: lo, max: hi,
	})
	return idx
}

func (t *Tree) bounds(indices []int) (min, max []float64) {
	min = make([]float64, t.dim)
	max = make([]float64, t.dim)
	for d := 0; d < t.dim; d++ {
		min[d] = math.Inf(1)
		max[d] = math.Inf(-1)
	}
	for _, i := range indices {
		p := t.points[i]
		for d := 0; d < t.dim; d++ {
			if p[d] < min[d] {
				min[d] = p[d]
			}
			if p[d] > max[d] {
				max[d] = p[d]
			}
		}
	}
	return min, max
}

func (t *Tree) maxVarianceDim(indices []int) int {
	best := 0
	bestVar := -1.0
	n := float64(len(indices))
	for d := 0; d < t.dim; d++ {
		mean := 0.0
		for _, i := range indices {
			mean += t.points[i][d]
		}
		mean /= n
		variance := 0.0
		for _, i := range indices {
			diff := t.points[i][d] - mean
			variance += diff * diff
		}
		if variance > bestVar {
			bestVar = variance
			best = d
		}
	}
	return best
}

// Nearest returns the closest point to q and true, or a zero Result and
// false if the tree holds no points. Ties are broken by lowest index.
func (t *Tree) Nearest(q Point) (Result, bool) {
	if len(t.points) == 0 {
		return Result{}, false
	}
	best := Result{Index: -1, Distance: math.Inf(1)}
	t.nearest(t.root, q, &best)
	return best, best.Index >= 0
}

func (t *Tree) nearest(nodeIdx int, q Point, best *Result) {
	n := &t.nodes[nodeIdx]
	if best.Index >= 0 && boxLowerBound(n, q) > best.Distance {
		return
	}

	if n.leaf {
		for _, i := range n.indices {
			d := euclidean(t.points[i], q)
			if best.Index == -1 || d < best.Distance || (d == best.Distance && i < best.Index) {
				best.Distance = d
				best.Index = i
			}
		}
		return
	}

	first, second := n.left, n.right
	if q[n.dim] > n.splitValue {
		first, second = n.right, n.left
	}
	t.nearest(first, q, best)
	t.nearest(second, q, best)
}

// SearchRadius returns every point within r of q. Order is stable
// across runs for a given tree and query, but otherwise unspecified.
func (t *Tree) SearchRadius(q Point, r float64) []Result {
	if len(t.points) == 0 {
		return nil
	}
	var results []Result
	t.searchRadius(t.root, q, r, &results)
	return results
}

func (t *Tree) searchRadius(nodeIdx int, q Point, r float64, results *[]Result) {
	n := &t.nodes[nodeIdx]
	if boxLowerBound(n, q) > r {
		return
	}
	if n.leaf {
		for _, i := range n.indices {
			d := euclidean(t.points[i], q)
			if d <= r {
				*results = append(*results, Result{Index: i, Distance: d})
			}
		}
		return
	}
	t.searchRadius(n.left, q, r, results)
	t.searchRadius(n.right, q, r, results)
}

func boxLowerBound(n *node, q Point) float64 {
	sum := 0.0
	for d := range q {
		if q[d] < n.min[d] {
			diff := n.min[d] - q[d]
			sum += diff * diff
		} else if q[d] > n.max[d] {
			diff := q[d] - n.max[d]
			sum += diff * diff
		}
	}
	return math.Sqrt(sum)
}

func euclidean(p1, p2 Point) float64 {
	sum := 0.0
	for d := range p1 {
		diff := p1[d] - p2[d]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
