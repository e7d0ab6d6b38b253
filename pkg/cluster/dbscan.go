package cluster

import (
	"github.com/brackishlabs/palettecore/pkg/kdtree"
	"github.com/brackishlabs/palettecore/pkg/paletteerr"
)

// label sentinels for points not yet assigned to a cluster.
// Non-negative values are cluster ids.
const (
	labelUnknown = -3
	labelMarked  = -2
	labelNoise   = -1
)

// DBSCANOptions configures a DBSCAN run.
type DBSCANOptions struct {
	MinPoints int
	Radius    float64
	Distance  DistanceFunc // reserved for future use; the KD-tree search is always Euclidean
}

// DBSCAN clusters points by density. A KD-tree is built once over the
// full point set; for each unvisited point, neighbors within Radius are
// found and either start a new cluster (if there are at least
// MinPoints of them) or the point is labeled NOISE. Cluster ids are
// assigned in first-discovery order during the sequential scan, making
// output deterministic for a given input order. NOISE points never
// appear in the returned clusters.
//
// cancel, if non-nil, is checked between points in the outer scan; a
// true result aborts the run with a CancelledError.
func DBSCAN(points []Point, opts DBSCANOptions, cancel func() bool) ([]Cluster, error) {
	if opts.MinPoints <= 0 {
		return nil, paletteerr.NewValidationError("minPoints", "must be >= 1")
	}
	if opts.Radius < 0 {
		return nil, paletteerr.NewValidationError("radius", "must be >= 0")
	}

	n := len(points)
	if n == 0 {
		return nil, nil
	}

	tree := kdtree.Build(toKDPoints(points), kdtree.DefaultLeafSize)
	neighbors := func(i int) []int {
		hits := tree.SearchRadius(kdtree.Point(points[i]), opts.Radius)
		idxs := make([]int, len(hits))
		for j, h := range hits {
			idxs[j] = h.Index
		}
		return idxs
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = labelUnknown
	}

	membersByCluster := make(map[int][]int)
	nextID := 0

	for i := 0; i < n; i++ {
		if cancel != nil && cancel() {
			return nil, paletteerr.NewCancelledError("dbscan")
		}
		if labels[i] != labelUnknown {
			continue
		}

		nbrs := neighbors(i)
		if len(nbrs) < opts.MinPoints {
			labels[i] = labelNoise
			continue
		}

		id := nextID
		nextID++
		labels[i] = id
		membersByCluster[id] = append(membersByCluster[id], i)

		queue := append([]int(nil), nbrs...)
		for _, q := range nbrs {
			if labels[q] == labelUnknown {
				labels[q] = labelMarked
			}
		}

		for len(queue) > 0 {
			q := queue[0]
			queue = queue[1:]

			switch {
			case labels[q] >= 0:
				continue
			case labels[q] == labelNoise:
				labels[q] = id
				membersByCluster[id] = append(membersByCluster[id], q)
				continue
			}

			labels[q] = id
			membersByCluster[id] = append(membersByCluster[id], q)

			qNbrs := neighbors(q)
			if len(qNbrs) >= opts.MinPoints {
				for _, r := range qNbrs {
					switch labels[r] {
					case labelUnknown:
						labels[r] = labelMarked
						queue = append(queue, r)
					case labelNoise:
						queue = append(queue, r)
					}
				}
			}
		}
	}

	clusters := make([]Cluster, 0, nextID)
	for id := 0; id < nextID; id++ {
		members := membersByCluster[id]
		if len(members) == 0 {
			continue
		}
		clusters = append(clusters, Cluster{ID: id, Centroid: meanPoint(points, members), Members: members})
	}
	return clusters, nil
}
