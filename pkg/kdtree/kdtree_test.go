package kdtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestExactSelfHitOverRandomPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := make([]Point, 1000)
	for i := range points {
		points[i] = Point{rng.Float64() * 100, rng.Float64() * 100, rng.Float64() * 100}
	}

	tree := Build(points, 0)
	require.Equal(t, 1000, tree.Len())

	for i, p := range points {
		result, ok := tree.Nearest(p)
		require.True(t, ok)
		assert.Equal(t, i, result.Index, "nearest(p_%d) should self-hit", i)
		assert.Equal(t, 0.0, result.Distance)
	}
}

func TestNearestOnEmptyTree(t *testing.T) {
	tree := Build(nil, 0)
	_, ok := tree.Nearest(Point{0, 0})
	assert.False(t, ok)
}

func TestSearchRadiusFindsAllPointsWithinDistance(t *testing.T) {
	points := []Point{
		{0, 0}, {1, 0}, {0, 1}, {5, 5}, {10, 10},
	}
	tree := Build(points, 2)

	results := tree.SearchRadius(Point{0, 0}, 1.5)

	gotIndices := make(map[int]bool)
	for _, r := range results {
		gotIndices[r.Index] = true
		assert.LessOrEqual(t, r.Distance, 1.5)
	}
	assert.True(t, gotIndices[0])
	assert.True(t, gotIndices[1])
	assert.True(t, gotIndices[2])
	assert.False(t, gotIndices[3])
	assert.False(t, gotIndices[4])
}

func TestEveryPointLandsInExactlyOneLeaf(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	points := make([]Point, 200)
	for i := range points {
		points[i] = Point{rng.Float64(), rng.Float64()}
	}
	tree := Build(points, 8)

	seen := make(map[int]int)
	var walk func(idx int)
	walk = func(idx int) {
		n := tree.nodes[idx]
		if n.leaf {
			for _, i := range n.indices {
				seen[i]++
			}
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(tree.root)

	assert.Len(t, seen, len(points))
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}
