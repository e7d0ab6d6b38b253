package cluster

import (
	"fmt"
	"math/rand"
)

// Initializer picks the initial set of k (or fewer) centers for
// k-means from points, using rng for every random choice it makes —
// no routine reaches for process-global randomness.
type Initializer func(points []Point, k int, rng *rand.Rand, distance DistanceFunc) []Point

// KMeansPlusPlus implements k-means++ seeding: the first center is
// chosen uniformly at random, subsequent centers are drawn with
// probability proportional to D(p)^2, the squared distance from p to
// the nearest already-chosen center. Seeding stops when k distinct
// centers are chosen or fewer than k unique points remain, in which
// case every unique point is returned.
func KMeansPlusPlus(points []Point, k int, rng *rand.Rand, distance DistanceFunc) []Point {
	unique := uniquePoints(points)
	if len(unique) == 0 || k <= 0 {
		return nil
	}
	if k > len(unique) {
		k = len(unique)
	}

	first := rng.Intn(len(unique))
	chosen := []Point{unique[first]}
	chosenSet := map[int]bool{first: true}

	nearestSq := make([]float64, len(unique))

	for len(chosen) < k {
		total := 0.0
		for i, p := range unique {
			if chosenSet[i] {
				nearestSq[i] = 0
				continue
			}
			best := distance(p, chosen[0])
			for _, c := range chosen[1:] {
				if d := distance(p, c); d < best {
					best = d
				}
			}
			nearestSq[i] = best
			total += best
		}

		if total == 0 {
			for i := range unique {
				if !chosenSet[i] {
					chosen = append(chosen, unique[i])
					chosenSet[i] = true
					break
				}
			}
			continue
		}

		r := rng.Float64() * total
		cum := 0.0
		pick := -1
		for i := range unique {
			if chosenSet[i] {
				continue
			}
			cum += nearestSq[i]
			if cum >= r {
				pick = i
				break
			}
		}
		if pick == -1 {
			for i := range unique {
				if !chosenSet[i] {
					pick = i
					break
				}
			}
		}
		chosen = append(chosen, unique[pick])
		chosenSet[pick] = true
	}

	return chosen
}

func uniquePoints(points []Point) []Point {
	seen := make(map[string]bool, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		key := pointKey(p)
		if !seen[key] {
			seen[key] = true
			out = append(out, p)
		}
	}
	return out
}

func pointKey(p Point) string {
	return fmt.Sprint([]float64(p))
}
