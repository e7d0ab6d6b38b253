// Package palette composes clustered swatches into the final ordered
// Palette: filtering and scoring through a theme.Strategy, then
// selecting a requested number of perceptually distinct swatches.
package palette

import (
	"math"
	"sort"

	"github.com/brackishlabs/palettecore/pkg/colordiff"
	"github.com/brackishlabs/palettecore/pkg/paletteerr"
	"github.com/brackishlabs/palettecore/pkg/swatch"
	"github.com/brackishlabs/palettecore/pkg/theme"
)

// Palette is an ordered, immutable sequence of swatches sorted by
// descending population at construction time.
type Palette struct {
	swatches []swatch.Swatch
	strategy theme.Strategy
}

// New filters swatches through strategy and sorts the survivors by
// descending population, ties broken by first appearance (stable
// sort).
func New(swatches []swatch.Swatch, strategy theme.Strategy) *Palette {
	filtered := make([]swatch.Swatch, 0, len(swatches))
	for _, s := range swatches {
		if strategy.Filter(s) {
			filtered = append(filtered, s)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Population > filtered[j].Population
	})
	return &Palette{swatches: filtered, strategy: strategy}
}

// Size returns the number of swatches after filtering.
func (p *Palette) Size() int { return len(p.swatches) }

// Swatches returns a copy of the palette's swatches in their stored
// (descending population) order.
func (p *Palette) Swatches() []swatch.Swatch {
	out := make([]swatch.Swatch, len(p.swatches))
	copy(out, p.swatches)
	return out
}

// DominantSwatch returns the highest-population swatch, failing with
// an EmptyPaletteError if the palette has no swatches.
func (p *Palette) DominantSwatch() (swatch.Swatch, error) {
	if len(p.swatches) == 0 {
		return swatch.Swatch{}, paletteerr.NewEmptyPaletteError("dominant_swatch")
	}
	return p.swatches[0], nil
}

// FindSwatches chooses n swatches maximizing mutual perceptual
// distinctness: greedy farthest-point selection in CIEDE2000 space,
// seeded with the swatch of maximum population*strategy.Score, then
// repeatedly adding the candidate maximizing the minimum CIEDE2000
// distance to the already-selected set. Ties are broken by higher
// score, then higher population, then lower index.
//
// If n >= Size, FindSwatches returns every swatch. n <= 0 fails with a
// RangeError.
func (p *Palette) FindSwatches(n int) ([]swatch.Swatch, error) {
	if n <= 0 {
		return nil, paletteerr.NewRangeError("n", n, "> 0")
	}
	if n >= len(p.swatches) {
		return p.Swatches(), nil
	}

	seed := 0
	bestSeedValue := -1.0
	for i, s := range p.swatches {
		value := float64(s.Population) * p.strategy.Score(s)
		if value > bestSeedValue {
			bestSeedValue = value
			seed = i
		}
	}

	selected := []int{seed}
	chosen := map[int]bool{seed: true}

	for len(selected) < n {
		best := -1
		bestMinDist := -1.0
		var bestScore float64
		var bestPop int

		for i, s := range p.swatches {
			if chosen[i] {
				continue
			}
			minDist := math.Inf(1)
			for _, j := range selected {
				if d := colordiff.CIEDE2000(s.Color, p.swatches[j].Color); d < minDist {
					minDist = d
				}
			}
			score := p.strategy.Score(s)

			switch {
			case best == -1:
				best, bestMinDist, bestScore, bestPop = i, minDist, score, s.Population
			case minDist > bestMinDist:
				best, bestMinDist, bestScore, bestPop = i, minDist, score, s.Population
			case minDist == bestMinDist:
				if score > bestScore ||
					(score == bestScore && s.Population > bestPop) ||
					(score == bestScore && s.Population == bestPop && i < best) {
					best, bestMinDist, bestScore, bestPop = i, minDist, score, s.Population
				}
			}
		}

		selected = append(selected, best)
		chosen[best] = true
	}

	out := make([]swatch.Swatch, len(selected))
	for i, idx := range selected {
		out[i] = p.swatches[idx]
	}
	return out, nil
}

// ByHue returns a copy of the palette's swatches sorted by ascending
// Color.Hue, ties broken by the palette's stored (population) order —
// closing the overview table's promise of "by-hue queries" that §4.8's
// prose only partially spells out.
func (p *Palette) ByHue() []swatch.Swatch {
	out := p.Swatches()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Color.Hue() < out[j].Color.Hue()
	})
	return out
}
