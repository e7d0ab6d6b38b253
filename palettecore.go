// Package palettecore is the library entry point: given raster image
// data and extraction options, it returns an ordered Palette of
// representative swatches. It wires together pkg/extractor (pixel to
// swatch), pkg/theme (filter/score strategy), and pkg/palette
// (ordering and distinct-swatch selection) behind one constructor.
package palettecore

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/brackishlabs/palettecore/pkg/extractor"
	"github.com/brackishlabs/palettecore/pkg/palette"
	"github.com/brackishlabs/palettecore/pkg/theme"
	"github.com/google/uuid"
	"github.com/willibrandon/mtlog/core"
)

// FilterName is an additional pixel filter that can be composed onto
// the default alpha filter.
type FilterName string

const (
	FilterNearWhite FilterName = "near_white"
	FilterNearBlack FilterName = "near_black"
)

// ThemeName selects a built-in theme.Strategy.
type ThemeName string

const (
	ThemeBasic ThemeName = "basic"
	ThemeVivid ThemeName = "vivid"
	ThemeMuted ThemeName = "muted"
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// Options is the external-facing options struct for a single extraction:
//
//	{ max_colors, algorithm, theme?, filters?, seed?, kmeans?, dbscan? }
type Options struct {
	MaxColors int
	Algorithm extractor.Algorithm // "kmeans" or "dbscan"; defaults to "kmeans"
	Theme     ThemeName           // defaults to "basic"
	Filters   []FilterName        // additional filters beyond the default alpha filter
	Seed      *int64              // nil seeds the RNG from a system source

	KMeans *extractor.KMeansParams
	DBSCAN *extractor.DBSCANParams

	// Logger is optional; nil disables extraction logging. palettecore
	// never constructs its own logger, it only ever uses one supplied
	// by the caller.
	Logger core.Logger
}

// Extract runs the full pipeline: ImageData -> PixelFilter -> feature
// vectors -> Clusterer -> Clusters -> Swatches -> ThemeStrategy ->
// Palette. ctx is honored cooperatively: cancellation is checked
// between pixels during filtering and between iterations of the
// configured clustering algorithm, and fails with a CancelledError.
func Extract(ctx context.Context, img extractor.ImageData, opts Options) (*palette.Palette, error) {
	runID := uuid.New().String()[:8]

	eopts := extractor.DefaultOptions()
	if opts.MaxColors > 0 {
		eopts.MaxColors = opts.MaxColors
	}
	if opts.Algorithm != "" {
		eopts.Algorithm = opts.Algorithm
	}
	if opts.KMeans != nil {
		eopts.KMeans = *opts.KMeans
	}
	if opts.DBSCAN != nil {
		eopts.DBSCAN = *opts.DBSCAN
	}

	filters := []extractor.PixelFilter{extractor.AlphaFilter(1.0)}
	for _, name := range opts.Filters {
		if f, ok := resolveFilter(name); ok {
			filters = append(filters, f)
		}
	}
	eopts.Filters = filters

	strategy := resolveTheme(opts.Theme)
	rng := seedRNG(opts.Seed)
	cancel := cancelFunc(ctx)

	if opts.Logger != nil {
		opts.Logger.Debug(
			"extract {RunID}: up to {MaxColors} colors via {Algorithm}, theme {Theme}",
			runID, eopts.MaxColors, eopts.Algorithm, strategy.Name,
		)
	}

	swatches, err := extractor.Extract(img, eopts, rng, cancel, opts.Logger)
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Error("extract {RunID} failed: {Error}", runID, err)
		}
		return nil, err
	}

	return palette.New(swatches, strategy), nil
}

func resolveFilter(name FilterName) (extractor.PixelFilter, bool) {
	switch name {
	case FilterNearWhite:
		return extractor.NearWhiteFilter(95), true
	case FilterNearBlack:
		return extractor.NearBlackFilter(5), true
	default:
		return nil, false
	}
}

func resolveTheme(name ThemeName) theme.Strategy {
	strategy, ok := theme.ByName(string(name))
	if !ok {
		return theme.Basic
	}
	return strategy
}

// seedRNG returns a caller-seeded RNG, or one seeded from a system
// source when seed is nil. The RNG is per-call, never process-global,
// so concurrent extractions never share mutable random state.
func seedRNG(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}

	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err == nil {
		return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(buf[:]))))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func cancelFunc(ctx context.Context) func() bool {
	if ctx == nil {
		return nil
	}
	return func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}
}
