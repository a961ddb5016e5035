package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linechart/pkg/cache"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options when the cache allows it.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, log.Default() is used.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete options → layout → render pipeline.
//
// All chart settings are validated before anything is rendered, so a bad
// color or size never yields a cached artifact. ctx is checked between
// output formats; a single render is not interrupted.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Stage 1: Options
	cfg, err := opts.Config()
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	w, h, err := opts.PixelSize(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			Width:       w,
			Height:      h,
			FormatTimes: make(map[string]time.Duration, len(opts.Formats)),
		},
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	layout, err := layoutFor(opts.Dataset, cfg, w, h)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(layoutStart)

	opts.Logger.Debug("computed layout",
		"points", len(layout.Points),
		"segments", layout.Segments,
		"steps", layout.StepsPerSegment,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	chartHash := opts.ChartHash()
	renderStart := time.Now()
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		key := r.Keyer.ArtifactKey(chartHash, opts.ArtifactKeyOpts(format))

		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			result.Artifacts[format] = data
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
			opts.Logger.Debug("artifact from cache", "format", format, "bytes", len(data))
			continue
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
		}

		data, err := RenderFormat(ctx, format, opts.Dataset, cfg, w, h, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		result.Stats.FormatTimes[format] = time.Since(start)

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
		}

		opts.Logger.Info("rendered chart",
			"format", format,
			"bytes", len(data),
			"duration", result.Stats.FormatTimes[format])
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = len(result.CacheInfo.Hits) == len(opts.Formats)

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
