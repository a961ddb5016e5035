// Package pipeline provides the chart rendering pipeline for linechart.
//
// This package implements the complete options → layout → render pipeline
// used by the CLI. By centralizing this logic, defaults and validation are
// defined once, whatever the entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Options: Decode a TOML chart file and apply defaults
//  2. Layout: Derive statistics, geometry and segments for the target size
//  3. Render: Draw the chart once per output format (SVG, PNG, JPEG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, logger) // no cache
//	opts := pipeline.Options{
//	    Dataset: []float64{3, 1, 4, 1, 5, 9},
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Options from a chart file
//	opts, err := pipeline.LoadOptions("chart.toml")
//
//	// Layout only
//	layout, err := pipeline.ComputeLayout(opts)
package pipeline

import (
	"encoding/json"
	"io"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linechart/pkg/cache"
	"github.com/matzehuels/linechart/pkg/chart"
	"github.com/matzehuels/linechart/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth
// =============================================================================

const (
	// DefaultViewportWidth is the width percentages are resolved against.
	DefaultViewportWidth = 1000.0

	// DefaultViewportHeight is the height percentages are resolved against.
	DefaultViewportHeight = 750.0

	// DefaultQuality is the JPEG quality.
	DefaultQuality = 90
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJPEG: true,
	FormatPDF:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
// This struct is decoded from TOML chart files.
type Options struct {
	// Data
	Dataset []float64 `toml:"dataset"`
	Labels  []string  `toml:"labels"` // one per value, or none

	// Appearance
	Colors    map[string]string `toml:"colors"` // slot name → color name
	Fonts     FontOptions       `toml:"fonts"`
	Titles    TitleOptions      `toml:"titles"`
	MaxLabels int               `toml:"max_labels"`

	// Size as CSS lengths; percentages resolve against the viewport
	Width          string  `toml:"width"`
	Height         string  `toml:"height"`
	ViewportWidth  float64 `toml:"viewport_width"`
	ViewportHeight float64 `toml:"viewport_height"`

	// Output
	Formats   []string `toml:"formats"`
	Quality   int      `toml:"quality"`    // JPEG only
	EmbedFont bool     `toml:"embed_font"` // SVG only
	Title     string   `toml:"title"`      // SVG document title

	// Runtime options (not decoded)
	Logger *log.Logger `toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// FontOptions overrides the default fonts. Zero fields keep the default.
type FontOptions struct {
	Family    string  `toml:"family"`
	LabelSize float64 `toml:"label_size"`
	TitleSize float64 `toml:"title_size"`
}

// TitleOptions overrides the axis titles. A nil title keeps the default; an
// empty one hides the title.
type TitleOptions struct {
	X *string `toml:"x"`
	Y *string `toml:"y"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the derived chart layout.
	Layout Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// CacheInfo tracks cache hits of the render stage.
type CacheInfo struct {
	// Hits lists the formats served from the cache.
	Hits []string

	// RenderHit is true when every artifact came from the cache.
	RenderHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Width       float64
	Height      float64
	LayoutTime  time.Duration
	RenderTime  time.Duration
	FormatTimes map[string]time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, jpeg, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeFormat lowercases a format name and maps "jpg" to "jpeg".
func NormalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "jpg" {
		return FormatJPEG
	}
	return f
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the output options and applies defaults.
// Chart settings are validated by Config. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateIntRange("quality", o.Quality, 1, 100); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for sizing and output.
func (o *Options) SetRenderDefaults() {
	if o.Width == "" {
		o.Width = chart.DefaultWidth
	}
	if o.Height == "" {
		o.Height = chart.DefaultHeight
	}
	if o.ViewportWidth == 0 {
		o.ViewportWidth = DefaultViewportWidth
	}
	if o.ViewportHeight == 0 {
		o.ViewportHeight = DefaultViewportHeight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	formats := make([]string, 0, len(o.Formats))
	for _, f := range o.Formats {
		f = NormalizeFormat(f)
		if !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	o.Formats = formats
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Config builds the chart configuration described by the options, starting
// from [chart.DefaultConfig]. The first invalid setting is returned as error.
func (o *Options) Config() (chart.Config, error) {
	cfg := chart.DefaultConfig()
	var err error

	if len(o.Colors) > 0 {
		updates := make([]chart.ColorUpdate, 0, len(o.Colors))
		for _, slot := range slices.Sorted(maps.Keys(o.Colors)) {
			updates = append(updates, chart.ColorUpdate{
				Slot:  chart.ColorSlot(slot),
				Color: chart.Color(o.Colors[slot]),
			})
		}
		if cfg, err = cfg.WithColors(updates...); err != nil {
			return cfg, err
		}
	}

	if o.Fonts != (FontOptions{}) {
		fonts := cfg.Fonts()
		if o.Fonts.Family != "" {
			fonts.Family = o.Fonts.Family
		}
		if o.Fonts.LabelSize != 0 {
			fonts.LabelSize = o.Fonts.LabelSize
		}
		if o.Fonts.TitleSize != 0 {
			fonts.TitleSize = o.Fonts.TitleSize
		}
		if cfg, err = cfg.WithFonts(fonts); err != nil {
			return cfg, err
		}
	}

	if o.Titles.X != nil || o.Titles.Y != nil {
		if cfg, err = cfg.WithAxisTitles(chart.TitleUpdate{X: o.Titles.X, Y: o.Titles.Y}); err != nil {
			return cfg, err
		}
	}

	if len(o.Labels) > 0 {
		if cfg, err = cfg.WithXAxisLabels(o.Labels); err != nil {
			return cfg, err
		}
	}

	if o.MaxLabels != 0 {
		if cfg, err = cfg.WithMaxLabelsOnXAxis(o.MaxLabels); err != nil {
			return cfg, err
		}
	}

	width, height := o.Width, o.Height
	if width == "" {
		width = chart.DefaultWidth
	}
	if height == "" {
		height = chart.DefaultHeight
	}
	return cfg.WithSize(chart.Size{Width: width, Height: height})
}

// PixelSize resolves the configured size against the viewport and rounds it
// up to whole pixels, so every output format sees the same geometry.
func (o *Options) PixelSize(cfg chart.Config) (width, height float64, err error) {
	vw, vh := o.ViewportWidth, o.ViewportHeight
	if vw == 0 {
		vw = DefaultViewportWidth
	}
	if vh == 0 {
		vh = DefaultViewportHeight
	}
	width, height, err = cfg.Size().Resolve(vw, vh)
	if err != nil {
		return 0, 0, err
	}
	return math.Ceil(width), math.Ceil(height), nil
}

// =============================================================================
// Cache Keys
// =============================================================================

// ChartHash identifies the chart opts describe: the dataset and every
// setting that changes the drawing. Output settings are left out; see
// [Options.ArtifactKeyOpts].
func (o *Options) ChartHash() string {
	data, _ := json.Marshal(struct {
		Dataset        []float64         `json:"dataset"`
		Labels         []string          `json:"labels"`
		Colors         map[string]string `json:"colors"`
		Fonts          FontOptions       `json:"fonts"`
		Titles         TitleOptions      `json:"titles"`
		MaxLabels      int               `json:"max_labels"`
		Width          string            `json:"width"`
		Height         string            `json:"height"`
		ViewportWidth  float64           `json:"viewport_width"`
		ViewportHeight float64           `json:"viewport_height"`
	}{
		o.Dataset, o.Labels, o.Colors, o.Fonts, o.Titles, o.MaxLabels,
		o.Width, o.Height, o.ViewportWidth, o.ViewportHeight,
	})
	return cache.Hash(data)
}

// ArtifactKeyOpts returns the output settings that apply to format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatJPEG:
		k.Quality = o.Quality
	case FormatSVG:
		k.EmbedFont = o.EmbedFont
		k.Title = o.Title
	case FormatPDF:
		k.Title = o.Title
	}
	return k
}
