package chart

import (
	"slices"
	"strings"
	"unicode"

	"github.com/matzehuels/linechart/pkg/errors"
)

// Default configuration values.
const (
	DefaultFontFamily       = "Arial"
	DefaultLabelFontSize    = 12
	DefaultTitleFontSize    = 16
	DefaultXAxisTitle       = "Index"
	DefaultYAxisTitle       = "Values"
	DefaultMaxLabelsOnXAxis = 20
	DefaultWidth            = "800px"
	DefaultHeight           = "600px"

	// MaxLabelsOnXAxisLimit bounds [Config.WithMaxLabelsOnXAxis].
	MaxLabelsOnXAxisLimit = 50

	// MaxDimension is the largest width or height, in pixels, a size may
	// resolve to.
	MaxDimension = 16384
)

// Fonts holds the font family and the two font sizes the chart uses.
type Fonts struct {
	Family    string
	LabelSize float64
	TitleSize float64
}

func (f Fonts) validate() error {
	if err := errors.ValidateText("fontFamily", f.Family); err != nil {
		return err
	}
	if err := errors.ValidatePositive("fontSizeLabel", f.LabelSize); err != nil {
		return err
	}
	return errors.ValidatePositive("fontSizeTitle", f.TitleSize)
}

// Titles holds the axis titles. An empty title is not drawn.
type Titles struct {
	X string
	Y string
}

// TitleUpdate replaces the axis titles that are non-nil.
type TitleUpdate struct {
	X *string
	Y *string
}

// Size is the requested chart size as CSS lengths ("800px", "80%").
type Size struct {
	Width  string
	Height string
}

func (s Size) validate() error {
	if _, _, err := errors.ParseLength("width", s.Width); err != nil {
		return err
	}
	_, _, err := errors.ParseLength("height", s.Height)
	return err
}

// Resolve converts the size to pixels. Percentages are taken of the viewport
// dimension on the same axis. A dimension larger than [MaxDimension] is an
// error.
func (s Size) Resolve(viewportWidth, viewportHeight float64) (width, height float64, err error) {
	width, err = resolveLength("width", s.Width, viewportWidth)
	if err != nil {
		return 0, 0, err
	}
	height, err = resolveLength("height", s.Height, viewportHeight)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func resolveLength(field, length string, viewport float64) (float64, error) {
	v, unit, err := errors.ParseLength(field, length)
	if err != nil {
		return 0, err
	}
	if unit != errors.UnitPixel {
		if err := errors.ValidatePositive("viewport "+field, viewport); err != nil {
			return 0, err
		}
		v = v / 100 * viewport
	}
	if v > MaxDimension {
		return 0, errors.New(errors.ErrCodeInvalidConfiguration,
			"%s %q resolves to %gpx, at most %dpx is supported", field, length, v, MaxDimension)
	}
	return v, nil
}

// Config is the chart configuration.
//
// Config is an immutable value. Each With method validates its argument and
// returns an updated copy; on error the receiver is returned unchanged so a
// failed update never leaves a partially applied configuration.
type Config struct {
	colors           Colors
	fonts            Fonts
	titles           Titles
	xAxisLabels      []string
	maxLabelsOnXAxis int
	size             Size
}

// DefaultConfig returns the configuration a chart is drawn with unless told
// otherwise.
func DefaultConfig() Config {
	return Config{
		colors: DefaultColors(),
		fonts: Fonts{
			Family:    DefaultFontFamily,
			LabelSize: DefaultLabelFontSize,
			TitleSize: DefaultTitleFontSize,
		},
		titles:           Titles{X: DefaultXAxisTitle, Y: DefaultYAxisTitle},
		maxLabelsOnXAxis: DefaultMaxLabelsOnXAxis,
		size:             Size{Width: DefaultWidth, Height: DefaultHeight},
	}
}

// Colors returns the color assignment.
func (c Config) Colors() Colors { return c.colors }

// Fonts returns the font settings.
func (c Config) Fonts() Fonts { return c.fonts }

// Titles returns the axis titles.
func (c Config) Titles() Titles { return c.titles }

// XAxisLabels returns a copy of the custom x-axis labels.
func (c Config) XAxisLabels() []string { return slices.Clone(c.xAxisLabels) }

// MaxLabelsOnXAxis returns the upper bound on x-axis segments.
func (c Config) MaxLabelsOnXAxis() int { return c.maxLabelsOnXAxis }

// Size returns the requested chart size.
func (c Config) Size() Size { return c.size }

// WithColors applies the updates in order. A slot updated more than once
// takes the last value. If any update names an unknown slot or a color
// outside the palette, none of them are applied.
func (c Config) WithColors(updates ...ColorUpdate) (Config, error) {
	if len(updates) == 0 {
		return c, errors.New(errors.ErrCodeInvalidConfiguration,
			"color settings must contain at least one update")
	}
	for _, u := range updates {
		if err := u.validate(); err != nil {
			return c, err
		}
	}
	next := c
	for _, u := range updates {
		*next.colors.ptr(u.Slot) = u.Color
	}
	return next, nil
}

// WithFonts replaces the font settings.
func (c Config) WithFonts(f Fonts) (Config, error) {
	if err := f.validate(); err != nil {
		return c, err
	}
	next := c
	next.fonts = f
	return next, nil
}

// WithAxisTitles replaces the titles present in u. At least one must be set.
func (c Config) WithAxisTitles(u TitleUpdate) (Config, error) {
	if u.X == nil && u.Y == nil {
		return c, errors.New(errors.ErrCodeInvalidConfiguration,
			"axis titles must set at least one of x or y")
	}
	next := c
	if u.X != nil {
		next.titles.X = *u.X
	}
	if u.Y != nil {
		next.titles.Y = *u.Y
	}
	return next, nil
}

// WithXAxisLabels sets custom x-axis labels. The labels are used only when
// there is exactly one per dataset value; a nil or empty slice restores the
// index labels. The count is checked against the dataset when rendering.
// Labels containing control characters are rejected.
func (c Config) WithXAxisLabels(labels []string) (Config, error) {
	for i, l := range labels {
		if strings.IndexFunc(l, unicode.IsControl) >= 0 {
			return c, errors.New(errors.ErrCodeInvalidConfiguration,
				"xAxisLabels[%d] = %q contains control characters", i, l)
		}
	}
	next := c
	next.xAxisLabels = slices.Clone(labels)
	return next, nil
}

// WithMaxLabelsOnXAxis bounds the number of x-axis segments. n must be in
// [1, 50].
func (c Config) WithMaxLabelsOnXAxis(n int) (Config, error) {
	if err := errors.ValidateIntRange("maxLabelsOnXAxis", n, 1, MaxLabelsOnXAxisLimit); err != nil {
		return c, err
	}
	next := c
	next.maxLabelsOnXAxis = n
	return next, nil
}

// WithSize sets the requested chart size. Both lengths must be positive and
// end in "px" or "%".
func (c Config) WithSize(s Size) (Config, error) {
	if err := s.validate(); err != nil {
		return c, err
	}
	next := c
	next.size = s
	return next, nil
}

// Validate checks the whole configuration. It is called by [Render]; a
// zero Config fails.
func (c Config) Validate() error {
	if err := c.colors.validate(); err != nil {
		return err
	}
	if err := c.fonts.validate(); err != nil {
		return err
	}
	if err := errors.ValidateIntRange("maxLabelsOnXAxis", c.maxLabelsOnXAxis, 1, MaxLabelsOnXAxisLimit); err != nil {
		return err
	}
	return c.size.validate()
}
