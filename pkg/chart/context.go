package chart

import (
	"math"
	"slices"
	"strconv"

	"github.com/matzehuels/linechart/pkg/errors"
)

// NumberOfLabelsOnYAxis is the number of intervals the y axis is divided
// into. The y-axis label arithmetic assumes base ten, so it is the only
// accepted value.
const NumberOfLabelsOnYAxis = 10

// degenerateRange is the range below which the y scale is centered on the
// average instead of spanning min..max.
const degenerateRange = 2

// Params is the input to [NewRenderContext].
type Params struct {
	Surface               Surface
	Geometry              *Geometry
	Statistics            *Statistics
	Dataset               []float64
	MaxLabelsOnXAxis      int
	NumberOfLabelsOnYAxis int
	Fonts                 Fonts
	Colors                Colors
	Titles                Titles
	XAxisLabels           []string
}

// RenderContext bundles everything a single render needs: the surface, its
// geometry, the dataset with its statistics and the resolved configuration.
//
// A RenderContext is built once per render by [NewRenderContext] and is
// read-only afterwards, so every pass of one render sees the same values.
// It holds a private copy of the dataset.
type RenderContext struct {
	surface    Surface
	geometry   Geometry
	statistics Statistics
	dataset    []float64

	maxLabelsOnXAxis      int
	numberOfLabelsOnYAxis int
	fonts                 Fonts
	colors                Colors
	titles                Titles
	xAxisLabels           []string

	numberOfSegments     int
	indexStepsPerSegment int

	// y scale
	adjustedMin   float64
	adjustedRange float64
	valueStep     float64 // data units per y interval
	pixelStep     float64 // pixels per y interval
}

// NewRenderContext validates p and derives the segment layout and y scale.
//
// Every parameter is checked before anything is derived; the error names
// the offending field.
func NewRenderContext(p Params) (*RenderContext, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	rc := &RenderContext{
		surface:               p.Surface,
		geometry:              *p.Geometry,
		statistics:            *p.Statistics,
		dataset:               slices.Clone(p.Dataset),
		maxLabelsOnXAxis:      p.MaxLabelsOnXAxis,
		numberOfLabelsOnYAxis: p.NumberOfLabelsOnYAxis,
		fonts:                 p.Fonts,
		colors:                p.Colors,
		titles:                p.Titles,
		xAxisLabels:           slices.Clone(p.XAxisLabels),
	}
	rc.numberOfSegments = numberOfSegments(p.Statistics.PrimeAdjustedLength, p.MaxLabelsOnXAxis)
	rc.indexStepsPerSegment = indexStepsPerSegment(len(p.Dataset), rc.numberOfSegments)
	rc.initScale()
	return rc, nil
}

func (p Params) validate() error {
	if p.Surface == nil {
		return errors.New(errors.ErrCodeInvalidConfiguration, "surface must not be nil")
	}
	if p.Geometry == nil {
		return errors.New(errors.ErrCodeInvalidGeometry, "geometry must not be nil")
	}
	if p.Statistics == nil {
		return errors.New(errors.ErrCodeInvalidDataset, "statistics must not be nil")
	}
	if err := validateDataset(p.Dataset); err != nil {
		return err
	}
	if p.Statistics.Count != len(p.Dataset) {
		return errors.New(errors.ErrCodeInvalidDataset,
			"statistics were computed for %d values, dataset has %d", p.Statistics.Count, len(p.Dataset))
	}
	if err := errors.ValidateIntRange("maxLabelsOnXAxis", p.MaxLabelsOnXAxis, 1, MaxLabelsOnXAxisLimit); err != nil {
		return err
	}
	if p.NumberOfLabelsOnYAxis != NumberOfLabelsOnYAxis {
		return errors.New(errors.ErrCodeInvalidConfiguration,
			"numberOfLabelsOnYAxis must be %d, got %d", NumberOfLabelsOnYAxis, p.NumberOfLabelsOnYAxis)
	}
	if err := p.Fonts.validate(); err != nil {
		return err
	}
	if err := p.Colors.validate(); err != nil {
		return err
	}
	if len(p.XAxisLabels) > 0 && len(p.XAxisLabels) != len(p.Dataset) {
		return errors.New(errors.ErrCodeInvalidConfiguration,
			"xAxisLabels must be empty or hold one label per value: got %d labels for %d values",
			len(p.XAxisLabels), len(p.Dataset))
	}
	return nil
}

// numberOfSegments reduces the slot count until it fits limit: halving while
// it exceeds twice the limit, then stepping down by one.
func numberOfSegments(slots, limit int) int {
	n := slots
	for n > limit {
		if n > 2*limit {
			n /= 2
		} else {
			n--
		}
	}
	return n
}

func indexStepsPerSegment(length, segments int) int {
	return max(int(math.Ceil(float64(length)/float64(segments))), 1)
}

func (rc *RenderContext) initScale() {
	st := rc.statistics
	if st.Range < degenerateRange {
		rc.adjustedMin = math.Floor(st.Average) - 5
		rc.adjustedRange = 10
	} else {
		rc.adjustedMin = st.Min
		rc.adjustedRange = st.Range
	}
	n := float64(rc.numberOfLabelsOnYAxis)
	rc.valueStep = math.Ceil(rc.adjustedRange / n)
	rc.pixelStep = math.Ceil(rc.geometry.RenderAreaHeight / n)
}

// Surface returns the drawing surface.
func (rc *RenderContext) Surface() Surface { return rc.surface }

// Geometry returns the surface geometry.
func (rc *RenderContext) Geometry() Geometry { return rc.geometry }

// Statistics returns the dataset statistics.
func (rc *RenderContext) Statistics() Statistics { return rc.statistics }

// Len returns the number of dataset values.
func (rc *RenderContext) Len() int { return len(rc.dataset) }

// Value returns the i-th dataset value.
func (rc *RenderContext) Value(i int) float64 { return rc.dataset[i] }

// Dataset returns a copy of the dataset.
func (rc *RenderContext) Dataset() []float64 { return slices.Clone(rc.dataset) }

// MaxLabelsOnXAxis returns the upper bound on x-axis segments.
func (rc *RenderContext) MaxLabelsOnXAxis() int { return rc.maxLabelsOnXAxis }

// NumberOfLabelsOnYAxis returns the number of y-axis intervals.
func (rc *RenderContext) NumberOfLabelsOnYAxis() int { return rc.numberOfLabelsOnYAxis }

// Fonts returns the font settings.
func (rc *RenderContext) Fonts() Fonts { return rc.fonts }

// Colors returns the color assignment.
func (rc *RenderContext) Colors() Colors { return rc.colors }

// Titles returns the axis titles.
func (rc *RenderContext) Titles() Titles { return rc.titles }

// NumberOfSegments returns the number of labeled x-axis segments.
func (rc *RenderContext) NumberOfSegments() int { return rc.numberOfSegments }

// IndexStepsPerSegment returns how many dataset indices one x-axis segment
// spans.
func (rc *RenderContext) IndexStepsPerSegment() int { return rc.indexStepsPerSegment }

// PointDistance returns the horizontal pixel distance between consecutive
// data points, at least 1.
func (rc *RenderContext) PointDistance() int {
	d := math.Floor(rc.geometry.RenderAreaWidth / float64(rc.statistics.PrimeAdjustedLength))
	return max(int(d), 1)
}

// ValueToY maps a data value to its y pixel coordinate.
//
// The scale is quantized to whole data units per y interval and whole
// pixels per interval, matching the y-axis labels. Values below the
// adjusted minimum map below the render area.
func (rc *RenderContext) ValueToY(v float64) int {
	y := rc.geometry.Bottom() - (v-rc.adjustedMin)/rc.valueStep*rc.pixelStep
	return int(math.Floor(y))
}

// YAxisLabel returns the label of the k-th y-axis tick, k in [0, 10].
func (rc *RenderContext) YAxisLabel(k int) string {
	v := rc.adjustedMin + float64(k)*rc.valueStep
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// XAxisLabel returns the label of dataset index i: the custom label when one
// label per value was configured, otherwise the index itself.
func (rc *RenderContext) XAxisLabel(i int) string {
	if len(rc.xAxisLabels) == len(rc.dataset) {
		return rc.xAxisLabels[i]
	}
	return strconv.Itoa(i)
}
