package pipeline

import (
	"github.com/matzehuels/linechart/pkg/chart"
	"github.com/matzehuels/linechart/pkg/surface"
)

// Layout is the derived layout of a chart: everything the drawing passes
// compute before touching a surface.
type Layout struct {
	Statistics      chart.Statistics
	Geometry        chart.Geometry
	Segments        int
	StepsPerSegment int
	PointDistance   int
	Points          []chart.Point
	Ticks           []Tick
	XLabels         []XLabel
}

// Tick is one y-axis tick with its label.
type Tick struct {
	Label string
	Y     int
}

// XLabel is one x-axis label position.
type XLabel struct {
	Index int
	Label string
	X     int
}

// ComputeLayout validates the chart described by opts and derives its
// layout without rendering it.
func ComputeLayout(opts Options) (Layout, error) {
	cfg, err := opts.Config()
	if err != nil {
		return Layout{}, err
	}
	w, h, err := opts.PixelSize(cfg)
	if err != nil {
		return Layout{}, err
	}
	return layoutFor(opts.Dataset, cfg, w, h)
}

func layoutFor(dataset []float64, cfg chart.Config, w, h float64) (Layout, error) {
	rc, err := chart.Prepare(surface.NewRecorder(w, h), dataset, cfg)
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		Statistics:      rc.Statistics(),
		Geometry:        rc.Geometry(),
		Segments:        rc.NumberOfSegments(),
		StepsPerSegment: rc.IndexStepsPerSegment(),
		PointDistance:   rc.PointDistance(),
		Points:          make([]chart.Point, 0, rc.Len()),
	}
	for _, p := range chart.DataPoints(rc) {
		l.Points = append(l.Points, p)
	}
	for k, p := range chart.YAxisTicks(rc) {
		l.Ticks = append(l.Ticks, Tick{Label: rc.YAxisLabel(k), Y: p.Y})
	}
	for i, p := range chart.Segments(rc) {
		l.XLabels = append(l.XLabels, XLabel{Index: i, Label: rc.XAxisLabel(i), X: p.X})
	}
	return l, nil
}
