package chart

import "time"

// RenderOption configures [Render].
type RenderOption func(*renderOptions)

type renderOptions struct {
	marginRatio float64
	onPass      func(name string, elapsed time.Duration)
	passes      []Pass
}

// WithGeometryMarginRatio overrides [DefaultMarginRatio] for the render.
func WithGeometryMarginRatio(r float64) RenderOption {
	return func(o *renderOptions) {
		o.marginRatio = r
	}
}

// WithPassObserver registers fn to be called after each pass with the pass
// name and the time it took.
func WithPassObserver(fn func(name string, elapsed time.Duration)) RenderOption {
	return func(o *renderOptions) {
		o.onPass = fn
	}
}

// WithPasses replaces the pass list, for example to draw a subset of
// [Passes].
func WithPasses(passes []Pass) RenderOption {
	return func(o *renderOptions) {
		o.passes = passes
	}
}

// Prepare validates the inputs of a render and builds its [RenderContext]
// without drawing anything. The geometry comes from the surface's current
// size.
func Prepare(s Surface, dataset []float64, cfg Config, opts ...RenderOption) (*RenderContext, error) {
	o := newRenderOptions(opts)
	return prepare(s, dataset, cfg, o)
}

func prepare(s Surface, dataset []float64, cfg Config, o renderOptions) (*RenderContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	geom, err := GeometryOf(s, WithMarginRatio(o.marginRatio))
	if err != nil {
		return nil, err
	}
	stats, err := NewStatistics(dataset)
	if err != nil {
		return nil, err
	}
	return NewRenderContext(Params{
		Surface:               s,
		Geometry:              geom,
		Statistics:            stats,
		Dataset:               dataset,
		MaxLabelsOnXAxis:      cfg.maxLabelsOnXAxis,
		NumberOfLabelsOnYAxis: NumberOfLabelsOnYAxis,
		Fonts:                 cfg.fonts,
		Colors:                cfg.colors,
		Titles:                cfg.titles,
		XAxisLabels:           cfg.xAxisLabels,
	})
}

// Render draws dataset as a line chart onto s.
//
// All inputs are validated before the first surface call, so an error
// leaves the surface untouched. The surface size is read on every call.
func Render(s Surface, dataset []float64, cfg Config, opts ...RenderOption) error {
	o := newRenderOptions(opts)
	rc, err := prepare(s, dataset, cfg, o)
	if err != nil {
		return err
	}
	for _, p := range o.passes {
		start := time.Now()
		p.Draw(rc, p.Source)
		if o.onPass != nil {
			o.onPass(p.Name, time.Since(start))
		}
	}
	return nil
}

func newRenderOptions(opts []RenderOption) renderOptions {
	o := renderOptions{marginRatio: DefaultMarginRatio}
	for _, opt := range opts {
		opt(&o)
	}
	if o.passes == nil {
		o.passes = Passes()
	}
	return o
}
