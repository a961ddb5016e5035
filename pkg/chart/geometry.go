package chart

import (
	"math"

	"github.com/matzehuels/linechart/pkg/errors"
)

// DefaultMarginRatio is the share of each surface dimension reserved as a
// margin on either side of the render area.
const DefaultMarginRatio = 0.10

// Geometry describes the pixel layout of a drawing surface.
//
// The render area is the surface less a margin on each side:
//
//	RenderAreaWidth  = Width  - 2*MarginWidth
//	RenderAreaHeight = Height - 2*MarginHeight
type Geometry struct {
	Width            float64
	Height           float64
	MarginWidth      float64
	MarginHeight     float64
	RenderAreaWidth  float64
	RenderAreaHeight float64
}

// GeometryOption configures a [Geometry] built by [NewGeometry].
type GeometryOption func(*geometryConfig)

type geometryConfig struct {
	marginRatio float64
}

// WithMarginRatio sets the margin as a fraction of each dimension. The ratio
// must lie in [0, 0.5); values outside that range are rejected by
// [NewGeometry].
func WithMarginRatio(r float64) GeometryOption {
	return func(c *geometryConfig) {
		c.marginRatio = r
	}
}

// NewGeometry computes the layout of a width×height surface.
//
// Width and height must be finite and positive. Errors carry
// [errors.ErrCodeInvalidGeometry].
func NewGeometry(width, height float64, opts ...GeometryOption) (*Geometry, error) {
	cfg := geometryConfig{marginRatio: DefaultMarginRatio}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateDimension("width", width); err != nil {
		return nil, err
	}
	if err := validateDimension("height", height); err != nil {
		return nil, err
	}
	r := cfg.marginRatio
	if math.IsNaN(r) || r < 0 || r >= 0.5 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry,
			"margin ratio must be in [0, 0.5), got %v", r)
	}

	mw, mh := width*r, height*r
	return &Geometry{
		Width:            width,
		Height:           height,
		MarginWidth:      mw,
		MarginHeight:     mh,
		RenderAreaWidth:  width - 2*mw,
		RenderAreaHeight: height - 2*mh,
	}, nil
}

// GeometryOf computes the layout of the surface at its current size.
func GeometryOf(s Surface, opts ...GeometryOption) (*Geometry, error) {
	if s == nil {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "surface is nil")
	}
	w, h := s.Size()
	return NewGeometry(w, h, opts...)
}

// Bottom returns the y coordinate of the lower edge of the render area.
func (g *Geometry) Bottom() float64 {
	return g.MarginHeight + g.RenderAreaHeight
}

// Right returns the x coordinate of the right edge of the render area.
func (g *Geometry) Right() float64 {
	return g.MarginWidth + g.RenderAreaWidth
}

func validateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"surface %s must be a positive finite number, got %v", name, v)
	}
	return nil
}
