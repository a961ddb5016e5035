package chart

import (
	"iter"
	"math"
)

// Point is a pixel coordinate on the surface.
type Point struct {
	X int
	Y int
}

// PointSource produces a lazy sequence of indexed points for a render.
//
// Each call returns a fresh sequence; sequences share no cursor, so a pass
// may range over its source more than once.
type PointSource func(rc *RenderContext) iter.Seq2[int, Point]

// DataPoints yields one point per dataset value, in index order.
//
// Points are spaced [RenderContext.PointDistance] apart starting at the left
// margin, so a prime-padded dataset leaves its last slot empty. The y
// coordinate comes from [RenderContext.ValueToY].
func DataPoints(rc *RenderContext) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		g := rc.geometry
		dist := rc.PointDistance()
		for i, v := range rc.dataset {
			p := Point{
				X: int(math.Floor(g.MarginWidth + float64(i*dist))),
				Y: rc.ValueToY(v),
			}
			if !yield(i, p) {
				return
			}
		}
	}
}

// YAxisTicks yields the NumberOfLabelsOnYAxis+1 tick positions on the y
// axis, from the bottom of the render area to the top.
func YAxisTicks(rc *RenderContext) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		g := rc.geometry
		n := rc.numberOfLabelsOnYAxis
		x := int(math.Floor(g.MarginWidth))
		for k := 0; k <= n; k++ {
			y := g.Bottom() - float64(k)/float64(n)*g.RenderAreaHeight
			if !yield(k, Point{X: x, Y: int(math.Floor(y))}) {
				return
			}
		}
	}
}

// Segments yields the data points that start an x-axis segment: every
// point whose index is a multiple of IndexStepsPerSegment, and the last
// point. When the last index is itself a multiple it is yielded twice.
func Segments(rc *RenderContext) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		step := rc.indexStepsPerSegment
		last := len(rc.dataset) - 1
		for i, p := range DataPoints(rc) {
			if i%step == 0 {
				if !yield(i, p) {
					return
				}
			}
			if i == last {
				if !yield(i, p) {
					return
				}
			}
		}
	}
}

// Each ranges over the points of src and calls fn for each of them.
func Each(rc *RenderContext, src PointSource, fn func(i int, p Point)) {
	for i, p := range src(rc) {
		fn(i, p)
	}
}
