package chart

import "math"

const (
	lineWidth    = 1
	markerRadius = 3
)

// guideDash is the dotted pattern of the guide lines.
var guideDash = []float64{1, 5}

// Pass is one independent drawing step of a render.
//
// Passes that iterate over points carry their Source; Draw receives it so
// the same drawing code can be pointed at another sequence. Passes that
// draw fixed shapes have a nil Source.
type Pass struct {
	Name   string
	Source PointSource
	Draw   func(rc *RenderContext, src PointSource)
}

// Passes returns the render passes in drawing order. Later passes paint over
// earlier ones.
func Passes() []Pass {
	return []Pass{
		{Name: "background", Draw: drawBackground},
		{Name: "y-axis", Draw: drawYAxis},
		{Name: "y-axis-title", Draw: drawYAxisTitle},
		{Name: "y-axis-labels", Source: YAxisTicks, Draw: drawYAxisLabels},
		{Name: "horizontal-guides", Source: YAxisTicks, Draw: drawHorizontalGuides},
		{Name: "x-axis", Draw: drawXAxis},
		{Name: "x-axis-title", Draw: drawXAxisTitle},
		{Name: "x-axis-labels", Source: Segments, Draw: drawXAxisLabels},
		{Name: "vertical-guides", Source: Segments, Draw: drawVerticalGuides},
		{Name: "line", Source: DataPoints, Draw: drawLine},
		{Name: "markers", Source: DataPoints, Draw: drawMarkers},
		{Name: "zero-line", Draw: drawZeroLine},
	}
}

func drawBackground(rc *RenderContext, _ PointSource) {
	s, g := rc.surface, rc.geometry
	s.ClearRect(0, 0, g.Width, g.Height)
	s.SetFillColor(rc.colors.Background)
	s.FillRect(0, 0, g.Width, g.Height)
}

func drawYAxis(rc *RenderContext, _ PointSource) {
	g := rc.geometry
	strokeLine(rc.surface, rc.colors.Axis, nil,
		g.MarginWidth, g.MarginHeight, g.MarginWidth, g.Bottom())
}

func drawXAxis(rc *RenderContext, _ PointSource) {
	g := rc.geometry
	strokeLine(rc.surface, rc.colors.Axis, nil,
		g.MarginWidth, g.Bottom(), g.Right(), g.Bottom())
}

// drawYAxisTitle writes the y title rotated a quarter turn counterclockwise,
// centered on the render area and one title height from the left edge.
func drawYAxisTitle(rc *RenderContext, _ PointSource) {
	if rc.titles.Y == "" {
		return
	}
	s, g := rc.surface, rc.geometry
	s.Save()
	s.Translate(rc.fonts.TitleSize, g.MarginHeight+g.RenderAreaHeight/2)
	s.Rotate(-math.Pi / 2)
	s.SetFont(rc.fonts.Family, rc.fonts.TitleSize)
	s.SetFillColor(rc.colors.Title)
	s.SetTextAlign(AlignCenter)
	s.SetTextBaseline(BaselineBottom)
	s.FillText(rc.titles.Y, 0, 0)
	s.Restore()
}

// drawXAxisTitle writes the x title centered under the render area, resting
// on the bottom edge of the surface.
func drawXAxisTitle(rc *RenderContext, _ PointSource) {
	if rc.titles.X == "" {
		return
	}
	s, g := rc.surface, rc.geometry
	s.Save()
	s.SetFont(rc.fonts.Family, rc.fonts.TitleSize)
	s.SetFillColor(rc.colors.Title)
	s.SetTextAlign(AlignCenter)
	s.SetTextBaseline(BaselineBottom)
	s.FillText(rc.titles.X, g.MarginWidth+math.Floor(g.RenderAreaWidth/2), 2*g.MarginHeight+g.RenderAreaHeight)
	s.Restore()
}

// drawYAxisLabels writes the tick values right-aligned left of the axis.
// A label wider than the room left of the axis is skipped.
func drawYAxisLabels(rc *RenderContext, src PointSource) {
	s := rc.surface
	gap := math.Floor(rc.fonts.LabelSize / 2)
	room := rc.geometry.MarginWidth - gap

	s.Save()
	s.SetFont(rc.fonts.Family, rc.fonts.LabelSize)
	s.SetFillColor(rc.colors.Label)
	s.SetTextAlign(AlignRight)
	s.SetTextBaseline(BaselineMiddle)
	Each(rc, src, func(k int, p Point) {
		label := rc.YAxisLabel(k)
		if s.MeasureText(label) > room {
			return
		}
		s.FillText(label, float64(p.X)-gap, float64(p.Y))
	})
	s.Restore()
}

// drawXAxisLabels writes one label per segment start, centered under the
// point and two label heights below the axis. A label wider than the
// distance to the next segment, or to the previously drawn label, is
// skipped. The repeated last index is drawn at most once.
func drawXAxisLabels(rc *RenderContext, src PointSource) {
	s := rc.surface
	room := float64(rc.PointDistance() * rc.indexStepsPerSegment)
	y := rc.geometry.Bottom() + math.Ceil(rc.fonts.LabelSize*2)

	s.Save()
	s.SetFont(rc.fonts.Family, rc.fonts.LabelSize)
	s.SetFillColor(rc.colors.Label)
	s.SetTextAlign(AlignCenter)
	s.SetTextBaseline(BaselineTop)
	seen, drawn, prevX := -1, false, 0
	Each(rc, src, func(i int, p Point) {
		if i == seen {
			return
		}
		seen = i
		space := room
		if drawn {
			space = math.Min(space, float64(p.X-prevX))
		}
		label := rc.XAxisLabel(i)
		if s.MeasureText(label) > space {
			return
		}
		s.FillText(label, float64(p.X), y)
		drawn, prevX = true, p.X
	})
	s.Restore()
}

func drawHorizontalGuides(rc *RenderContext, src PointSource) {
	g := rc.geometry
	Each(rc, src, func(_ int, p Point) {
		y := float64(p.Y)
		strokeLine(rc.surface, rc.colors.GuideLine, guideDash, g.MarginWidth, y, g.Right(), y)
	})
}

func drawVerticalGuides(rc *RenderContext, src PointSource) {
	g := rc.geometry
	Each(rc, src, func(_ int, p Point) {
		x := float64(p.X)
		strokeLine(rc.surface, rc.colors.GuideLine, guideDash, x, g.Bottom(), x, g.MarginHeight)
	})
}

// drawLine strokes one polyline through every point of src.
func drawLine(rc *RenderContext, src PointSource) {
	s := rc.surface
	s.BeginPath()
	s.SetStrokeColor(rc.colors.GraphLine)
	s.SetLineWidth(lineWidth)
	s.SetLineDash(nil)
	first := true
	Each(rc, src, func(_ int, p Point) {
		if first {
			s.MoveTo(float64(p.X), float64(p.Y))
			first = false
			return
		}
		s.LineTo(float64(p.X), float64(p.Y))
	})
	s.Stroke()
}

func drawMarkers(rc *RenderContext, src PointSource) {
	s := rc.surface
	s.SetFillColor(rc.colors.GraphDot)
	Each(rc, src, func(_ int, p Point) {
		s.BeginPath()
		s.Arc(float64(p.X), float64(p.Y), markerRadius, 0, 2*math.Pi)
		s.Fill()
	})
}

// drawZeroLine marks y = 0 across the render area when the data crosses
// zero. It uses the same scale as the data points.
func drawZeroLine(rc *RenderContext, _ PointSource) {
	st := rc.statistics
	if !(st.Min < 0 && st.Max > 0) {
		return
	}
	g := rc.geometry
	y := float64(rc.ValueToY(0))
	strokeLine(rc.surface, rc.colors.ZeroLine, nil, g.MarginWidth, y, g.Right(), y)
}

func strokeLine(s Surface, c Color, dash []float64, x1, y1, x2, y2 float64) {
	s.BeginPath()
	s.SetStrokeColor(c)
	s.SetLineWidth(lineWidth)
	s.SetLineDash(dash)
	s.MoveTo(x1, y1)
	s.LineTo(x2, y2)
	s.Stroke()
}
