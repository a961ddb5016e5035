package chart

// TextAlign is the horizontal anchor of text drawn with [Surface.FillText].
type TextAlign string

// Text alignments.
const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// TextBaseline is the vertical anchor of text drawn with [Surface.FillText].
type TextBaseline string

// Text baselines.
const (
	BaselineTop        TextBaseline = "top"
	BaselineMiddle     TextBaseline = "middle"
	BaselineBottom     TextBaseline = "bottom"
	BaselineAlphabetic TextBaseline = "alphabetic"
)

// Surface is the 2D drawing surface a chart is rendered onto.
//
// The model follows an immediate-mode canvas: a current path built with
// BeginPath/MoveTo/LineTo/Arc and committed with Stroke or Fill, a current
// style (colors, line width, dash pattern, font, text anchoring) and a
// transform stack manipulated with Save/Restore/Translate/Rotate. Save and
// Restore also cover the style state.
//
// Coordinates are in pixels with the origin at the top-left corner and y
// growing downwards. The renderer never reads pixels back.
//
// Implementations live in package surface.
type Surface interface {
	// Size returns the current width and height in pixels.
	Size() (width, height float64)

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centered at (x, y) from angle start to end
	// (radians, clockwise in screen space).
	Arc(x, y, r, start, end float64)
	Stroke()
	Fill()

	SetStrokeColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(w float64)
	// SetLineDash sets the dash pattern; nil or empty means solid.
	SetLineDash(pattern []float64)

	SetFont(family string, size float64)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)
	FillText(s string, x, y float64)
	// MeasureText returns the advance width of s in the current font.
	MeasureText(s string) float64

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
}
