package surface

import (
	"slices"
	"unicode/utf8"

	"github.com/gogpu/gg"

	"github.com/matzehuels/linechart/pkg/chart"
)

const (
	defaultFontFamily = "sans-serif"
	defaultFontSize   = 10

	// fontCharWidth approximates the advance of one glyph as a share of the
	// font size.
	fontCharWidth = 0.55
)

// Measurer returns the advance width of s at a font size in pixels.
type Measurer func(s string, size float64) float64

// EstimateText is the default [Measurer]: every glyph is assumed to be
// fontCharWidth of the font size wide.
func EstimateText(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * fontCharWidth
}

// style is the drawing state covered by Save and Restore.
type style struct {
	stroke    chart.Color
	fill      chart.Color
	lineWidth float64
	dash      []float64
	family    string
	size      float64
	align     chart.TextAlign
	baseline  chart.TextBaseline
	matrix    gg.Matrix
}

func defaultStyle() style {
	return style{
		stroke:    chart.Black,
		fill:      chart.Black,
		lineWidth: 1,
		family:    defaultFontFamily,
		size:      defaultFontSize,
		align:     chart.AlignLeft,
		baseline:  chart.BaselineAlphabetic,
		matrix:    gg.Identity(),
	}
}

// stateStack holds the current style and the styles saved by Save.
//
// Restore with nothing saved is a no-op.
type stateStack struct {
	cur   style
	saved []style
}

func newStateStack() stateStack {
	return stateStack{cur: defaultStyle()}
}

func (s *stateStack) save() {
	c := s.cur
	c.dash = slices.Clone(c.dash)
	s.saved = append(s.saved, c)
}

func (s *stateStack) restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *stateStack) reset() {
	s.cur = defaultStyle()
	s.saved = nil
}

func (s *stateStack) translate(x, y float64) {
	s.cur.matrix = s.cur.matrix.Multiply(gg.Translate(x, y))
}

func (s *stateStack) rotate(angle float64) {
	s.cur.matrix = s.cur.matrix.Multiply(gg.Rotate(angle))
}

// alignOffset returns the share of the text width that lies left of the
// anchor point.
func alignOffset(a chart.TextAlign) float64 {
	switch a {
	case chart.AlignCenter:
		return 0.5
	case chart.AlignRight:
		return 1
	}
	return 0
}

// coversSurface reports whether the device-space rectangle covers the whole
// w×h surface.
func coversSurface(m gg.Matrix, x, y, rw, rh, w, h float64) bool {
	if !m.IsTranslation() {
		return false
	}
	x, y = x+m.C, y+m.F
	return x <= 0 && y <= 0 && x+rw >= w && y+rh >= h
}
