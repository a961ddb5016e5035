package surface

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/matzehuels/linechart/pkg/chart"
	"github.com/matzehuels/linechart/pkg/fonts"
)

// SVGOption configures an [SVG] surface.
type SVGOption func(*SVG)

// WithMeasurer sets the function MeasureText uses. The default is
// [EstimateText].
func WithMeasurer(m Measurer) SVGOption { return func(s *SVG) { s.measure = m } }

// WithTitle adds a <title> element to the document.
func WithTitle(title string) SVGOption { return func(s *SVG) { s.title = title } }

// WithEmbeddedFont embeds the default font as a data URI and lists it first
// in every font-family, so text renders with the metrics [fonts.Measure]
// reports.
func WithEmbeddedFont() SVGOption {
	return func(s *SVG) {
		s.embedFont = true
		s.measure = fonts.Measure
	}
}

// SVG is a [chart.Surface] that records drawing calls as SVG elements.
//
// Paths are transformed to device space as they are built, so the current
// transform at the time of MoveTo/LineTo/Arc applies, as on a canvas. Text
// and rectangles carry the transform as an attribute. ClearRect covering
// the whole surface discards everything drawn so far; smaller clears are
// ignored because SVG has no erase operation.
type SVG struct {
	width, height float64

	st        stateStack
	path      strings.Builder
	pathEmpty bool
	body      bytes.Buffer

	measure   Measurer
	title     string
	embedFont bool
}

// NewSVG creates an empty width×height SVG surface.
func NewSVG(width, height float64, opts ...SVGOption) *SVG {
	s := &SVG{
		width:     width,
		height:    height,
		st:        newStateStack(),
		pathEmpty: true,
		measure:   EstimateText,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(s.width), num(s.height), num(s.width), num(s.height))
	if s.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(s.title))
	}
	if s.embedFont {
		fmt.Fprintf(&buf, "  <defs><style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }</style></defs>\n",
			fonts.FontFamily, fonts.TTFBase64())
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// WriteTo writes the document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

func (s *SVG) Size() (float64, float64) { return s.width, s.height }

func (s *SVG) ClearRect(x, y, w, h float64) {
	if coversSurface(s.st.cur.matrix, x, y, w, h, s.width, s.height) {
		s.body.Reset()
	}
}

func (s *SVG) FillRect(x, y, w, h float64) {
	fmt.Fprintf(&s.body, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`+"\n",
		num(x), num(y), num(w), num(h), s.st.cur.fill.Hex(), s.transformAttr())
}

func (s *SVG) BeginPath() {
	s.path.Reset()
	s.pathEmpty = true
}

func (s *SVG) MoveTo(x, y float64) {
	p := s.st.cur.matrix.TransformPoint(gg.Pt(x, y))
	s.pathCmd("M", p.X, p.Y)
}

func (s *SVG) LineTo(x, y float64) {
	p := s.st.cur.matrix.TransformPoint(gg.Pt(x, y))
	if s.pathEmpty {
		s.pathCmd("M", p.X, p.Y)
		return
	}
	s.pathCmd("L", p.X, p.Y)
}

// Arc adds a clockwise arc. A sweep of 2π or more is written as two half
// circles since a single SVG arc cannot start and end at the same point.
func (s *SVG) Arc(x, y, r, start, end float64) {
	m := s.st.cur.matrix
	c := m.TransformPoint(gg.Pt(x, y))
	rot := math.Atan2(m.D, m.A)
	start += rot
	end += rot

	at := func(a float64) (float64, float64) {
		return c.X + r*math.Cos(a), c.Y + r*math.Sin(a)
	}

	sx, sy := at(start)
	if s.pathEmpty {
		s.pathCmd("M", sx, sy)
	} else {
		s.pathCmd("L", sx, sy)
	}

	sweep := end - start
	if sweep >= 2*math.Pi {
		mx, my := at(start + math.Pi)
		s.arcCmd(r, false, mx, my)
		s.arcCmd(r, false, sx, sy)
		return
	}
	for sweep < 0 {
		sweep += 2 * math.Pi
	}
	ex, ey := at(start + sweep)
	s.arcCmd(r, sweep > math.Pi, ex, ey)
}

func (s *SVG) Stroke() {
	if s.pathEmpty {
		return
	}
	st := s.st.cur
	fmt.Fprintf(&s.body, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
		s.path.String(), st.stroke.Hex(), num(st.lineWidth), dashAttr(st.dash))
}

func (s *SVG) Fill() {
	if s.pathEmpty {
		return
	}
	fmt.Fprintf(&s.body, `  <path d="%s" fill="%s"/>`+"\n", s.path.String(), s.st.cur.fill.Hex())
}

func (s *SVG) SetStrokeColor(c chart.Color) { s.st.cur.stroke = c }
func (s *SVG) SetFillColor(c chart.Color)   { s.st.cur.fill = c }
func (s *SVG) SetLineWidth(w float64)       { s.st.cur.lineWidth = w }

func (s *SVG) SetLineDash(pattern []float64) {
	s.st.cur.dash = append([]float64(nil), pattern...)
}

func (s *SVG) SetFont(family string, size float64) {
	s.st.cur.family = family
	s.st.cur.size = size
}

func (s *SVG) SetTextAlign(a chart.TextAlign)       { s.st.cur.align = a }
func (s *SVG) SetTextBaseline(b chart.TextBaseline) { s.st.cur.baseline = b }

func (s *SVG) FillText(text string, x, y float64) {
	st := s.st.cur
	fmt.Fprintf(&s.body,
		`  <text x="%s" y="%s"%s font-family="%s" font-size="%s" fill="%s" text-anchor="%s" dominant-baseline="%s">%s</text>`+"\n",
		num(x), num(y), s.transformAttr(), escapeXML(s.fontFamily()), num(st.size), st.fill.Hex(),
		textAnchor(st.align), dominantBaseline(st.baseline), escapeXML(text))
}

func (s *SVG) MeasureText(text string) float64 {
	return s.measure(text, s.st.cur.size)
}

func (s *SVG) Save()                  { s.st.save() }
func (s *SVG) Restore()               { s.st.restore() }
func (s *SVG) Translate(x, y float64) { s.st.translate(x, y) }
func (s *SVG) Rotate(angle float64)   { s.st.rotate(angle) }

func (s *SVG) fontFamily() string {
	if s.embedFont {
		return fmt.Sprintf("'%s', %s", fonts.FontFamily, s.st.cur.family)
	}
	return s.st.cur.family
}

func (s *SVG) transformAttr() string {
	m := s.st.cur.matrix
	if m.IsIdentity() {
		return ""
	}
	return fmt.Sprintf(` transform="matrix(%s %s %s %s %s %s)"`,
		num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F))
}

func (s *SVG) pathCmd(cmd string, x, y float64) {
	if !s.pathEmpty {
		s.path.WriteByte(' ')
	}
	fmt.Fprintf(&s.path, "%s%s %s", cmd, num(x), num(y))
	s.pathEmpty = false
}

func (s *SVG) arcCmd(r float64, large bool, x, y float64) {
	fmt.Fprintf(&s.path, " A%s %s 0 %d 1 %s %s", num(r), num(r), b2i(large), num(x), num(y))
}

func dashAttr(dash []float64) string {
	if len(dash) == 0 {
		return ""
	}
	parts := make([]string, len(dash))
	for i, d := range dash {
		parts[i] = num(d)
	}
	return fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, " "))
}

func textAnchor(a chart.TextAlign) string {
	switch a {
	case chart.AlignCenter:
		return "middle"
	case chart.AlignRight:
		return "end"
	}
	return "start"
}

func dominantBaseline(b chart.TextBaseline) string {
	switch b {
	case chart.BaselineTop:
		return "text-before-edge"
	case chart.BaselineMiddle:
		return "middle"
	case chart.BaselineBottom:
		return "text-after-edge"
	}
	return "alphabetic"
}

// num formats v with at most two decimals.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalize -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
