package chart

import (
	"fmt"
	"strings"
)

func containsString(s, sub string) bool {
	return strings.Contains(s, sub)
}

// fakeSurface records every call as a formatted string.
type fakeSurface struct {
	w, h float64
	ops  []string
	font float64
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{w: w, h: h}
}

func (f *fakeSurface) record(format string, args ...any) {
	f.ops = append(f.ops, fmt.Sprintf(format, args...))
}

func (f *fakeSurface) Size() (float64, float64) { return f.w, f.h }

func (f *fakeSurface) ClearRect(x, y, w, h float64) { f.record("ClearRect(%g,%g,%g,%g)", x, y, w, h) }
func (f *fakeSurface) FillRect(x, y, w, h float64)  { f.record("FillRect(%g,%g,%g,%g)", x, y, w, h) }
func (f *fakeSurface) BeginPath()                   { f.record("BeginPath") }
func (f *fakeSurface) MoveTo(x, y float64)          { f.record("MoveTo(%g,%g)", x, y) }
func (f *fakeSurface) LineTo(x, y float64)          { f.record("LineTo(%g,%g)", x, y) }
func (f *fakeSurface) Arc(x, y, r, s, e float64)    { f.record("Arc(%g,%g,%g)", x, y, r) }
func (f *fakeSurface) Stroke()                      { f.record("Stroke") }
func (f *fakeSurface) Fill()                        { f.record("Fill") }
func (f *fakeSurface) SetStrokeColor(c Color)       { f.record("SetStrokeColor(%s)", c) }
func (f *fakeSurface) SetFillColor(c Color)         { f.record("SetFillColor(%s)", c) }
func (f *fakeSurface) SetLineWidth(w float64)       { f.record("SetLineWidth(%g)", w) }
func (f *fakeSurface) SetLineDash(p []float64)      { f.record("SetLineDash(%v)", p) }
func (f *fakeSurface) SetTextAlign(a TextAlign)     { f.record("SetTextAlign(%s)", a) }
func (f *fakeSurface) SetTextBaseline(b TextBaseline) {
	f.record("SetTextBaseline(%s)", b)
}
func (f *fakeSurface) FillText(s string, x, y float64) { f.record("FillText(%s,%g,%g)", s, x, y) }
func (f *fakeSurface) Save()                           { f.record("Save") }
func (f *fakeSurface) Restore()                        { f.record("Restore") }
func (f *fakeSurface) Translate(x, y float64)          { f.record("Translate(%g,%g)", x, y) }
func (f *fakeSurface) Rotate(a float64)                { f.record("Rotate(%.4f)", a) }

func (f *fakeSurface) SetFont(family string, size float64) {
	f.font = size
	f.record("SetFont(%s,%g)", family, size)
}

// MeasureText assumes every glyph is half the font size wide.
func (f *fakeSurface) MeasureText(s string) float64 {
	return float64(len(s)) * f.font / 2
}

func (f *fakeSurface) count(prefix string) int {
	n := 0
	for _, op := range f.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeSurface) has(op string) bool {
	for _, o := range f.ops {
		if o == op {
			return true
		}
	}
	return false
}

func mustContext(t interface{ Fatalf(string, ...any) }, dataset []float64, w, h float64, cfg Config) (*RenderContext, *fakeSurface) {
	s := newFakeSurface(w, h)
	rc, err := Prepare(s, dataset, cfg)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return rc, s
}
