package surface

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/linechart/pkg/chart"
)

// Op is one recorded drawing call.
type Op struct {
	Name string
	Args []float64
	Text string // color, font family, alignment or text, depending on Name
}

// String formats the call as Name(args), with Text leading the arguments.
func (o Op) String() string {
	parts := make([]string, 0, len(o.Args)+1)
	if o.Text != "" {
		parts = append(parts, o.Text)
	}
	for _, a := range o.Args {
		parts = append(parts, strconv.FormatFloat(a, 'f', -1, 64))
	}
	if len(parts) == 0 && o.Args == nil {
		return o.Name
	}
	return fmt.Sprintf("%s(%s)", o.Name, strings.Join(parts, ","))
}

// Recorder is a [chart.Surface] that records every call without drawing.
// It is used for dry runs and inspecting what a render would do.
type Recorder struct {
	width, height float64
	ops           []Op
	size          float64
	saved         []float64 // font sizes pushed by Save
	measure       Measurer
}

// NewRecorder creates a width×height recorder. Text is measured with
// [EstimateText].
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height, size: defaultFontSize, measure: EstimateText}
}

// Ops returns the recorded calls in order.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Reset discards the recorded calls and the saved state.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.size = defaultFontSize
	r.saved = nil
}

func (r *Recorder) add(name, text string, args ...float64) {
	r.ops = append(r.ops, Op{Name: name, Text: text, Args: args})
}

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }

func (r *Recorder) ClearRect(x, y, w, h float64) { r.add("ClearRect", "", x, y, w, h) }
func (r *Recorder) FillRect(x, y, w, h float64)  { r.add("FillRect", "", x, y, w, h) }
func (r *Recorder) BeginPath()                   { r.add("BeginPath", "") }
func (r *Recorder) MoveTo(x, y float64)          { r.add("MoveTo", "", x, y) }
func (r *Recorder) LineTo(x, y float64)          { r.add("LineTo", "", x, y) }
func (r *Recorder) Stroke()                      { r.add("Stroke", "") }
func (r *Recorder) Fill()                        { r.add("Fill", "") }

func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.add("Arc", "", x, y, radius, start, end)
}

func (r *Recorder) SetStrokeColor(c chart.Color) { r.add("SetStrokeColor", string(c)) }
func (r *Recorder) SetFillColor(c chart.Color)   { r.add("SetFillColor", string(c)) }
func (r *Recorder) SetLineWidth(w float64)       { r.add("SetLineWidth", "", w) }

func (r *Recorder) SetLineDash(pattern []float64) {
	r.add("SetLineDash", "", append([]float64{}, pattern...)...)
}

func (r *Recorder) SetFont(family string, size float64) {
	r.size = size
	r.add("SetFont", family, size)
}

func (r *Recorder) SetTextAlign(a chart.TextAlign)       { r.add("SetTextAlign", string(a)) }
func (r *Recorder) SetTextBaseline(b chart.TextBaseline) { r.add("SetTextBaseline", string(b)) }
func (r *Recorder) FillText(s string, x, y float64)      { r.add("FillText", s, x, y) }

func (r *Recorder) MeasureText(s string) float64 { return r.measure(s, r.size) }

func (r *Recorder) Save() {
	r.saved = append(r.saved, r.size)
	r.add("Save", "")
}

// Restore pops the font size pushed by the matching Save. Restore with
// nothing saved only records the call.
func (r *Recorder) Restore() {
	if n := len(r.saved); n > 0 {
		r.size = r.saved[n-1]
		r.saved = r.saved[:n-1]
	}
	r.add("Restore", "")
}

func (r *Recorder) Translate(x, y float64) { r.add("Translate", "", x, y) }
func (r *Recorder) Rotate(angle float64)   { r.add("Rotate", "", angle) }
