package surface

import (
	"math"
	"testing"

	"github.com/matzehuels/linechart/pkg/chart"
)

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Op{Name: "BeginPath"}, "BeginPath"},
		{Op{Name: "MoveTo", Args: []float64{1, 2.5}}, "MoveTo(1,2.5)"},
		{Op{Name: "SetStrokeColor", Text: "red"}, "SetStrokeColor(red)"},
		{Op{Name: "FillText", Text: "10", Args: []float64{90, 900}}, "FillText(10,90,900)"},
		{Op{Name: "SetLineDash", Args: []float64{}}, "SetLineDash()"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecorderRender(t *testing.T) {
	r := NewRecorder(1000, 1000)
	if err := chart.Render(r, []float64{1, 2, 3}, chart.DefaultConfig()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	ops := r.Ops()
	if len(ops) == 0 {
		t.Fatal("no ops recorded")
	}
	if got := ops[0].String(); got != "ClearRect(0,0,1000,1000)" {
		t.Errorf("first op = %q, want ClearRect(0,0,1000,1000)", got)
	}
	if got := r.Count("Arc"); got != 3 {
		t.Errorf("Count(Arc) = %d, want 3", got)
	}
	if r.Count("Save") != r.Count("Restore") {
		t.Errorf("Save count %d != Restore count %d", r.Count("Save"), r.Count("Restore"))
	}

	r.Reset()
	if len(r.Ops()) != 0 {
		t.Errorf("Ops() after Reset = %d, want 0", len(r.Ops()))
	}
}

func TestRecorderMeasureText(t *testing.T) {
	r := NewRecorder(100, 100)
	r.SetFont("Arial", 10)
	if got := r.MeasureText("abcd"); math.Abs(got-22) > 1e-9 {
		t.Errorf("MeasureText() = %v, want 22", got)
	}
}

func TestRecorderRestoresFontSize(t *testing.T) {
	r := NewRecorder(100, 100)
	r.SetFont("Arial", 10)
	r.Save()
	r.SetFont("Arial", 20)
	if got := r.MeasureText("ab"); math.Abs(got-22) > 1e-9 {
		t.Errorf("MeasureText() inside Save = %v, want 22", got)
	}
	r.Restore()
	if got := r.MeasureText("ab"); math.Abs(got-11) > 1e-9 {
		t.Errorf("MeasureText() after Restore = %v, want 11", got)
	}

	// unbalanced Restore keeps the current size
	r.Restore()
	if got := r.MeasureText("ab"); math.Abs(got-11) > 1e-9 {
		t.Errorf("MeasureText() after extra Restore = %v, want 11", got)
	}
}
