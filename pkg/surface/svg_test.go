package surface

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/linechart/pkg/chart"
)

func TestSVGDocument(t *testing.T) {
	s := NewSVG(100, 50, WithTitle("Q1 & Q2"))
	got := string(s.Bytes())

	if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50" width="100" height="50">`) {
		t.Errorf("unexpected header: %s", got)
	}
	if !strings.Contains(got, "<title>Q1 &amp; Q2</title>") {
		t.Errorf("title not escaped: %s", got)
	}
	if !strings.HasSuffix(got, "</svg>\n") {
		t.Errorf("document not closed: %s", got)
	}
}

func TestSVGPaths(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *SVG)
		want string
	}{
		{
			name: "line",
			draw: func(s *SVG) {
				s.SetStrokeColor(chart.Red)
				s.BeginPath()
				s.MoveTo(10, 10)
				s.LineTo(20, 20.456)
				s.Stroke()
			},
			want: `<path d="M10 10 L20 20.46" fill="none" stroke="#FF0000" stroke-width="1"/>`,
		},
		{
			name: "dashed",
			draw: func(s *SVG) {
				s.SetLineDash([]float64{1, 5})
				s.SetLineWidth(2)
				s.BeginPath()
				s.MoveTo(0, 0)
				s.LineTo(5, 0)
				s.Stroke()
			},
			want: `<path d="M0 0 L5 0" fill="none" stroke="#000000" stroke-width="2" stroke-dasharray="1 5"/>`,
		},
		{
			name: "line to on empty path moves",
			draw: func(s *SVG) {
				s.BeginPath()
				s.LineTo(3, 4)
				s.LineTo(5, 6)
				s.Stroke()
			},
			want: `d="M3 4 L5 6"`,
		},
		{
			name: "translated",
			draw: func(s *SVG) {
				s.Translate(10, 20)
				s.BeginPath()
				s.MoveTo(0, 0)
				s.LineTo(5, 0)
				s.Stroke()
			},
			want: `d="M10 20 L15 20"`,
		},
		{
			name: "full circle",
			draw: func(s *SVG) {
				s.SetFillColor(chart.Blue)
				s.BeginPath()
				s.Arc(50, 50, 3, 0, 2*math.Pi)
				s.Fill()
			},
			want: `<path d="M53 50 A3 3 0 0 1 47 50 A3 3 0 0 1 53 50" fill="#0000FF"/>`,
		},
		{
			name: "half circle",
			draw: func(s *SVG) {
				s.BeginPath()
				s.Arc(0, 0, 10, 0, math.Pi/2)
				s.Stroke()
			},
			want: `d="M10 0 A10 10 0 0 1 0 10"`,
		},
		{
			name: "filled rect",
			draw: func(s *SVG) {
				s.SetFillColor(chart.White)
				s.FillRect(0, 0, 100, 100)
			},
			want: `<rect x="0" y="0" width="100" height="100" fill="#FFFFFF"/>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSVG(100, 100)
			tt.draw(s)
			if got := string(s.Bytes()); !strings.Contains(got, tt.want) {
				t.Errorf("output missing %s\ngot:\n%s", tt.want, got)
			}
		})
	}
}

func TestSVGEmptyPathDrawsNothing(t *testing.T) {
	s := NewSVG(10, 10)
	s.BeginPath()
	s.Stroke()
	s.Fill()
	if got := string(s.Bytes()); strings.Contains(got, "<path") {
		t.Errorf("empty path produced output: %s", got)
	}
}

func TestSVGText(t *testing.T) {
	s := NewSVG(1000, 1000)
	s.Save()
	s.Translate(16, 500)
	s.Rotate(-math.Pi / 2)
	s.SetFont("Arial", 16)
	s.SetTextAlign(chart.AlignCenter)
	s.SetTextBaseline(chart.BaselineBottom)
	s.FillText("a<b", 0, 0)
	s.Restore()
	s.FillText("plain", 1, 2)

	got := string(s.Bytes())
	want := `<text x="0" y="0" transform="matrix(0 -1 1 0 16 500)" font-family="Arial" font-size="16" fill="#000000" text-anchor="middle" dominant-baseline="text-after-edge">a&lt;b</text>`
	if !strings.Contains(got, want) {
		t.Errorf("rotated text missing\nwant: %s\ngot:\n%s", want, got)
	}
	want = `<text x="1" y="2" font-family="sans-serif" font-size="10" fill="#000000" text-anchor="start" dominant-baseline="alphabetic">plain</text>`
	if !strings.Contains(got, want) {
		t.Errorf("text after Restore missing\nwant: %s\ngot:\n%s", want, got)
	}
}

func TestSVGClearRect(t *testing.T) {
	s := NewSVG(100, 100)
	s.FillRect(0, 0, 10, 10)

	s.ClearRect(0, 0, 50, 50)
	if !strings.Contains(string(s.Bytes()), "<rect") {
		t.Error("partial ClearRect discarded content")
	}

	s.ClearRect(0, 0, 100, 100)
	if strings.Contains(string(s.Bytes()), "<rect") {
		t.Error("full ClearRect kept content")
	}
}

func TestSVGMeasureText(t *testing.T) {
	s := NewSVG(100, 100, WithMeasurer(func(text string, size float64) float64 {
		return float64(len(text)) * size
	}))
	s.SetFont("Arial", 12)
	if got := s.MeasureText("abc"); got != 36 {
		t.Errorf("MeasureText() = %v, want 36", got)
	}
}

func TestSVGEmbeddedFont(t *testing.T) {
	s := NewSVG(100, 100, WithEmbeddedFont())
	s.SetFont("Arial", 12)
	s.FillText("x", 0, 0)

	got := string(s.Bytes())
	if !strings.Contains(got, "@font-face") {
		t.Error("embedded font missing @font-face")
	}
	if !strings.Contains(got, `font-family="&#39;Go&#39;, Arial"`) {
		t.Errorf("font-family does not lead with the embedded font: %s", got)
	}
}

func TestSVGRenderIsWellFormed(t *testing.T) {
	s := NewSVG(800, 600)
	cfg, err := chart.DefaultConfig().WithXAxisLabels([]string{"Jan", "Feb", "Mar & Apr", "May"})
	if err != nil {
		t.Fatalf("WithXAxisLabels() error = %v", err)
	}
	if err := chart.Render(s, []float64{-2, 4, 1, 8}, cfg); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	dec := xml.NewDecoder(&buf)
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("output is not well-formed XML: %v", err)
		}
	}

	got := string(s.Bytes())
	if n := strings.Count(got, " A3 3 "); n != 8 {
		t.Errorf("marker arcs = %d, want 8 (two per point)", n)
	}
	if !strings.Contains(got, "Mar &amp; Apr") {
		t.Error("x-axis label not escaped")
	}
}
