package chart

import (
	"iter"
	"slices"
	"testing"
)

func collect(rc *RenderContext, src PointSource) (idx []int, pts []Point) {
	Each(rc, src, func(i int, p Point) {
		idx = append(idx, i)
		pts = append(pts, p)
	})
	return idx, pts
}

func TestDataPoints(t *testing.T) {
	tests := []struct {
		name    string
		dataset []float64
		want    []Point
	}{
		{
			name:    "ascending",
			dataset: []float64{1, 2, 3},
			want:    []Point{{100, 900}, {366, 820}, {632, 740}},
		},
		{
			name:    "constant is drawn mid-height",
			dataset: []float64{5, 5, 5, 5},
			want:    []Point{{100, 500}, {300, 500}, {500, 500}, {700, 500}},
		},
		{
			name:    "negative to positive",
			dataset: []float64{-10, 0, 10},
			want:    []Point{{100, 900}, {366, 500}, {632, 100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, _ := mustContext(t, tt.dataset, 1000, 1000, DefaultConfig())
			idx, got := collect(rc, DataPoints)
			if !slices.Equal(got, tt.want) {
				t.Errorf("DataPoints() = %v, want %v", got, tt.want)
			}
			for i, n := range idx {
				if n != i {
					t.Errorf("index %d = %d, want in order", i, n)
				}
			}
		})
	}
}

func TestDataPointsPrimeLengthLeavesLastSlotEmpty(t *testing.T) {
	dataset := make([]float64, 23)
	for i := range dataset {
		dataset[i] = float64(i)
	}
	rc, _ := mustContext(t, dataset, 1000, 1000, DefaultConfig())

	if got := rc.PointDistance(); got != 33 {
		t.Fatalf("PointDistance() = %d, want 33 (800/24)", got)
	}
	_, pts := collect(rc, DataPoints)
	if len(pts) != 23 {
		t.Fatalf("len(DataPoints) = %d, want 23", len(pts))
	}
	if last := pts[len(pts)-1].X; last != 100+22*33 {
		t.Errorf("last X = %d, want %d", last, 100+22*33)
	}
}

func TestDataPointsMinimumDistance(t *testing.T) {
	dataset := make([]float64, 200)
	rc, _ := mustContext(t, dataset, 100, 100, DefaultConfig())
	if got := rc.PointDistance(); got != 1 {
		t.Errorf("PointDistance() = %d, want 1", got)
	}
}

func TestYAxisTicks(t *testing.T) {
	rc, _ := mustContext(t, []float64{1, 2, 3}, 1000, 1000, DefaultConfig())
	idx, pts := collect(rc, YAxisTicks)

	if len(pts) != NumberOfLabelsOnYAxis+1 {
		t.Fatalf("len(YAxisTicks) = %d, want %d", len(pts), NumberOfLabelsOnYAxis+1)
	}
	for k, p := range pts {
		wantY := 900 - 80*k
		if p.X != 100 || p.Y != wantY {
			t.Errorf("tick %d = %v, want {100 %d}", k, p, wantY)
		}
		if idx[k] != k {
			t.Errorf("tick index %d = %d", k, idx[k])
		}
	}
}

func TestSegments(t *testing.T) {
	seq := func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = float64(i % 7)
		}
		return out
	}

	tests := []struct {
		name    string
		dataset []float64
		max     int
		want    []int
	}{
		{
			name:    "aligned last index is emitted twice",
			dataset: seq(21),
			max:     20,
			want:    []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 20},
		},
		{
			name:    "unaligned last index",
			dataset: seq(10),
			max:     3,
			want:    []int{0, 4, 8, 9},
		},
		{
			name:    "every point",
			dataset: seq(3),
			max:     20,
			want:    []int{0, 1, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DefaultConfig().WithMaxLabelsOnXAxis(tt.max)
			if err != nil {
				t.Fatalf("WithMaxLabelsOnXAxis() error = %v", err)
			}
			rc, _ := mustContext(t, tt.dataset, 1000, 1000, cfg)
			idx, pts := collect(rc, Segments)
			if !slices.Equal(idx, tt.want) {
				t.Errorf("Segments() indices = %v, want %v", idx, tt.want)
			}

			_, all := collect(rc, DataPoints)
			for n, i := range idx {
				if pts[n] != all[i] {
					t.Errorf("segment point %d = %v, want data point %v", n, pts[n], all[i])
				}
			}
		})
	}
}

func TestSequencesAreIndependent(t *testing.T) {
	rc, _ := mustContext(t, []float64{1, 2, 3, 4, 5}, 1000, 1000, DefaultConfig())

	first := DataPoints(rc)
	second := DataPoints(rc)

	// Stop the first sequence early; the second must be unaffected.
	for i := range first {
		if i == 1 {
			break
		}
	}
	_, a := collect(rc, func(*RenderContext) iter.Seq2[int, Point] { return second })
	_, b := collect(rc, DataPoints)
	if !slices.Equal(a, b) || len(a) != 5 {
		t.Errorf("sequences differ: %v vs %v", a, b)
	}
}

func TestEachStopsAtEnd(t *testing.T) {
	rc, _ := mustContext(t, []float64{1, 2}, 1000, 1000, DefaultConfig())
	calls := 0
	Each(rc, DataPoints, func(int, Point) { calls++ })
	if calls != 2 {
		t.Errorf("Each() called fn %d times, want 2", calls)
	}
}
