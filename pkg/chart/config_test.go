package chart

import (
	"slices"
	"testing"

	"github.com/matzehuels/linechart/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if got := cfg.Fonts(); got != (Fonts{Family: "Arial", LabelSize: 12, TitleSize: 16}) {
		t.Errorf("Fonts() = %+v", got)
	}
	if got := cfg.Titles(); got != (Titles{X: "Index", Y: "Values"}) {
		t.Errorf("Titles() = %+v", got)
	}
	if got := cfg.MaxLabelsOnXAxis(); got != 20 {
		t.Errorf("MaxLabelsOnXAxis() = %d, want 20", got)
	}
	if got := cfg.Colors(); got.Background != White || got.ZeroLine != Gray || got.GraphLine != Black {
		t.Errorf("Colors() = %+v", got)
	}
}

func TestZeroConfigIsInvalid(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
		t.Errorf("Config{}.Validate() error = %v, want %s", err, errors.ErrCodeInvalidConfiguration)
	}
}

func TestWithColors(t *testing.T) {
	base := DefaultConfig()

	t.Run("partial update", func(t *testing.T) {
		cfg, err := base.WithColors(ColorUpdate{Slot: SlotGraphLine, Color: Red})
		if err != nil {
			t.Fatalf("WithColors() error = %v", err)
		}
		if got := cfg.Colors().GraphLine; got != Red {
			t.Errorf("GraphLine = %v, want %v", got, Red)
		}
		if got := cfg.Colors().GraphDot; got != Black {
			t.Errorf("GraphDot = %v, want untouched %v", got, Black)
		}
		if got := base.Colors().GraphLine; got != Black {
			t.Errorf("receiver GraphLine = %v, want %v", got, Black)
		}
	})

	t.Run("successive updates accumulate", func(t *testing.T) {
		cfg, err := base.WithColors(ColorUpdate{Slot: SlotGraphLine, Color: Red})
		if err != nil {
			t.Fatalf("WithColors() error = %v", err)
		}
		cfg, err = cfg.WithColors(ColorUpdate{Slot: SlotAxis, Color: Blue})
		if err != nil {
			t.Fatalf("WithColors() error = %v", err)
		}
		if c := cfg.Colors(); c.GraphLine != Red || c.Axis != Blue {
			t.Errorf("Colors() = %+v, want red line and blue axis", c)
		}
	})

	t.Run("last update wins", func(t *testing.T) {
		cfg, err := base.WithColors(
			ColorUpdate{Slot: SlotTitle, Color: Red},
			ColorUpdate{Slot: SlotTitle, Color: Purple},
		)
		if err != nil {
			t.Fatalf("WithColors() error = %v", err)
		}
		if got := cfg.Colors().Title; got != Purple {
			t.Errorf("Title = %v, want %v", got, Purple)
		}
	})

	t.Run("guide line slot", func(t *testing.T) {
		cfg, err := base.WithColors(ColorUpdate{Slot: SlotGuideLine, Color: Lime})
		if err != nil {
			t.Fatalf("WithColors() error = %v", err)
		}
		if got := cfg.Colors().Get(SlotGuideLine); got != Lime {
			t.Errorf("Get(guideLineColor) = %v, want %v", got, Lime)
		}
	})
}

func TestWithColorsInvalid(t *testing.T) {
	base := DefaultConfig()
	tests := []struct {
		name    string
		updates []ColorUpdate
		wantMsg string
	}{
		{"empty", nil, "at least one"},
		{"unknown color", []ColorUpdate{{Slot: SlotGraphLine, Color: "chartreuse"}}, "chartreuse"},
		{"unknown slot", []ColorUpdate{{Slot: "borderColor", Color: Red}}, "borderColor"},
		{
			"valid then invalid",
			[]ColorUpdate{{Slot: SlotGraphLine, Color: Red}, {Slot: SlotAxis, Color: "mauve"}},
			"mauve",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := base.WithColors(tt.updates...)
			if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
				t.Fatalf("WithColors() error = %v, want %s", err, errors.ErrCodeInvalidConfiguration)
			}
			if !containsString(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
			if cfg.Colors() != base.Colors() {
				t.Errorf("Colors() = %+v after failed update, want unchanged", cfg.Colors())
			}
		})
	}
}

func TestParseColorUpdate(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorUpdate
		wantErr bool
	}{
		{"graphLineColor=red", ColorUpdate{Slot: SlotGraphLine, Color: Red}, false},
		{" backgroundColor = black ", ColorUpdate{Slot: SlotBackground, Color: Black}, false},
		{"guideLineColor=lime", ColorUpdate{Slot: SlotGuideLine, Color: Lime}, false},

		{"graphLineColor", ColorUpdate{}, true},
		{"graphLineColor=chartreuse", ColorUpdate{}, true},
		{"GraphLineColor=red", ColorUpdate{}, true},
		{"=red", ColorUpdate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorUpdate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorUpdate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColorUpdate(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	if got := len(Palette()); got != 10 {
		t.Errorf("len(Palette()) = %d, want 10", got)
	}
	for _, c := range Palette() {
		if !c.Valid() {
			t.Errorf("%s.Valid() = false", c)
		}
		if h := c.Hex(); len(h) != 7 || h[0] != '#' {
			t.Errorf("%s.Hex() = %q", c, h)
		}
	}
	if Color("chartreuse").Valid() {
		t.Error("chartreuse.Valid() = true, want false")
	}
	if got := Color("chartreuse").Hex(); got != "#000000" {
		t.Errorf("chartreuse.Hex() = %q, want black", got)
	}
}

func TestWithFonts(t *testing.T) {
	tests := []struct {
		name    string
		fonts   Fonts
		wantErr bool
	}{
		{"valid", Fonts{Family: "Helvetica", LabelSize: 10, TitleSize: 14}, false},
		{"blank family", Fonts{Family: " ", LabelSize: 10, TitleSize: 14}, true},
		{"zero label size", Fonts{Family: "Helvetica", LabelSize: 0, TitleSize: 14}, true},
		{"negative title size", Fonts{Family: "Helvetica", LabelSize: 10, TitleSize: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultConfig()
			cfg, err := base.WithFonts(tt.fonts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("WithFonts() error = %v, wantErr %v", err, tt.wantErr)
			}
			want := tt.fonts
			if tt.wantErr {
				want = base.Fonts()
			}
			if cfg.Fonts() != want {
				t.Errorf("Fonts() = %+v, want %+v", cfg.Fonts(), want)
			}
		})
	}
}

func TestWithAxisTitles(t *testing.T) {
	time, value := "Time", ""
	base := DefaultConfig()

	cfg, err := base.WithAxisTitles(TitleUpdate{X: &time})
	if err != nil {
		t.Fatalf("WithAxisTitles() error = %v", err)
	}
	if got := cfg.Titles(); got != (Titles{X: "Time", Y: "Values"}) {
		t.Errorf("Titles() = %+v", got)
	}

	cfg, err = cfg.WithAxisTitles(TitleUpdate{Y: &value})
	if err != nil {
		t.Fatalf("WithAxisTitles() error = %v", err)
	}
	if got := cfg.Titles(); got != (Titles{X: "Time", Y: ""}) {
		t.Errorf("Titles() = %+v", got)
	}

	if _, err := base.WithAxisTitles(TitleUpdate{}); !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
		t.Errorf("WithAxisTitles(empty) error = %v, want %s", err, errors.ErrCodeInvalidConfiguration)
	}
}

func TestWithXAxisLabels(t *testing.T) {
	labels := []string{"a", "b"}
	cfg, err := DefaultConfig().WithXAxisLabels(labels)
	if err != nil {
		t.Fatalf("WithXAxisLabels() error = %v", err)
	}
	labels[0] = "z"
	if got := cfg.XAxisLabels(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("XAxisLabels() = %v, want [a b]", got)
	}

	if _, err := DefaultConfig().WithXAxisLabels([]string{"ok", "bad\x00"}); !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
		t.Errorf("WithXAxisLabels(control) error = %v, want %s", err, errors.ErrCodeInvalidConfiguration)
	}
}

func TestWithMaxLabelsOnXAxis(t *testing.T) {
	for _, n := range []int{1, 20, 50} {
		if _, err := DefaultConfig().WithMaxLabelsOnXAxis(n); err != nil {
			t.Errorf("WithMaxLabelsOnXAxis(%d) error = %v", n, err)
		}
	}
	for _, n := range []int{-1, 0, 51} {
		cfg, err := DefaultConfig().WithMaxLabelsOnXAxis(n)
		if err == nil {
			t.Errorf("WithMaxLabelsOnXAxis(%d) error = nil, want error", n)
		}
		if cfg.MaxLabelsOnXAxis() != DefaultMaxLabelsOnXAxis {
			t.Errorf("MaxLabelsOnXAxis() = %d after failed update", cfg.MaxLabelsOnXAxis())
		}
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name       string
		size       Size
		vw, vh     float64
		wantW      float64
		wantH      float64
		wantSetErr bool
	}{
		{"pixels", Size{"800px", "600px"}, 1000, 750, 800, 600, false},
		{"percent", Size{"50%", "100%"}, 1000, 750, 500, 750, false},
		{"mixed", Size{"80%", "300px"}, 1000, 750, 800, 300, false},
		{"missing unit", Size{"800", "600px"}, 1000, 750, 0, 0, true},
		{"em unit", Size{"10em", "600px"}, 1000, 750, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DefaultConfig().WithSize(tt.size)
			if (err != nil) != tt.wantSetErr {
				t.Fatalf("WithSize() error = %v, wantErr %v", err, tt.wantSetErr)
			}
			if tt.wantSetErr {
				if cfg.Size() != (Size{DefaultWidth, DefaultHeight}) {
					t.Errorf("Size() = %+v after failed update", cfg.Size())
				}
				return
			}
			w, h, err := cfg.Size().Resolve(tt.vw, tt.vh)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Resolve() = (%v, %v), want (%v, %v)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSizeResolveNeedsViewportForPercent(t *testing.T) {
	if _, _, err := (Size{"50%", "10px"}).Resolve(0, 100); err == nil {
		t.Error("Resolve() with zero viewport error = nil, want error")
	}
	if _, _, err := (Size{"50px", "10px"}).Resolve(0, 0); err != nil {
		t.Errorf("Resolve() pixels with zero viewport error = %v", err)
	}
}

func TestSizeResolveTooLarge(t *testing.T) {
	tests := []struct {
		name   string
		size   Size
		vw, vh float64
	}{
		{"huge pixels", Size{"1e20px", "10px"}, 1000, 750},
		{"just over", Size{"800px", "16385px"}, 1000, 750},
		{"percent of large viewport", Size{"200%", "10px"}, 10000, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.size.Resolve(tt.vw, tt.vh)
			if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
				t.Errorf("Resolve() error = %v, want %s", err, errors.ErrCodeInvalidConfiguration)
			}
		})
	}

	if w, _, err := (Size{"16384px", "10px"}).Resolve(0, 0); err != nil || w != MaxDimension {
		t.Errorf("Resolve() at the limit = %v, %v, want %d, nil", w, err, MaxDimension)
	}
}
