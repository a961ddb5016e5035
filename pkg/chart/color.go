package chart

import (
	"slices"
	"strings"

	"github.com/matzehuels/linechart/pkg/errors"
)

// Color is a named color from the chart palette.
type Color string

// Palette colors.
const (
	Red    Color = "red"
	Green  Color = "green"
	Lime   Color = "lime"
	Blue   Color = "blue"
	Yellow Color = "yellow"
	Orange Color = "orange"
	Purple Color = "purple"
	Black  Color = "black"
	Gray   Color = "gray"
	White  Color = "white"
)

// CSS hex values for the palette colors.
var colorHex = map[Color]string{
	Red:    "#FF0000",
	Green:  "#008000",
	Lime:   "#00FF00",
	Blue:   "#0000FF",
	Yellow: "#FFFF00",
	Orange: "#FFA500",
	Purple: "#800080",
	Black:  "#000000",
	Gray:   "#808080",
	White:  "#FFFFFF",
}

// Palette returns the valid colors in a stable order.
func Palette() []Color {
	return []Color{Red, Green, Lime, Blue, Yellow, Orange, Purple, Black, Gray, White}
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool {
	_, ok := colorHex[c]
	return ok
}

// Hex returns the CSS hex notation of c, or black for colors outside the
// palette.
func (c Color) Hex() string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return colorHex[Black]
}

// ColorSlot names one colorable element of the chart.
type ColorSlot string

// Color slots.
const (
	SlotGraphLine  ColorSlot = "graphLineColor"
	SlotGraphDot   ColorSlot = "graphDotColor"
	SlotZeroLine   ColorSlot = "zeroLineColor"
	SlotAxis       ColorSlot = "axisColor"
	SlotLabel      ColorSlot = "labelColor"
	SlotTitle      ColorSlot = "titleColor"
	SlotBackground ColorSlot = "backgroundColor"
	SlotGuideLine  ColorSlot = "guideLineColor"
)

// Slots returns the valid color slots in a stable order.
func Slots() []ColorSlot {
	return []ColorSlot{
		SlotGraphLine, SlotGraphDot, SlotZeroLine, SlotAxis,
		SlotLabel, SlotTitle, SlotBackground, SlotGuideLine,
	}
}

// Valid reports whether s is a known color slot.
func (s ColorSlot) Valid() bool {
	return slices.Contains(Slots(), s)
}

// Colors assigns a palette color to every slot.
type Colors struct {
	GraphLine  Color
	GraphDot   Color
	ZeroLine   Color
	Axis       Color
	Label      Color
	Title      Color
	Background Color
	GuideLine  Color
}

// DefaultColors returns black drawing on a white background with a gray zero
// line and gray guides.
func DefaultColors() Colors {
	return Colors{
		GraphLine:  Black,
		GraphDot:   Black,
		ZeroLine:   Gray,
		Axis:       Black,
		Label:      Black,
		Title:      Black,
		Background: White,
		GuideLine:  Gray,
	}
}

// Get returns the color assigned to slot. Unknown slots yield "".
func (c Colors) Get(slot ColorSlot) Color {
	if p := c.ptr(slot); p != nil {
		return *p
	}
	return ""
}

func (c *Colors) ptr(slot ColorSlot) *Color {
	switch slot {
	case SlotGraphLine:
		return &c.GraphLine
	case SlotGraphDot:
		return &c.GraphDot
	case SlotZeroLine:
		return &c.ZeroLine
	case SlotAxis:
		return &c.Axis
	case SlotLabel:
		return &c.Label
	case SlotTitle:
		return &c.Title
	case SlotBackground:
		return &c.Background
	case SlotGuideLine:
		return &c.GuideLine
	}
	return nil
}

// validate checks that every slot holds a palette color.
func (c Colors) validate() error {
	for _, slot := range Slots() {
		if v := c.Get(slot); !v.Valid() {
			return invalidColor(slot, v)
		}
	}
	return nil
}

// ColorUpdate assigns Color to Slot.
type ColorUpdate struct {
	Slot  ColorSlot
	Color Color
}

// ParseColorUpdate parses "slot=color", for example "graphLineColor=red".
// Surrounding whitespace is ignored; names are case sensitive.
func ParseColorUpdate(s string) (ColorUpdate, error) {
	slot, color, ok := strings.Cut(s, "=")
	if !ok {
		return ColorUpdate{}, errors.New(errors.ErrCodeInvalidConfiguration,
			"color setting %q must have the form slot=color", s)
	}
	u := ColorUpdate{
		Slot:  ColorSlot(strings.TrimSpace(slot)),
		Color: Color(strings.TrimSpace(color)),
	}
	if err := u.validate(); err != nil {
		return ColorUpdate{}, err
	}
	return u, nil
}

func (u ColorUpdate) validate() error {
	if !u.Slot.Valid() {
		return errors.New(errors.ErrCodeInvalidConfiguration,
			"unknown color slot %q, valid slots are: %s", u.Slot, joinSlots())
	}
	if !u.Color.Valid() {
		return invalidColor(u.Slot, u.Color)
	}
	return nil
}

func invalidColor(slot ColorSlot, c Color) error {
	return errors.New(errors.ErrCodeInvalidConfiguration,
		"%s must be one of %s, got %q", slot, joinColors(), c)
}

func joinColors() string {
	names := make([]string, 0, len(colorHex))
	for _, c := range Palette() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func joinSlots() string {
	names := make([]string, 0, len(Slots()))
	for _, s := range Slots() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
