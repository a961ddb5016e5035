package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linechart/pkg/chart"
)

// paletteCommand creates the palette command, which lists the color names
// and color slots accepted by --color.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the colors and color slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printPalette(c.Out)
			return nil
		},
	}
}

func printPalette(w io.Writer) {
	colors := make([][]string, 0, len(chart.Palette()))
	for _, col := range chart.Palette() {
		colors = append(colors, []string{string(col), col.Hex(), swatch(col.Hex())})
	}
	printHeading(w, "Colors")
	printTable(w, []string{"Name", "Hex", ""}, colors)

	defaults := chart.DefaultColors()
	slots := make([][]string, 0, len(chart.Slots()))
	for _, slot := range chart.Slots() {
		col := defaults.Get(slot)
		slots = append(slots, []string{string(slot), string(col), swatch(col.Hex())})
	}
	printHeading(w, "Slots")
	printTable(w, []string{"Slot", "Default", ""}, slots)
	printDetail(w, "set a slot with --color slot=color, e.g. --color graphLineColor=blue")
}
