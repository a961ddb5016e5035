package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linechart/pkg/pipeline"
)

// inspectCommand creates the inspect command, which prints the layout a
// render would use without writing any file.
func (c *CLI) inspectCommand() *cobra.Command {
	var flags chartFlags

	cmd := &cobra.Command{
		Use:   "inspect [values...]",
		Short: "Print the statistics, geometry and label layout of a chart",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd.Flags(), args)
			if err != nil {
				return err
			}
			layout, err := pipeline.ComputeLayout(opts)
			if err != nil {
				return err
			}
			printLayout(c.Out, layout)
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

// printLayout prints the derived layout as tables.
func printLayout(w io.Writer, l pipeline.Layout) {
	s, g := l.Statistics, l.Geometry

	printHeading(w, "Statistics")
	printTable(w, []string{"Field", "Value"}, [][]string{
		{"count", strconv.Itoa(s.Count)},
		{"min", num(s.Min)},
		{"max", num(s.Max)},
		{"range", num(s.Range)},
		{"average", num(s.Average)},
		{"slots", strconv.Itoa(s.PrimeAdjustedLength)},
	})

	printHeading(w, "Geometry")
	printTable(w, []string{"Field", "Value"}, [][]string{
		{"size", fmt.Sprintf("%sx%s", num(g.Width), num(g.Height))},
		{"margin", fmt.Sprintf("%sx%s", num(g.MarginWidth), num(g.MarginHeight))},
		{"render area", fmt.Sprintf("%sx%s", num(g.RenderAreaWidth), num(g.RenderAreaHeight))},
		{"segments", strconv.Itoa(l.Segments)},
		{"steps per segment", strconv.Itoa(l.StepsPerSegment)},
		{"point distance", strconv.Itoa(l.PointDistance)},
	})

	printHeading(w, "Y axis")
	ticks := make([][]string, len(l.Ticks))
	for i, t := range l.Ticks {
		ticks[i] = []string{strconv.Itoa(i), t.Label, strconv.Itoa(t.Y)}
	}
	printTable(w, []string{"Tick", "Label", "Y"}, ticks)

	printHeading(w, "X axis")
	labels := make([][]string, len(l.XLabels))
	for i, x := range l.XLabels {
		labels[i] = []string{strconv.Itoa(x.Index), x.Label, strconv.Itoa(x.X)}
	}
	printTable(w, []string{"Segment", "Label", "X"}, labels)

	if len(l.Points) > 0 {
		printDetail(w, "%d point(s), first at (%d,%d)", len(l.Points), l.Points[0].X, l.Points[0].Y)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
