// Package chart renders a numeric dataset as a line chart onto a 2D drawing
// surface.
//
// # Overview
//
// A render turns a dataset and a surface into a sequence of drawing calls:
//
//	dataset ─▶ Statistics ─┐
//	                       ├─▶ RenderContext ─▶ point sequences ─▶ passes ─▶ Surface
//	surface ─▶ Geometry ───┘
//
// [Statistics] summarizes the dataset (min, max, range, average and the
// prime-adjusted length). [Geometry] splits the surface into margins and a
// render area. [RenderContext] combines both with the configuration and
// derives the x-axis segment layout and the quantized y scale. It is built
// once per render and never changes afterwards.
//
// # Point Sequences
//
// Pixel positions are produced lazily as iter.Seq2[int, Point]:
//
//   - [DataPoints]: one point per value
//   - [YAxisTicks]: the eleven y-axis tick positions
//   - [Segments]: the data points that start an x-axis segment, plus the last
//
// Every call returns an independent sequence, so passes can iterate the same
// source without coordinating.
//
// # Passes
//
// [Passes] lists the drawing steps in order: background, axes, titles,
// labels, guides, the polyline, the point markers and the zero line. A
// [Pass] pairs a drawing function with the [PointSource] it iterates; [Each]
// is the shared iterate-and-invoke helper.
//
// # Edge Cases
//
// Datasets whose range is below 2 are drawn on a 10-unit scale centered on
// the average, so a constant dataset is drawn as a flat line mid-height.
// Datasets with a prime length above 20 are laid out on length+1 slots so
// the x-axis can be divided into even segments. The number of segments is
// capped by [Config.WithMaxLabelsOnXAxis]. Labels that do not fit the space
// available to them are skipped.
//
// # Usage
//
//	cfg, err := chart.DefaultConfig().WithColors(
//	    chart.ColorUpdate{Slot: chart.SlotGraphLine, Color: chart.Red},
//	)
//	if err != nil {
//	    return err
//	}
//	svg := surface.NewSVG(800, 600)
//	if err := chart.Render(svg, []float64{3, 1, 4, 1, 5}, cfg); err != nil {
//	    return err
//	}
//	os.Stdout.Write(svg.Bytes())
//
// Surfaces are implemented in package surface.
package chart
