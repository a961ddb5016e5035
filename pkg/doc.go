// Package pkg provides the libraries behind the linechart CLI.
//
// # Overview
//
// Linechart renders a numeric dataset as a line chart: axes, titles,
// horizontal guides, a zero line, tick labels, the connecting line and one
// marker per value. The pkg directory is organized leaf to root:
//
//  1. [errors] - Coded errors and shared validators
//  2. [chart] - Statistics, geometry, configuration and the drawing passes
//  3. [fonts] - The embedded default font and its metrics
//  4. [surface] - Drawing surfaces: SVG, raster (PNG/JPEG) and a call recorder
//  5. [render] - SVG to PDF conversion
//  6. [cache] - Rendered artifact cache
//  7. [observability] - Render hooks
//  8. [pipeline] - Orchestration (options → layout → render)
//
// # Architecture
//
// The typical data flow through linechart:
//
//	Dataset + chart file / flags
//	         ↓
//	    [pipeline] package (defaults, validation, chart.Config)
//	         ↓
//	    [chart] package (statistics, geometry, point sequences)
//	         ↓
//	    [surface] package (one surface per output format)
//	         ↓
//	    SVG/PNG/JPEG/PDF output
//
// # Quick Start
//
// Render a chart onto an SVG surface:
//
//	import (
//	    "github.com/matzehuels/linechart/pkg/chart"
//	    "github.com/matzehuels/linechart/pkg/surface"
//	)
//
//	s := surface.NewSVG(800, 600)
//	if err := chart.Render(s, []float64{3, 1, 4, 1, 5}, chart.DefaultConfig()); err != nil {
//	    return err
//	}
//	os.WriteFile("chart.svg", s.Bytes(), 0o644)
//
// Or run the full pipeline, which also resolves sizes and writes several
// formats:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Dataset: []float64{3, 1, 4, 1, 5},
//	    Formats: []string{"svg", "png"},
//	})
package pkg
