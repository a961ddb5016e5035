// Package render converts rendered charts between output formats.
//
// SVG and raster output are produced directly by the surfaces in package
// surface. PDF has no native surface: [ToPDF] converts a finished SVG
// document with the external rsvg-convert tool (from librsvg).
//
//	svg := surface.NewSVG(800, 600, surface.WithEmbeddedFont())
//	if err := chart.Render(svg, dataset, cfg); err != nil {
//	    return err
//	}
//	pdf, err := render.ToPDF(svg.Bytes())
package render
