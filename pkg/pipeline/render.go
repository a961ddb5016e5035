package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/linechart/pkg/chart"
	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/observability"
	"github.com/matzehuels/linechart/pkg/render"
	"github.com/matzehuels/linechart/pkg/surface"
)

// RenderFormat draws the chart at w×h pixels and encodes it as format.
// Pass timings are reported to the registered observability hooks.
func RenderFormat(ctx context.Context, format string, dataset []float64, cfg chart.Config, w, h float64, opts Options) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format, len(dataset))
	start := time.Now()

	data, err := renderFormat(ctx, format, dataset, cfg, w, h, opts)
	hooks.OnRenderComplete(ctx, format, time.Since(start), err)
	return data, err
}

func renderFormat(ctx context.Context, format string, dataset []float64, cfg chart.Config, w, h float64, opts Options) ([]byte, error) {
	observer := chart.WithPassObserver(func(pass string, elapsed time.Duration) {
		observability.Render().OnPass(ctx, format, pass, elapsed)
	})

	switch format {
	case FormatSVG:
		return renderSVG(dataset, cfg, w, h, svgOptions(opts, opts.EmbedFont), observer)
	case FormatPDF:
		// rsvg-convert lays out text with the embedded font metrics
		svg, err := renderSVG(dataset, cfg, w, h, svgOptions(opts, true), observer)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(svg)
	case FormatPNG, FormatJPEG:
		return renderRaster(format, dataset, cfg, w, h, opts.Quality, observer)
	default:
		return nil, ValidateFormat(format)
	}
}

func svgOptions(opts Options, embedFont bool) []surface.SVGOption {
	var svgOpts []surface.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, surface.WithTitle(opts.Title))
	}
	if embedFont {
		svgOpts = append(svgOpts, surface.WithEmbeddedFont())
	}
	return svgOpts
}

func renderSVG(dataset []float64, cfg chart.Config, w, h float64, svgOpts []surface.SVGOption, ro ...chart.RenderOption) ([]byte, error) {
	s := surface.NewSVG(w, h, svgOpts...)
	if err := chart.Render(s, dataset, cfg, ro...); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

func renderRaster(format string, dataset []float64, cfg chart.Config, w, h float64, quality int, ro ...chart.RenderOption) ([]byte, error) {
	r := surface.NewRaster(w, h)
	defer r.Close()

	if err := chart.Render(r, dataset, cfg, ro...); err != nil {
		return nil, err
	}
	if err := r.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "draw %s", format)
	}

	var buf bytes.Buffer
	var err error
	if format == FormatJPEG {
		err = r.EncodeJPEG(&buf, quality)
	} else {
		err = r.EncodePNG(&buf)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	return buf.Bytes(), nil
}
