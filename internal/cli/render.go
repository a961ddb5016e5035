package cli

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/linechart/pkg/chart"
	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/pipeline"
)

// defaultOutput is the base name used when --output is not given.
const defaultOutput = "chart"

// chartFlags holds the flags shared by render and inspect. Flags override
// the values of a --config chart file only when they are set.
type chartFlags struct {
	config     string   // TOML chart file
	data       string   // comma-separated dataset
	width      string   // CSS length
	height     string   // CSS length
	viewport   string   // WxH basis for percentages
	colors     []string // slot=color, repeatable
	fontFamily string
	labelSize  float64
	titleSize  float64
	xTitle     string
	yTitle     string
	labels     string // comma-separated x-axis labels
	maxLabels  int
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chartFlags
	output    string // output file (single format) or base path (multiple)
	formats   string // comma-separated output formats
	quality   int    // JPEG quality
	embedFont bool   // embed the font into SVG output
	title     string // SVG document title
	noCache   bool   // skip the artifact cache
}

func (f *chartFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.config, "config", "c", "", "TOML chart file")
	fs.StringVar(&f.data, "data", "", "dataset values (comma-separated), instead of arguments")
	fs.StringVar(&f.width, "width", "", "chart width as a CSS length, e.g. 800px or 50% (default 800px)")
	fs.StringVar(&f.height, "height", "", "chart height as a CSS length (default 600px)")
	fs.StringVar(&f.viewport, "viewport", "", "viewport WxH that percentages resolve against (default 1000x750)")
	fs.StringArrayVar(&f.colors, "color", nil, "color assignment slot=color (repeatable), see 'linechart palette'")
	fs.StringVar(&f.fontFamily, "font-family", "", "font family (default "+chart.DefaultFontFamily+")")
	fs.Float64Var(&f.labelSize, "font-size-label", 0, "label font size in pixels")
	fs.Float64Var(&f.titleSize, "font-size-title", 0, "axis title font size in pixels")
	fs.StringVar(&f.xTitle, "x-title", "", "x axis title (empty hides it)")
	fs.StringVar(&f.yTitle, "y-title", "", "y axis title (empty hides it)")
	fs.StringVar(&f.labels, "labels", "", "x axis labels, one per value (comma-separated)")
	fs.IntVar(&f.maxLabels, "max-labels", 0, fmt.Sprintf("maximum number of x axis labels, 1-%d", chart.MaxLabelsOnXAxisLimit))
}

// options builds pipeline options from the chart file, the positional
// dataset arguments and the flags that were set.
func (f *chartFlags) options(fs *pflag.FlagSet, args []string) (pipeline.Options, error) {
	var opts pipeline.Options
	if f.config != "" {
		loaded, err := pipeline.LoadOptions(f.config)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	switch {
	case len(args) > 0 && fs.Changed("data"):
		return opts, errors.New(errors.ErrCodeInvalidDataset, "dataset given both as arguments and with --data")
	case len(args) > 0:
		dataset, err := parseDataset(args)
		if err != nil {
			return opts, err
		}
		opts.Dataset = dataset
	case fs.Changed("data"):
		dataset, err := parseDataset(parseList(f.data))
		if err != nil {
			return opts, err
		}
		opts.Dataset = dataset
	}

	if fs.Changed("width") {
		opts.Width = f.width
	}
	if fs.Changed("height") {
		opts.Height = f.height
	}
	if fs.Changed("viewport") {
		w, h, err := parseViewport(f.viewport)
		if err != nil {
			return opts, err
		}
		opts.ViewportWidth, opts.ViewportHeight = w, h
	}
	if len(f.colors) > 0 {
		if opts.Colors == nil {
			opts.Colors = make(map[string]string, len(f.colors))
		}
		for _, s := range f.colors {
			u, err := chart.ParseColorUpdate(s)
			if err != nil {
				return opts, err
			}
			opts.Colors[string(u.Slot)] = string(u.Color)
		}
	}
	if fs.Changed("font-family") {
		opts.Fonts.Family = f.fontFamily
	}
	if fs.Changed("font-size-label") {
		opts.Fonts.LabelSize = f.labelSize
	}
	if fs.Changed("font-size-title") {
		opts.Fonts.TitleSize = f.titleSize
	}
	if fs.Changed("x-title") {
		opts.Titles.X = &f.xTitle
	}
	if fs.Changed("y-title") {
		opts.Titles.Y = &f.yTitle
	}
	if fs.Changed("labels") {
		opts.Labels = parseList(f.labels)
	}
	if fs.Changed("max-labels") {
		opts.MaxLabels = f.maxLabels
	}
	return opts, nil
}

// renderCommand creates the render command for writing chart files.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [values...]",
		Short: "Render a dataset as a line chart",
		Long: `Render a dataset as a line chart.

The dataset is given as arguments, with --data, or in a TOML chart file
passed with --config. Flags override the values of the chart file.

Use -- before the values when the dataset holds negative numbers:

  linechart render -f svg,png -o sales -- 3 -1 4 1 5`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			po, err := opts.pipelineOptions(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), po, opts.output, opts.noCache)
		},
	}

	opts.register(cmd.Flags())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, jpeg, pdf (comma-separated)")
	cmd.Flags().IntVar(&opts.quality, "quality", pipeline.DefaultQuality, "JPEG quality, 1-100")
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the font into SVG output")
	cmd.Flags().StringVar(&opts.title, "title", "", "SVG document title")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render even if the chart is cached, and do not cache it")

	return cmd
}

func (o *renderOpts) pipelineOptions(fs *pflag.FlagSet, args []string) (pipeline.Options, error) {
	opts, err := o.options(fs, args)
	if err != nil {
		return opts, err
	}
	if fs.Changed("format") {
		opts.Formats = parseFormats(o.formats)
	}
	if fs.Changed("quality") {
		opts.Quality = o.quality
	}
	if fs.Changed("embed-font") {
		opts.EmbedFont = o.embedFont
	}
	if fs.Changed("title") {
		opts.Title = o.title
	}
	return opts, nil
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	formats := slices.Sorted(maps.Keys(result.Artifacts))
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(output, format, len(formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		paths = append(paths, path)
	}

	if result.CacheInfo.RenderHit {
		printSuccess(c.Out, "Rendered %d file(s) from cache", len(paths))
	} else {
		printSuccess(c.Out, "Rendered %d file(s)", len(paths))
	}
	for _, path := range paths {
		printFile(c.Out, path)
	}

	prog.done(fmt.Sprintf("Rendered %d point(s) at %gx%g", len(result.Layout.Points), result.Stats.Width, result.Stats.Height))
	return nil
}

// outputPath chooses the file a format is written to. A single format is
// written to output as given; multiple formats share its base path.
func outputPath(output, format string, multi bool) string {
	if output == "" {
		return defaultOutput + "." + format
	}
	if !multi {
		return output
	}
	return basePath(output) + "." + format
}

// basePath strips a known format extension (.svg, .png, ...) from output.
func basePath(output string) string {
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[pipeline.NormalizeFormat(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// parseDataset parses each value as a float.
func parseDataset(values []string) ([]float64, error) {
	dataset := make([]float64, len(values))
	for i, s := range values {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "dataset[%d] = %q is not a number", i, s)
		}
		dataset[i] = v
	}
	return dataset, nil
}

// parseViewport parses "WxH", for example "1280x720".
func parseViewport(s string) (float64, float64, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if ok {
		w, werr := strconv.ParseFloat(ws, 64)
		h, herr := strconv.ParseFloat(hs, 64)
		if werr == nil && herr == nil && w > 0 && h > 0 {
			return w, h, nil
		}
	}
	return 0, 0, errors.New(errors.ErrCodeInvalidConfiguration, "viewport %q must have the form WIDTHxHEIGHT", s)
}
