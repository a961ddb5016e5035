package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/linechart/pkg/buildinfo"
	"github.com/matzehuels/linechart/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, and every render pass is logged
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Linechart renders numeric series as line charts",
		Long:         `Linechart is a CLI tool for rendering a numeric dataset as a line chart with axes, guides, labels and a zero line, written as SVG, PNG, JPEG or PDF.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
				observability.SetRenderHooks(newLogHooks(c.Logger))
			}
			if c.Out == nil {
				c.Out = cmd.OutOrStdout()
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
