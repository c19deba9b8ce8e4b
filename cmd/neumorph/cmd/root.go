// Package cmd implements the neumorph CLI commands.
//
// The root command carries a charm logger in the command context; each
// subcommand reads it back with loggerFromContext.
package cmd

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/neumorphism/pkg/config"
	"github.com/go-drift/neumorphism/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// globalOpts holds flags shared by every subcommand.
type globalOpts struct {
	verbose bool
	styles  string
}

// NewRootCommand builds the command tree writing logs to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	var opts globalOpts

	root := &cobra.Command{
		Use:   "neumorph",
		Short: "Render soft neumorphic shadows around boxes and images",
		Long: `neumorph applies named shadow styles to a rounded box or a PNG and
writes the result, reports the margins a style needs, and lists the
styles that are available.

Styles come from the built-in set, overlaid with a style document given
by --styles or found as neumorph.yaml / neumorph.toml in the working
directory or one of its parents.`,
		Version:       Version + " (built " + BuildTime + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)
			errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: opts.verbose})
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.styles, "styles", "", "style document (YAML or TOML)")

	root.AddCommand(newRenderCmd(&opts))
	root.AddCommand(newMarginsCmd(&opts))
	root.AddCommand(newStylesCmd(&opts))

	return root
}

// ErrReported marks a failure that was already sent to the error handler.
var ErrReported = stderrors.New("neumorph: error reported")

// Execute runs the CLI with os.Args. Structured errors go to the error
// handler, which logs them; Execute then returns ErrReported.
func Execute(ctx context.Context) error {
	err := NewRootCommand(os.Stderr).ExecuteContext(ctx)
	var structured *errors.Error
	if stderrors.As(err, &structured) {
		errors.Report(structured)
		return ErrReported
	}
	return err
}

// loadStyles resolves the style document for a command and logs where it
// came from.
func loadStyles(ctx context.Context, opts *globalOpts) (*config.Document, error) {
	doc, source, err := config.Resolve(opts.styles)
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	if source == "" {
		logger.Debug("using built-in styles")
	} else {
		logger.Debug("loaded styles", "path", source, "count", len(doc.Styles))
	}
	return doc, nil
}
