// Package cli implements the image-grid command-line interface.
//
// The root command composes a grid from the images given as arguments and/or
// a --pattern glob. Flags override values from an optional TOML --config file
// only when they are set explicitly. The serve subcommand exposes the same
// pipeline as MCP tools over stdin/stdout.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log at info level, or debug level
// with --verbose. The logger travels in the command context.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ironsheep/image-grid/internal/collage"
	"github.com/ironsheep/image-grid/internal/config"
	"github.com/ironsheep/image-grid/internal/imaging"
	"github.com/ironsheep/image-grid/internal/layout"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the image-grid CLI with os.Args and returns the first error.
// The error has already been logged when Execute returns.
func Execute(ctx context.Context) error {
	logger := newLogger(os.Stderr, log.InfoLevel)
	root := newRootCmd(logger)
	err := root.ExecuteContext(withLogger(ctx, logger))
	if err != nil {
		reportError(logger, err)
	}
	return err
}

// reportError logs err, spelling out grid-size failures.
func reportError(logger *log.Logger, err error) {
	var gridErr *layout.InsufficientGridError
	switch {
	case errors.As(err, &gridErr):
		logger.Error("grid too small for the input images",
			"rows", gridErr.Rows,
			"columns", gridErr.Columns,
			"cells", gridErr.Rows*gridErr.Columns,
			"images", gridErr.Items)
	case errors.Is(err, layout.ErrEmptyInput):
		logger.Error("no input images: pass file arguments or a --pattern that matches files")
	default:
		logger.Error(err.Error())
	}
}

// composeFlags holds the command-line flags for composing a grid.
type composeFlags struct {
	configPath       string
	pattern          string
	rows             int
	columns          int
	center           bool
	centerHorizontal bool
	centerVertical   bool
	output           string
	background       string
	quality          int
	parallelism      int
	autoOrient       bool
	scale            float64
	dryRun           bool
}

func (f *composeFlags) register(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringVar(&f.configPath, "config", "", "TOML file with default options")
	fs.StringVarP(&f.pattern, "pattern", "p", "", "glob of input images, appended after file arguments")
	fs.IntVarP(&f.rows, "rows", "r", 0, "number of rows (0 = derive)")
	fs.IntVarP(&f.columns, "columns", "c", 0, "number of columns (0 = derive)")
	fs.BoolVar(&f.center, "center", false, "center images in their cells on both axes")
	fs.BoolVar(&f.centerHorizontal, "center-horizontal", false, "center images horizontally in their cells")
	fs.BoolVar(&f.centerVertical, "center-vertical", false, "center images vertically in their cells")
	fs.StringVarP(&f.output, "output", "o", def.Output, "output file (.png, .jpg, .jpeg or .bmp)")
	fs.StringVar(&f.background, "background", def.Background, `canvas color, "#RRGGBB[AA]" or "transparent"`)
	fs.IntVar(&f.quality, "quality", def.Quality, "JPEG quality (1-100)")
	fs.IntVarP(&f.parallelism, "parallel", "j", 0, "images decoded at once (0 = number of CPUs)")
	fs.BoolVar(&f.autoOrient, "auto-orient", false, "apply EXIF orientation when decoding")
	fs.Float64Var(&f.scale, "scale", 0, "reserved, has no effect")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print the layout as JSON instead of writing an image")
}

// options builds the effective Options: defaults, then the config file, then
// any flag the user actually set. Positional args replace configured paths.
func (f *composeFlags) options(fs *pflag.FlagSet, args []string) (config.Options, error) {
	opts := config.Default()
	if f.configPath != "" {
		var err error
		if opts, err = config.LoadFile(f.configPath); err != nil {
			return opts, err
		}
	}

	if len(args) > 0 {
		opts.Paths = args
	}
	if fs.Changed("pattern") {
		opts.Pattern = f.pattern
	}
	if fs.Changed("rows") {
		opts.Rows = f.rows
	}
	if fs.Changed("columns") {
		opts.Columns = f.columns
	}
	if fs.Changed("center") {
		opts.Center = f.center
	}
	if fs.Changed("center-horizontal") {
		opts.CenterHorizontal = f.centerHorizontal
	}
	if fs.Changed("center-vertical") {
		opts.CenterVertical = f.centerVertical
	}
	if fs.Changed("output") {
		opts.Output = f.output
	}
	if fs.Changed("background") {
		opts.Background = f.background
	}
	if fs.Changed("quality") {
		opts.Quality = f.quality
	}
	if fs.Changed("parallel") {
		opts.Parallelism = f.parallelism
	}
	if fs.Changed("auto-orient") {
		opts.AutoOrient = f.autoOrient
	}
	if fs.Changed("scale") {
		opts.Scale = f.scale
	}
	return opts, opts.Validate()
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	var (
		verbose bool
		flags   composeFlags
	)

	root := &cobra.Command{
		Use:   "image-grid [flags] [image ...]",
		Short: "Combine images into a single grid image",
		Long: `image-grid lays out a set of images on a rectangular grid and writes the
result as one image. Every cell is as large as the widest and the tallest
input; images are placed row by row at their native size.

Rows and columns are derived from the image count unless --rows and/or
--columns are given. An explicit grid that cannot hold every image is an
error and nothing is written.`,
		Example: `  image-grid -o sheet.png a.png b.png c.png
  image-grid --pattern 'shots/*.jpg' --columns 4 --center -o contact.jpg
  image-grid --config grid.toml --dry-run`,
		Args:         cobra.ArbitraryArgs,
		Version:      version,
		SilenceUsage: true,
		// errors are logged by Execute
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, args, &flags)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("image-grid %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.register(root.Flags())

	root.AddCommand(newServeCmd())

	return root
}

func runCompose(cmd *cobra.Command, args []string, flags *composeFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, err := flags.options(cmd.Flags(), args)
	if err != nil {
		return err
	}

	cache := imaging.NewImageCache(imaging.WithAutoOrientation(opts.AutoOrient))
	builder := collage.NewBuilder(logger, cache)

	if flags.dryRun {
		res, err := builder.Plan(ctx, opts)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), res)
	}

	prog := newProgress(logger)
	res, err := builder.Build(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Composed %d images into %s (%dx%d grid, %dx%d px)",
		len(res.Inputs), res.Output,
		res.Plan.Shape.Rows, res.Plan.Shape.Columns,
		res.Plan.Canvas.Width, res.Plan.Canvas.Height))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
