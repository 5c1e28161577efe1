// Package collage runs a full grid composition: it resolves the input list,
// decodes every image, computes the layout, composites the canvas and writes
// the output file.
//
// No file is written unless every earlier step succeeded. In particular an
// explicit grid that is too small fails with *layout.InsufficientGridError
// before the canvas is even allocated.
package collage

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/image-grid/internal/config"
	"github.com/ironsheep/image-grid/internal/imaging"
	"github.com/ironsheep/image-grid/internal/layout"
)

// Result describes a composition.
type Result struct {
	// Inputs are the image paths in placement order.
	Inputs []string `json:"inputs"`

	// Plan is the resolved layout.
	Plan *layout.Plan `json:"plan"`

	// Output is the written file, empty for a dry run.
	Output string `json:"output,omitempty"`

	images []image.Image
	canvas *image.NRGBA
}

// Canvas returns the composited image, or nil if the result is only a plan.
func (r *Result) Canvas() *image.NRGBA {
	return r.canvas
}

// Builder composes grids. A Builder may be reused; it is safe for concurrent
// use as long as its cache is.
type Builder struct {
	logger *log.Logger
	cache  *imaging.ImageCache
}

// NewBuilder returns a Builder that decodes through cache. A nil logger
// discards log output; a nil cache gets a fresh one.
func NewBuilder(logger *log.Logger, cache *imaging.ImageCache) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cache == nil {
		cache = imaging.NewImageCache()
	}
	return &Builder{logger: logger, cache: cache}
}

// Plan resolves inputs, decodes them and computes the layout without
// producing any output.
func (b *Builder) Plan(ctx context.Context, opts config.Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if opts.ScaleIgnored() {
		b.logger.Warn("scale is reserved and has no effect", "scale", opts.Scale)
	}

	inputs, err := config.ResolveInputs(opts)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("resolved inputs", "count", len(inputs), "pattern", opts.Pattern)

	start := time.Now()
	images, err := b.cache.LoadAll(ctx, inputs, opts.Parallelism)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("decoded images", "count", len(images), "elapsed", time.Since(start).Round(time.Millisecond))

	plan, err := layout.Compute(imaging.Sizes(images), opts.Rows, opts.Columns, opts.Centering())
	if err != nil {
		return nil, err
	}
	b.logger.Debug("computed layout",
		"rows", plan.Shape.Rows,
		"columns", plan.Shape.Columns,
		"cell", fmt.Sprintf("%dx%d", plan.Cell.Width, plan.Cell.Height),
		"canvas", fmt.Sprintf("%dx%d", plan.Canvas.Width, plan.Canvas.Height))

	return &Result{Inputs: inputs, Plan: plan, images: images}, nil
}

// Render plans the composition and composites the canvas without writing it
// anywhere. The canvas is available from Result.Canvas.
func (b *Builder) Render(ctx context.Context, opts config.Options) (*Result, error) {
	bg, err := imaging.ParseHexColor(opts.Background)
	if err != nil {
		return nil, err
	}

	res, err := b.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}

	res.canvas, err = imaging.Composite(res.images, res.Plan, bg)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Build composes the grid and writes it to opts.Output.
func (b *Builder) Build(ctx context.Context, opts config.Options) (*Result, error) {
	if err := imaging.CheckOutputPath(opts.Output); err != nil {
		return nil, err
	}

	res, err := b.Render(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := imaging.Save(opts.Output, res.canvas, opts.Quality); err != nil {
		return nil, err
	}
	res.Output = opts.Output
	b.logger.Debug("wrote grid",
		"output", opts.Output,
		"images", len(res.Inputs),
		"size", fmt.Sprintf("%dx%d", res.Plan.Canvas.Width, res.Plan.Canvas.Height))
	return res, nil
}
