// Package config holds the options that drive a single grid composition.
//
// Options are a plain value. Callers build one (from defaults, a TOML file
// and command-line flags), validate it, and pass it by value into the
// pipeline; nothing in this module keeps options in package state.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ironsheep/image-grid/internal/layout"
)

// DefaultOutput is the output path used when none is given.
const DefaultOutput = "grid.png"

// Options configures one composition run.
type Options struct {
	// Paths are input images, placed first and in the given order.
	Paths []string `toml:"paths" json:"paths,omitempty"`

	// Pattern is a glob whose sorted matches are appended after Paths.
	Pattern string `toml:"pattern" json:"pattern,omitempty"`

	// Rows and Columns are grid hints; 0 lets the engine derive them.
	Rows    int `toml:"rows" json:"rows,omitempty"`
	Columns int `toml:"columns" json:"columns,omitempty"`

	// Center centers items on both axes. CenterHorizontal and CenterVertical
	// enable a single axis.
	Center           bool `toml:"center" json:"center,omitempty"`
	CenterHorizontal bool `toml:"center_horizontal" json:"center_horizontal,omitempty"`
	CenterVertical   bool `toml:"center_vertical" json:"center_vertical,omitempty"`

	// Output is the destination file; its extension selects the encoder.
	Output string `toml:"output" json:"output,omitempty"`

	// Background is the canvas fill, "#RRGGBB[AA]" or "transparent".
	Background string `toml:"background" json:"background,omitempty"`

	// Quality is the JPEG quality, 1-100. Ignored for other formats.
	Quality int `toml:"quality" json:"quality,omitempty"`

	// Parallelism bounds concurrent decodes; 0 uses GOMAXPROCS.
	Parallelism int `toml:"parallelism" json:"parallelism,omitempty"`

	// AutoOrient applies EXIF orientation while decoding.
	AutoOrient bool `toml:"auto_orient" json:"auto_orient,omitempty"`

	// Scale is reserved for resampling support and has no effect.
	Scale float64 `toml:"scale" json:"scale,omitempty"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		Output:     DefaultOutput,
		Background: "transparent",
		Quality:    95,
	}
}

// LoadFile reads a TOML file on top of Default(). Unknown keys are rejected
// so that typos do not silently fall back to defaults.
func LoadFile(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return opts, fmt.Errorf("parse config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return opts, nil
}

// Validate reports every problem with o, joined into one error.
func (o Options) Validate() error {
	var errs []error
	if o.Rows < 0 {
		errs = append(errs, fmt.Errorf("rows must not be negative, got %d", o.Rows))
	}
	if o.Columns < 0 {
		errs = append(errs, fmt.Errorf("columns must not be negative, got %d", o.Columns))
	}
	if o.Quality < 1 || o.Quality > 100 {
		errs = append(errs, fmt.Errorf("quality must be between 1 and 100, got %d", o.Quality))
	}
	if o.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("parallelism must not be negative, got %d", o.Parallelism))
	}
	if o.Scale < 0 {
		errs = append(errs, fmt.Errorf("scale must not be negative, got %g", o.Scale))
	}
	if strings.TrimSpace(o.Output) == "" {
		errs = append(errs, errors.New("output path must not be empty"))
	}
	return errors.Join(errs...)
}

// Centering folds Center and the per-axis flags into a layout policy.
func (o Options) Centering() layout.Centering {
	return layout.Centering{
		Horizontal: o.Center || o.CenterHorizontal,
		Vertical:   o.Center || o.CenterVertical,
	}
}

// ScaleIgnored reports whether Scale was set to something other than the
// identity. Scaling is not implemented, so callers warn about it.
func (o Options) ScaleIgnored() bool {
	return o.Scale != 0 && o.Scale != 1
}
