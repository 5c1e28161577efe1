package config

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ironsheep/image-grid/internal/layout"
)

// ResolveInputs returns the ordered list of images to compose: o.Paths as
// given, followed by the lexically sorted matches of o.Pattern.
//
// The pattern may use "**" to match any number of directories. Only regular
// files are matched; directories whose names fit the pattern are skipped.
// Explicit paths are not checked for existence here; decoding reports missing
// files. A pattern that matches nothing contributes nothing. If the combined
// list is empty the result is layout.ErrEmptyInput.
func ResolveInputs(o Options) ([]string, error) {
	inputs := make([]string, 0, len(o.Paths))
	inputs = append(inputs, o.Paths...)

	if o.Pattern != "" {
		matches, err := doublestar.FilepathGlob(o.Pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", o.Pattern, err)
		}
		sort.Strings(matches)
		inputs = append(inputs, matches...)
	}

	if len(inputs) == 0 {
		return nil, layout.ErrEmptyInput
	}
	return inputs, nil
}
