package layout

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the engine is asked to lay out zero items.
var ErrEmptyInput = errors.New("no input images")

// ErrInvalidHint is returned for a negative row or column hint.
var ErrInvalidHint = errors.New("row and column hints must not be negative")

// InsufficientGridError reports an explicit rows x columns grid that cannot
// hold every item.
type InsufficientGridError struct {
	Rows    int
	Columns int
	Items   int
}

func (e *InsufficientGridError) Error() string {
	return fmt.Sprintf("grid %dx%d has %d cells, not enough for %d images",
		e.Rows, e.Columns, e.Rows*e.Columns, e.Items)
}
