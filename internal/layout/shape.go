package layout

import (
	"fmt"
	"math"
)

// Shape is the number of rows and columns of a grid.
type Shape struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// Cells returns the number of cells in the grid.
func (s Shape) Cells() int {
	return s.Rows * s.Columns
}

// ResolveShape determines the grid shape for itemCount items.
//
// Parameters:
//   - itemCount: number of items to place. Must be at least 1.
//   - rowsHint: requested row count, or 0 to derive it.
//   - colsHint: requested column count, or 0 to derive it.
//
// Returns:
//   - Shape: the resolved grid, always with Rows*Columns >= itemCount.
//   - error: ErrEmptyInput, ErrInvalidHint, or *InsufficientGridError when
//     both hints are given and their product is smaller than itemCount.
func ResolveShape(itemCount, rowsHint, colsHint int) (Shape, error) {
	if itemCount < 1 {
		return Shape{}, ErrEmptyInput
	}
	if rowsHint < 0 || colsHint < 0 {
		return Shape{}, fmt.Errorf("%w: rows=%d columns=%d", ErrInvalidHint, rowsHint, colsHint)
	}

	switch {
	case rowsHint == 0 && colsHint == 0:
		cols := ceilSqrt(itemCount)
		return Shape{Rows: ceilDiv(itemCount, cols), Columns: cols}, nil
	case colsHint == 0:
		return Shape{Rows: rowsHint, Columns: ceilDiv(itemCount, rowsHint)}, nil
	case rowsHint == 0:
		return Shape{Rows: ceilDiv(itemCount, colsHint), Columns: colsHint}, nil
	}

	if rowsHint*colsHint < itemCount {
		return Shape{}, &InsufficientGridError{Rows: rowsHint, Columns: colsHint, Items: itemCount}
	}
	return Shape{Rows: rowsHint, Columns: colsHint}, nil
}

// ceilDiv returns a/b rounded up, for a >= 0 and b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// ceilSqrt returns the smallest integer r with r*r >= n, for n >= 1.
func ceilSqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	// float rounding can land one off in either direction for large n
	for r*r > n {
		r--
	}
	for r*r < n {
		r++
	}
	return r
}
