package layout

import (
	"errors"
	"testing"
)

func TestResolveShape(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		rows     int
		cols     int
		wantRows int
		wantCols int
	}{
		{"single item", 1, 0, 0, 1, 1},
		{"perfect square", 9, 0, 0, 3, 3},
		{"ten items", 10, 0, 0, 3, 4},
		{"two items", 2, 0, 0, 1, 2},
		{"five items", 5, 0, 0, 2, 3},
		{"rows hint", 5, 2, 0, 2, 3},
		{"rows hint exact", 6, 3, 0, 3, 2},
		{"rows hint larger than items", 2, 5, 0, 5, 1},
		{"columns hint", 5, 0, 2, 3, 2},
		{"single column", 4, 0, 1, 4, 1},
		{"both hints exact", 6, 2, 3, 2, 3},
		{"both hints roomy", 5, 3, 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveShape(tt.items, tt.rows, tt.cols)
			if err != nil {
				t.Fatalf("ResolveShape(%d,%d,%d) failed: %v", tt.items, tt.rows, tt.cols, err)
			}
			if got.Rows != tt.wantRows || got.Columns != tt.wantCols {
				t.Errorf("ResolveShape(%d,%d,%d): got %dx%d, want %dx%d",
					tt.items, tt.rows, tt.cols, got.Rows, got.Columns, tt.wantRows, tt.wantCols)
			}
		})
	}
}

func TestResolveShape_Insufficient(t *testing.T) {
	_, err := ResolveShape(5, 2, 2)
	if err == nil {
		t.Fatal("ResolveShape should fail when rows*columns < items")
	}

	var gridErr *InsufficientGridError
	if !errors.As(err, &gridErr) {
		t.Fatalf("expected *InsufficientGridError, got %T", err)
	}
	if gridErr.Rows != 2 || gridErr.Columns != 2 || gridErr.Items != 5 {
		t.Errorf("error fields: got %+v, want rows=2 columns=2 items=5", gridErr)
	}
	if gridErr.Error() == "" {
		t.Error("error message is empty")
	}
}

func TestResolveShape_EmptyInput(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := ResolveShape(n, 0, 0); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("ResolveShape(%d): got %v, want ErrEmptyInput", n, err)
		}
	}
}

func TestResolveShape_NegativeHint(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{-1, 0},
		{0, -3},
		{-2, -2},
	}
	for _, tt := range tests {
		if _, err := ResolveShape(4, tt.rows, tt.cols); !errors.Is(err, ErrInvalidHint) {
			t.Errorf("ResolveShape(4,%d,%d): got %v, want ErrInvalidHint", tt.rows, tt.cols, err)
		}
	}
}

func TestResolveShape_NoEmptyTrailingRow(t *testing.T) {
	for n := 1; n <= 500; n++ {
		s, err := ResolveShape(n, 0, 0)
		if err != nil {
			t.Fatalf("ResolveShape(%d) failed: %v", n, err)
		}
		if s.Rows < 1 || s.Columns < 1 {
			t.Fatalf("n=%d: degenerate shape %+v", n, s)
		}
		if s.Cells() < n {
			t.Errorf("n=%d: shape %dx%d cannot hold all items", n, s.Rows, s.Columns)
		}
		if s.Cells()-s.Columns >= n {
			t.Errorf("n=%d: shape %dx%d has an empty trailing row", n, s.Rows, s.Columns)
		}
		if s.Rows > s.Columns {
			t.Errorf("n=%d: shape %dx%d is taller than wide", n, s.Rows, s.Columns)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{10, 4, 3},
		{12, 4, 3},
	}
	for _, tt := range tests {
		if got := ceilDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("ceilDiv(%d,%d): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCeilSqrt(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{1, 1},
		{2, 2},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
		{99, 10},
		{100, 10},
		{101, 11},
		{1 << 40, 1 << 20},
		{1<<40 + 1, 1<<20 + 1},
	}
	for _, tt := range tests {
		if got := ceilSqrt(tt.n); got != tt.want {
			t.Errorf("ceilSqrt(%d): got %d, want %d", tt.n, got, tt.want)
		}
	}
}
