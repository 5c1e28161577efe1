package layout

import (
	"image"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SizeOf returns the pixel dimensions of img.
func SizeOf(img image.Image) Size {
	b := img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// Centering selects, per axis, whether an item smaller than its cell is
// centered in it or anchored to the cell's top-left corner.
type Centering struct {
	Horizontal bool `json:"horizontal"`
	Vertical   bool `json:"vertical"`
}

// CellSizeOf returns the uniform cell size for sizes: the largest width and
// the largest height found. It returns ErrEmptyInput for an empty slice.
func CellSizeOf(sizes []Size) (Size, error) {
	if len(sizes) == 0 {
		return Size{}, ErrEmptyInput
	}
	var cell Size
	for _, s := range sizes {
		cell.Width = max(cell.Width, s.Width)
		cell.Height = max(cell.Height, s.Height)
	}
	return cell, nil
}

// Place returns the canvas offset of the top-left pixel of item index.
//
// Items fill the grid row by row. When centering is enabled on an axis the
// item is shifted by half the unused cell space on that axis, rounded down.
func Place(index int, shape Shape, cell, item Size, c Centering) image.Point {
	row := index / shape.Columns
	col := index % shape.Columns

	p := image.Point{X: col * cell.Width, Y: row * cell.Height}
	if c.Horizontal {
		p.X += (cell.Width - item.Width) / 2
	}
	if c.Vertical {
		p.Y += (cell.Height - item.Height) / 2
	}
	return p
}

// Placement is where a single item lands on the canvas.
type Placement struct {
	Index  int `json:"index"`
	Row    int `json:"row"`
	Column int `json:"column"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect returns the canvas rectangle covered by the item.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// Plan is a fully resolved grid layout.
type Plan struct {
	Shape      Shape       `json:"shape"`
	Cell       Size        `json:"cell"`
	Canvas     Size        `json:"canvas"`
	Centering  Centering   `json:"centering"`
	Placements []Placement `json:"placements"`
}

// Compute lays out items of the given sizes, in order.
//
// The shape, cell size and canvas size are fixed before any placement is
// computed. Errors from ResolveShape are returned unchanged, so callers can
// match *InsufficientGridError with errors.As.
func Compute(sizes []Size, rowsHint, colsHint int, c Centering) (*Plan, error) {
	shape, err := ResolveShape(len(sizes), rowsHint, colsHint)
	if err != nil {
		return nil, err
	}
	cell, err := CellSizeOf(sizes)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Shape:      shape,
		Cell:       cell,
		Canvas:     Size{Width: shape.Columns * cell.Width, Height: shape.Rows * cell.Height},
		Centering:  c,
		Placements: make([]Placement, len(sizes)),
	}
	for i, s := range sizes {
		p := Place(i, shape, cell, s, c)
		plan.Placements[i] = Placement{
			Index:  i,
			Row:    i / shape.Columns,
			Column: i % shape.Columns,
			X:      p.X,
			Y:      p.Y,
			Width:  s.Width,
			Height: s.Height,
		}
	}
	return plan, nil
}
