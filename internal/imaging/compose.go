package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-grid/internal/layout"
)

// Composite draws images onto a new canvas according to plan.
//
// The canvas is plan.Canvas sized and filled with background (nil means fully
// transparent). Each image is copied at its native resolution into its
// placement rectangle with draw.Src, so its pixels, alpha included, replace
// whatever was underneath rather than being blended over it.
//
// images[i] must correspond to plan.Placements[i].
func Composite(images []image.Image, plan *layout.Plan, background color.Color) (*image.NRGBA, error) {
	if plan == nil {
		return nil, fmt.Errorf("nil layout plan")
	}
	if len(images) != len(plan.Placements) {
		return nil, fmt.Errorf("have %d images for %d placements", len(images), len(plan.Placements))
	}
	if background == nil {
		background = color.Transparent
	}

	canvas := imaging.New(plan.Canvas.Width, plan.Canvas.Height, background)
	for i, img := range images {
		p := plan.Placements[i]
		b := img.Bounds()
		if b.Dx() != p.Width || b.Dy() != p.Height {
			return nil, fmt.Errorf("image %d is %dx%d but was laid out as %dx%d",
				i, b.Dx(), b.Dy(), p.Width, p.Height)
		}
		draw.Draw(canvas, p.Rect(), img, b.Min, draw.Src)
	}
	return canvas, nil
}

// Sizes returns the pixel dimensions of each image, in order.
func Sizes(images []image.Image) []layout.Size {
	sizes := make([]layout.Size, len(images))
	for i, img := range images {
		sizes[i] = layout.SizeOf(img)
	}
	return sizes
}
