// Package imaging decodes, composites and encodes the raster images that the
// grid layout engine arranges.
//
// Everything pixel-related lives here; the geometry lives in package layout.
// The pipeline is:
//
//	cache := imaging.NewImageCache()
//	imgs, err := cache.LoadAll(ctx, paths, 0)        // decode, input order kept
//	plan, err := layout.Compute(imaging.Sizes(imgs), rows, cols, centering)
//	canvas, err := imaging.Composite(imgs, plan, bg) // copy into cells
//	err = imaging.Save("grid.png", canvas, 0)       // encode by extension
//
// # Decoding
//
// Images are decoded with github.com/disintegration/imaging, which handles
// PNG, JPEG, GIF, BMP and TIFF and can apply EXIF orientation. LoadAll decodes
// files concurrently but always returns them in the order they were given.
//
// # Compositing
//
// The canvas is an *image.NRGBA, initially filled with the background color
// (transparent unless configured). Images are copied, never blended: a
// transparent pixel in an input stays transparent on the canvas.
//
// # Encoding
//
// Output is encoded with github.com/anthonynsimon/bild/imgio. The format is
// picked from the output file extension: .png, .jpg/.jpeg or .bmp.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Composite and the encoders are
// stateless.
package imaging
