// Package imaging executes the raster side of a polaroid composition.
//
// The geometry of every step (crop rectangles, fit sizes, offsets) is
// computed by internal/layout; this package turns those plans into pixels
// using github.com/disintegration/imaging for resampling, cropping and
// pasting, and github.com/anthonynsimon/bild for tone adjustment and blur.
// All functions take an image.Image and return a fresh *image.NRGBA, so the
// input is never mutated.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with the origin at the
// top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, Min is inclusive and Max is exclusive
//
// Inputs whose bounds do not start at (0,0) are handled; outputs always do.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Every other function is
// stateless and may be called concurrently on different images.
//
// # Resampling
//
// All resizes use the Lanczos filter. Exact pixel values are not part of the
// contract: tests assert sizes, positions and coarse colours only.
//
// # Error Handling
//
// Raster operations do not fail: degenerate sizes are clamped upstream by
// layout. Errors are only returned for file I/O and decoding, and for text
// colours that cannot be parsed.
package imaging
