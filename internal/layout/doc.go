// Package layout implements the geometry of a composed polaroid frame.
//
// Everything in this package is pure integer/float arithmetic over sizes and
// rectangles: no pixels are read or written. The raster side lives in
// internal/imaging, which executes the plans computed here.
//
// # Coordinate System
//
// As in the rest of the module, (0,0) is the top-left corner, X grows to the
// right and Y grows downward. Rectangles are half-open: Min is inclusive, Max
// is exclusive.
//
// # Rounding
//
// Every fraction-to-pixel conversion uses math.Round (half away from zero)
// and integer centering uses floor division, so an odd remainder biases
// content one pixel toward the left/top.
//
// # Degenerate Input
//
// No function here returns an error for extreme but well-typed input. Sizes
// are clamped to at least one pixel, over-aggressive crops are abandoned, and
// overlay positions are clamped into the canvas. The only errors are for
// invalid enumerations and band ordering, which callers check once at
// configuration time.
package layout
