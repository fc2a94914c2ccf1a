package layout

import "image"

// CenterOffset returns the top-left point that centers content on canvas
// using floor division.
func CenterOffset(canvas, content Size) image.Point {
	return image.Pt(floorDiv(canvas.Width-content.Width, 2), floorDiv(canvas.Height-content.Height, 2))
}

// floorDiv divides rounding toward negative infinity, so content larger than
// the canvas is still biased left/top.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
