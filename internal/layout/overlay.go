package layout

import "image"

// OverlayHeight is the pixel height every logo element is resized to.
func OverlayHeight(canvas Size, scaleRatio float64) int {
	return atLeastOne(roundInt(float64(canvas.Short()) * scaleRatio))
}

// Gap is the horizontal spacing between two merged logo elements.
func Gap(canvas Size, gapRatio float64) int {
	return maxInt(0, roundInt(float64(canvas.Short())*gapRatio))
}

// MergeLayout lays items out left to right, separated by gap, each centered
// vertically on the tallest one. It returns the merged size and the offset of
// every item. No items yields a zero size.
func MergeLayout(items []Size, gap int) (Size, []image.Point) {
	if len(items) == 0 {
		return Size{}, nil
	}
	gap = maxInt(0, gap)

	var total Size
	for i, it := range items {
		total.Width += it.Width
		if i > 0 {
			total.Width += gap
		}
		total.Height = maxInt(total.Height, it.Height)
	}

	offsets := make([]image.Point, len(items))
	x := 0
	for i, it := range items {
		offsets[i] = image.Pt(x, (total.Height-it.Height)/2)
		x += it.Width + gap
	}
	return total, offsets
}
