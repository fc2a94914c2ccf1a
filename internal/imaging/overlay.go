package imaging

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/polaroid-compose/internal/layout"
)

// MergeOverlay lays the non-nil items out side by side, separated by gap
// pixels and centered vertically on the tallest. A single item is returned
// as a copy; no items returns nil.
func MergeOverlay(items []*image.NRGBA, gap int) *image.NRGBA {
	present := make([]*image.NRGBA, 0, len(items))
	for _, it := range items {
		if it != nil && !it.Bounds().Empty() {
			present = append(present, it)
		}
	}

	switch len(present) {
	case 0:
		return nil
	case 1:
		return imaging.Clone(present[0])
	}

	sizes := make([]layout.Size, len(present))
	for i, it := range present {
		sizes[i] = layout.SizeOf(it.Bounds())
	}
	total, offsets := layout.MergeLayout(sizes, gap)

	merged := image.NewNRGBA(total.Rect())
	for i, it := range present {
		r := it.Bounds().Sub(it.Bounds().Min).Add(offsets[i])
		draw.Draw(merged, r, it, it.Bounds().Min, draw.Src)
	}
	return merged
}

// ApplyOpacity returns a copy of img with every alpha value multiplied by
// opacity, clamped to [0,1].
func ApplyOpacity(img *image.NRGBA, opacity float64) *image.NRGBA {
	out := imaging.Clone(img)
	if opacity >= 1 {
		return out
	}
	if opacity < 0 {
		opacity = 0
	}
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = uint8(float64(out.Pix[i])*opacity + 0.5)
	}
	return out
}
