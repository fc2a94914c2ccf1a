package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/polaroid-compose/internal/layout"
)

// ApplySafeCrop removes the clamped safe-crop margins from img. When the
// crop has to be abandoned, or removes nothing, an unmodified copy of img is
// returned.
func ApplySafeCrop(img image.Image, crop layout.SafeCrop) *image.NRGBA {
	bounds := img.Bounds()
	r, ok := crop.Rect(layout.SizeOf(bounds))
	if !ok || r.Eq(image.Rect(0, 0, bounds.Dx(), bounds.Dy())) {
		return imaging.Clone(img)
	}
	return imaging.Crop(img, r.Add(bounds.Min))
}

// Cover scales img to fill box and crops the overflow around the center. The
// result is exactly box-sized.
func Cover(img image.Image, box layout.Size) *image.NRGBA {
	plan := layout.CoverFit(layout.SizeOf(img.Bounds()), box)
	resized := resize(img, plan.Scaled)
	return imaging.Crop(resized, plan.Crop)
}

// Contain scales img to fit entirely inside box without cropping.
func Contain(img image.Image, box layout.Size) *image.NRGBA {
	return resize(img, layout.ContainFit(layout.SizeOf(img.Bounds()), box))
}

// ResizeToHeight scales img to exactly height pixels, preserving aspect
// ratio.
func ResizeToHeight(img image.Image, height int) *image.NRGBA {
	return resize(img, layout.ResizeToHeight(layout.SizeOf(img.Bounds()), height))
}

// resize skips resampling when the size already matches.
func resize(img image.Image, size layout.Size) *image.NRGBA {
	if layout.SizeOf(img.Bounds()) == size {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, size.Width, size.Height, imaging.Lanczos)
}
