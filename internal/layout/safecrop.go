package layout

import (
	"image"
	"math"
)

// MinSafeKeepRatio is the smallest fraction of each source dimension that a
// safe crop is allowed to keep.
const MinSafeKeepRatio = 0.60

// maxSafeCropTotal is the largest combined fraction removable from one axis.
const maxSafeCropTotal = 1 - MinSafeKeepRatio

// SafeCrop holds per-edge fractions of the source to remove before the
// background is fitted. Left/Right are fractions of the width, Top/Bottom of
// the height.
type SafeCrop struct {
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// IsZero reports whether the crop removes nothing.
func (c SafeCrop) IsZero() bool {
	return c.Left <= 0 && c.Right <= 0 && c.Top <= 0 && c.Bottom <= 0
}

// Clamp returns the crop with each axis pair scaled down proportionally so
// that it never removes more than 1-MinSafeKeepRatio of that axis. The ratio
// between the two members of a pair is preserved, which keeps the direction
// of an asymmetric crop. Negative fractions are treated as zero.
func (c SafeCrop) Clamp() SafeCrop {
	out := SafeCrop{
		Left:   math.Max(0, c.Left),
		Right:  math.Max(0, c.Right),
		Top:    math.Max(0, c.Top),
		Bottom: math.Max(0, c.Bottom),
	}
	if lr := out.Left + out.Right; lr > maxSafeCropTotal && lr > 0 {
		f := maxSafeCropTotal / lr
		out.Left *= f
		out.Right *= f
	}
	if tb := out.Top + out.Bottom; tb > maxSafeCropTotal && tb > 0 {
		f := maxSafeCropTotal / tb
		out.Top *= f
		out.Bottom *= f
	}
	return out
}

// Rect returns the region of a src-sized image that the clamped crop keeps.
//
// The second result is false when the crop has to be abandoned: after
// rounding, the kept width or height would fall below
// floor(dim*MinSafeKeepRatio) or below one pixel. Callers then use the
// uncropped image. A zero crop yields the full rectangle and true.
func (c SafeCrop) Rect(src Size) (image.Rectangle, bool) {
	full := src.Rect()
	if !src.Valid() {
		return full, false
	}
	if c.IsZero() {
		return full, true
	}

	cl := c.Clamp()
	left := roundInt(float64(src.Width) * cl.Left)
	right := roundInt(float64(src.Width) * cl.Right)
	top := roundInt(float64(src.Height) * cl.Top)
	bottom := roundInt(float64(src.Height) * cl.Bottom)

	// image.Rect would swap inverted edges, so check the kept extent first.
	keptW := src.Width - right - left
	keptH := src.Height - bottom - top
	minW := int(math.Floor(float64(src.Width) * MinSafeKeepRatio))
	minH := int(math.Floor(float64(src.Height) * MinSafeKeepRatio))
	if keptW < 1 || keptH < 1 || keptW < minW || keptH < minH {
		return full, false
	}
	return image.Rect(left, top, left+keptW, top+keptH), true
}
