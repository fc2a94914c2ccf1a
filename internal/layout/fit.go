package layout

import (
	"fmt"
	"image"
	"math"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SizeOf returns the size of an image rectangle.
func SizeOf(r image.Rectangle) Size {
	return Size{Width: r.Dx(), Height: r.Dy()}
}

// Short returns the smaller of the two dimensions.
func (s Size) Short() int {
	if s.Width < s.Height {
		return s.Width
	}
	return s.Height
}

// Valid reports whether both dimensions are at least one pixel.
func (s Size) Valid() bool {
	return s.Width >= 1 && s.Height >= 1
}

// Scale multiplies both dimensions by f, rounding to the nearest pixel and
// never going below one pixel.
func (s Size) Scale(f float64) Size {
	return Size{
		Width:  atLeastOne(roundInt(float64(s.Width) * f)),
		Height: atLeastOne(roundInt(float64(s.Height) * f)),
	}
}

// Rect returns the rectangle of this size anchored at the origin.
func (s Size) Rect() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// CoverPlan describes a cover fit: resize the source to Scaled, then keep the
// Crop rectangle (expressed in Scaled coordinates), which always has exactly
// the size of the target box.
type CoverPlan struct {
	Scaled Size            `json:"scaled"`
	Crop   image.Rectangle `json:"crop"`
}

// CoverFit computes the scale-to-fill geometry of src into box.
//
// The scale factor is max(box.W/src.W, box.H/src.H). The scaled size is
// rounded to the nearest pixel, never below one pixel and never below the box
// in either dimension, so no edge of the box is left unfilled. The crop is
// centered with floor division.
func CoverFit(src, box Size) CoverPlan {
	src = clampSize(src)
	box = clampSize(box)

	scale := math.Max(
		float64(box.Width)/float64(src.Width),
		float64(box.Height)/float64(src.Height),
	)
	scaled := Size{
		Width:  maxInt(box.Width, atLeastOne(roundInt(float64(src.Width)*scale))),
		Height: maxInt(box.Height, atLeastOne(roundInt(float64(src.Height)*scale))),
	}

	left := (scaled.Width - box.Width) / 2
	top := (scaled.Height - box.Height) / 2
	return CoverPlan{
		Scaled: scaled,
		Crop:   image.Rect(left, top, left+box.Width, top+box.Height),
	}
}

// ContainFit computes the scale-to-fit size of src inside box without
// cropping. The result never exceeds box in either dimension and is at least
// one pixel in each.
func ContainFit(src, box Size) Size {
	src = clampSize(src)
	box = clampSize(box)

	scale := math.Min(
		float64(box.Width)/float64(src.Width),
		float64(box.Height)/float64(src.Height),
	)
	return Size{
		Width:  clampInt(roundInt(float64(src.Width)*scale), 1, box.Width),
		Height: clampInt(roundInt(float64(src.Height)*scale), 1, box.Height),
	}
}

// ResizeToHeight returns the size of src scaled to exactly height pixels
// tall, preserving aspect ratio.
func ResizeToHeight(src Size, height int) Size {
	src = clampSize(src)
	height = atLeastOne(height)
	scale := float64(height) / float64(src.Height)
	return Size{
		Width:  atLeastOne(roundInt(float64(src.Width) * scale)),
		Height: height,
	}
}

func clampSize(s Size) Size {
	return Size{Width: atLeastOne(s.Width), Height: atLeastOne(s.Height)}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
