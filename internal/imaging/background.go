package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/polaroid-compose/internal/layout"
)

// Softening selects how the background is made soft.
type Softening string

const (
	// SoftenZoom cover-fits into an oversized intermediate and then back down
	// to the canvas; softness comes from the resampling loss.
	SoftenZoom Softening = "zoom"
	// SoftenBlur cover-fits into the canvas and applies a Gaussian blur.
	SoftenBlur Softening = "blur"
)

// ParseSoftening validates a configured softening strategy. An empty string
// selects SoftenZoom.
func ParseSoftening(s string) (Softening, error) {
	switch v := Softening(s); v {
	case "":
		return SoftenZoom, nil
	case SoftenZoom, SoftenBlur:
		return v, nil
	default:
		return "", fmt.Errorf("unknown background softening %q", s)
	}
}

// BackgroundParams configures BuildBackground.
type BackgroundParams struct {
	Canvas    layout.Size
	SafeCrop  layout.SafeCrop
	Softening Softening
	// ExtraScale enlarges the zoom intermediate; values below 1 act as 1.
	ExtraScale float64
	// BlurRadius is the Gaussian radius used by SoftenBlur.
	BlurRadius float64
	// Saturation and Brightness are enhancement factors; 1 leaves the image
	// unchanged and 0 is a valid factor, not an unset one.
	Saturation float64
	Brightness float64
}

// ZoomSize is the intermediate size used by SoftenZoom. It is never smaller
// than the canvas.
func (p BackgroundParams) ZoomSize() layout.Size {
	extra := p.ExtraScale
	if extra < 1 {
		extra = 1
	}
	return p.Canvas.Scale(extra)
}

// BuildBackground produces the canvas-sized backdrop layer: safe crop,
// softening, then saturation and brightness in that order.
func BuildBackground(src image.Image, p BackgroundParams) *image.NRGBA {
	cropped := ApplySafeCrop(src, p.SafeCrop)

	var bg image.Image
	switch p.Softening {
	case SoftenBlur:
		bg = Cover(cropped, p.Canvas)
		if p.BlurRadius > 0 {
			bg = blur.Gaussian(bg, p.BlurRadius)
		}
	default:
		bg = Cover(Cover(cropped, p.ZoomSize()), p.Canvas)
	}

	return imaging.Clone(Tone(bg, p.Saturation, p.Brightness))
}

// Tone applies a saturation factor and then a brightness factor. A factor of
// 1 leaves that channel alone; saturation 0 gives grayscale and brightness 0
// gives black.
func Tone(img image.Image, saturation, brightness float64) image.Image {
	if saturation != 1 {
		img = adjust.Saturation(img, saturation-1)
	}
	if brightness != 1 {
		img = adjust.Brightness(img, brightness-1)
	}
	return img
}
