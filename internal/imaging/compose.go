package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/polaroid-compose/internal/layout"
)

// Assemble pastes fg centered on bg. Foreground pixels replace background
// pixels outright.
func Assemble(bg, fg image.Image) *image.NRGBA {
	pt := layout.CenterOffset(layout.SizeOf(bg.Bounds()), layout.SizeOf(fg.Bounds()))
	return imaging.Paste(bg, fg, pt)
}

// ApplyOverlay alpha-composites overlay onto canvas at pt. A nil overlay
// returns an NRGBA copy of canvas.
func ApplyOverlay(canvas image.Image, overlay *image.NRGBA, pt image.Point) *image.NRGBA {
	if overlay == nil {
		return imaging.Clone(canvas)
	}
	return imaging.Overlay(canvas, overlay, pt, 1.0)
}

// Flatten composites img onto an opaque background of the given colour, for
// encoders without alpha support.
func Flatten(img image.Image, bg color.Color) *image.NRGBA {
	b := img.Bounds()
	base := imaging.New(b.Dx(), b.Dy(), bg)
	return imaging.Overlay(base, img, image.Pt(0, 0), 1.0)
}
