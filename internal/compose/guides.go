package compose

import (
	"image"
	"image/color"

	"github.com/ironsheep/polaroid-compose/internal/imaging"
)

var (
	guideMargin     = color.NRGBA{0, 255, 255, 255}
	guideBand       = color.NRGBA{255, 255, 0, 255}
	guideForeground = color.NRGBA{255, 0, 255, 255}
	guideOverlay    = color.NRGBA{0, 255, 0, 255}
)

// Guides draws the layout over img: the margin box, the bottom band, the
// foreground frame and the overlay rectangle, each labeled with its origin.
func Guides(img image.Image, l Layout, overlay image.Rectangle) *image.NRGBA {
	canvas := l.Canvas.Rect()
	guides := []imaging.Guide{
		{Rect: l.Foreground, Color: guideForeground, Label: true},
	}
	if l.Margin > 0 {
		guides = append(guides, imaging.Guide{Rect: canvas.Inset(l.Margin), Color: guideMargin})
	}
	if !l.Band.Empty() {
		guides = append(guides, imaging.Guide{Rect: l.Band, Color: guideBand, Label: true})
	}
	if !overlay.Empty() {
		guides = append(guides, imaging.Guide{Rect: overlay, Color: guideOverlay, Label: true})
	}
	return imaging.DrawGuides(img, guides)
}
