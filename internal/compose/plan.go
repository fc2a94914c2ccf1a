package compose

import (
	"image"

	"github.com/ironsheep/polaroid-compose/internal/imaging"
	"github.com/ironsheep/polaroid-compose/internal/layout"
)

// Layout is the geometry of one composition.
type Layout struct {
	Canvas layout.Size `json:"canvas"`
	Source layout.Size `json:"source"`

	// SafeCrop is the region of the source kept for the background, and
	// SafeCropApplied is false when the crop was abandoned or empty.
	SafeCrop        image.Rectangle `json:"safe_crop"`
	SafeCropApplied bool            `json:"safe_crop_applied"`

	// BackgroundZoom is the oversized intermediate of zoom softening; zero
	// with blur softening.
	BackgroundZoom layout.Size `json:"background_zoom"`

	ForegroundBox layout.Size     `json:"foreground_box"`
	Foreground    image.Rectangle `json:"foreground"`

	// Overlay geometry, zero when no logo is configured.
	Margin        int             `json:"margin"`
	OverlayHeight int             `json:"overlay_height"`
	Gap           int             `json:"gap"`
	Band          image.Rectangle `json:"band"`
}

// Plan computes the layout of a src-sized photo without decoding pixels.
func Plan(src layout.Size, p Params) Layout {
	l := Layout{Canvas: p.Canvas, Source: src}

	crop, ok := p.Background.SafeCrop.Rect(src)
	l.SafeCrop = crop
	l.SafeCropApplied = ok && crop != src.Rect()

	if p.Background.Softening != imaging.SoftenBlur {
		l.BackgroundZoom = p.background().ZoomSize()
	}

	l.ForegroundBox = p.Foreground.Box(p.Canvas)
	fg := layout.ContainFit(src, l.ForegroundBox)
	l.Foreground = fg.Rect().Add(layout.CenterOffset(p.Canvas, fg))

	if lp := p.Logo; lp != nil {
		l.Margin = layout.Margin(p.Canvas, lp.Placement.MarginRatio)
		l.OverlayHeight = layout.OverlayHeight(p.Canvas, lp.ScaleRatio)
		l.Gap = layout.Gap(p.Canvas, lp.GapRatio)
		if lp.Placement.Mode == layout.PlacementFrameBottomCenter {
			top, bottom := lp.Placement.Band.Span(p.Canvas.Height)
			l.Band = image.Rect(0, top, p.Canvas.Width, bottom)
		}
	}
	return l
}

// OverlayRect returns where an overlay of the given size lands.
func (l Layout) OverlayRect(overlay layout.Size, p layout.PlacementParams) image.Rectangle {
	return overlay.Rect().Add(layout.Place(l.Canvas, overlay, p))
}
