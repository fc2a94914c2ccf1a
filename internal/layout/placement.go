package layout

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// Placement selects where the branding overlay goes on the canvas.
type Placement string

const (
	PlacementBottomRight       Placement = "bottom_right"
	PlacementBottomCenter      Placement = "bottom_center"
	PlacementCustom            Placement = "custom"
	PlacementFrameBottomCenter Placement = "frame_bottom_center"
)

var (
	// ErrUnknownPlacement is returned for placement strings outside the
	// supported set when parsing strictly.
	ErrUnknownPlacement = errors.New("unknown placement")

	// ErrInvalidBand is returned when a bottom band is out of range or
	// inverted.
	ErrInvalidBand = errors.New("invalid bottom band")
)

// Placements lists the supported placement modes.
func Placements() []Placement {
	return []Placement{
		PlacementBottomRight,
		PlacementBottomCenter,
		PlacementCustom,
		PlacementFrameBottomCenter,
	}
}

// ParsePlacement validates a placement string. An empty string selects
// PlacementBottomRight. With lenient set, unknown values also map to
// PlacementBottomRight and the second result is false so the caller can warn.
func ParsePlacement(s string, lenient bool) (Placement, bool, error) {
	if s == "" {
		return PlacementBottomRight, true, nil
	}
	for _, p := range Placements() {
		if Placement(s) == p {
			return p, true, nil
		}
	}
	if lenient {
		return PlacementBottomRight, false, nil
	}
	return "", false, fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
}

// BottomBand is a horizontal strip of the canvas, as fractions of its height,
// inside which a frame_bottom_center overlay is positioned. YBias moves the
// overlay from the band top (0) to flush with the band bottom (1).
type BottomBand struct {
	TopRatio    float64 `json:"top_ratio" yaml:"top_ratio"`
	BottomRatio float64 `json:"bottom_ratio" yaml:"bottom_ratio"`
	YBias       float64 `json:"y_bias" yaml:"y_bias"`
}

// DefaultBottomBand is the band used when none is configured.
var DefaultBottomBand = BottomBand{TopRatio: 0.78, BottomRatio: 0.98, YBias: 0.72}

// Validate checks 0 <= TopRatio < BottomRatio <= 1 and YBias in [0,1].
func (b BottomBand) Validate() error {
	switch {
	case b.TopRatio < 0 || b.BottomRatio > 1:
		return fmt.Errorf("%w: ratios must be within [0,1], got top=%g bottom=%g", ErrInvalidBand, b.TopRatio, b.BottomRatio)
	case b.TopRatio >= b.BottomRatio:
		return fmt.Errorf("%w: top_ratio %g must be below bottom_ratio %g", ErrInvalidBand, b.TopRatio, b.BottomRatio)
	case b.YBias < 0 || b.YBias > 1:
		return fmt.Errorf("%w: y_bias %g must be within [0,1]", ErrInvalidBand, b.YBias)
	}
	return nil
}

// Span returns the band's top and bottom rows on a canvas of the given
// height. The top is kept inside [0,height-1] and the bottom inside
// [top+1,height], so the band is never empty.
func (b BottomBand) Span(height int) (top, bottom int) {
	top = clampInt(roundInt(float64(height)*b.TopRatio), 0, maxInt(0, height-1))
	bottom = clampInt(roundInt(float64(height)*b.BottomRatio), top+1, maxInt(top+1, height))
	return top, bottom
}

// PlacementParams carries everything needed to position an overlay.
type PlacementParams struct {
	Mode        Placement
	MarginRatio float64
	// CustomX and CustomY locate the overlay's bottom-right corner as
	// fractions of the canvas, used by PlacementCustom.
	CustomX float64
	CustomY float64
	Band    BottomBand
}

// Margin converts a margin ratio into pixels against the canvas's short
// side, so portrait and landscape canvases get the same visual margin.
func Margin(canvas Size, ratio float64) int {
	return roundInt(float64(canvas.Short()) * ratio)
}

// Place returns the top-left position of an overlay on the canvas. Whatever
// the mode, the result is clamped so the overlay never starts outside the
// canvas and, when it fits, never overflows it.
func Place(canvas, overlay Size, p PlacementParams) image.Point {
	m := Margin(canvas, p.MarginRatio)
	W, H := canvas.Width, canvas.Height
	ow, oh := overlay.Width, overlay.Height

	var x, y int
	switch p.Mode {
	case PlacementBottomCenter:
		x = floorDiv(W-ow, 2)
		y = H - m - oh
	case PlacementCustom:
		x = roundInt(float64(W)*p.CustomX) - ow
		y = roundInt(float64(H)*p.CustomY) - oh
	case PlacementFrameBottomCenter:
		x, y = placeInBand(canvas, overlay, m, p.Band)
	default:
		x = W - m - ow
		y = H - m - oh
	}

	return image.Pt(
		clampInt(x, 0, maxInt(0, W-ow)),
		clampInt(y, 0, maxInt(0, H-oh)),
	)
}

func placeInBand(canvas, overlay Size, margin int, band BottomBand) (int, int) {
	W, H := canvas.Width, canvas.Height
	ow, oh := overlay.Width, overlay.Height

	top, bottom := band.Span(H)
	bandH := maxInt(1, bottom-top)

	x := floorDiv(W-ow, 2)
	y := top + int(math.Round(float64(bandH-oh)*band.YBias))

	y = minInt(maxInt(y, top), bottom-oh)
	y = minInt(y, H-margin-oh)
	x = maxInt(margin, minInt(x, W-margin-ow))
	return x, y
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
