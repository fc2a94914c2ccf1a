package compose

import (
	"github.com/ironsheep/polaroid-compose/internal/imaging"
	"github.com/ironsheep/polaroid-compose/internal/layout"
	"github.com/ironsheep/polaroid-compose/internal/logo"
)

// LogoParams configures the branding overlay.
type LogoParams struct {
	Brand logo.Item
	Model logo.Item

	Placement layout.PlacementParams
	// ScaleRatio sets the overlay height against the canvas short side.
	ScaleRatio float64
	// GapRatio sets the spacing between brand and model.
	GapRatio float64
	Opacity  float64
}

// Params is the fully validated parameter set for one composition.
type Params struct {
	Canvas     layout.Size
	Background imaging.BackgroundParams
	Foreground layout.ForegroundScale
	// Logo is nil when branding is disabled.
	Logo *LogoParams
}

// background returns the background parameters bound to the canvas.
func (p Params) background() imaging.BackgroundParams {
	bg := p.Background
	bg.Canvas = p.Canvas
	return bg
}
