package compose

import (
	"image"

	"github.com/ironsheep/polaroid-compose/internal/imaging"
	"github.com/ironsheep/polaroid-compose/internal/layout"
	"github.com/ironsheep/polaroid-compose/internal/log"
	"github.com/ironsheep/polaroid-compose/internal/logo"
)

// Result carries the composed canvas and where everything went.
type Result struct {
	Image  *image.NRGBA
	Layout Layout
	// Overlay is the placed overlay's rectangle, empty when no branding
	// was drawn.
	Overlay image.Rectangle
}

// Engine composes images. The zero value composes without branding.
type Engine struct {
	Resolver *logo.Resolver
}

// NewEngine returns an Engine resolving logos through r.
func NewEngine(r *logo.Resolver) *Engine {
	return &Engine{Resolver: r}
}

// Compose returns the canvas-sized composition of src.
func (e *Engine) Compose(src image.Image, p Params) *image.NRGBA {
	return e.ComposeResult(src, p).Image
}

// ComposeResult composes src and reports the layout used.
func (e *Engine) ComposeResult(src image.Image, p Params) Result {
	l := Plan(layout.SizeOf(src.Bounds()), p)

	bg := imaging.BuildBackground(src, p.background())
	fg := imaging.Contain(src, l.ForegroundBox)
	canvas := imaging.Assemble(bg, fg)

	res := Result{Image: canvas, Layout: l}
	if p.Logo == nil {
		return res
	}

	overlay := e.overlay(*p.Logo, l)
	if overlay == nil {
		log.Debugf("no branding resolved, overlay skipped")
		return res
	}

	res.Overlay = l.OverlayRect(layout.SizeOf(overlay.Bounds()), p.Logo.Placement)
	res.Image = imaging.ApplyOverlay(canvas, imaging.ApplyOpacity(overlay, p.Logo.Opacity), res.Overlay.Min)
	return res
}

// overlay resolves brand and model at the planned height and merges them.
func (e *Engine) overlay(lp LogoParams, l Layout) *image.NRGBA {
	if e.Resolver == nil {
		return nil
	}
	items := []*image.NRGBA{
		e.Resolver.Render(lp.Brand, l.OverlayHeight),
		e.Resolver.Render(lp.Model, l.OverlayHeight),
	}
	return imaging.MergeOverlay(items, l.Gap)
}
