package config

import (
	"github.com/ironsheep/polaroid-compose/internal/compose"
	"github.com/ironsheep/polaroid-compose/internal/imaging"
	"github.com/ironsheep/polaroid-compose/internal/layout"
	"github.com/ironsheep/polaroid-compose/internal/log"
	"github.com/ironsheep/polaroid-compose/internal/logo"
)

// ComposeParams converts a validated configuration into engine parameters.
func (c *Config) ComposeParams() (compose.Params, error) {
	if err := c.Validate(); err != nil {
		return compose.Params{}, err
	}

	mode, _ := layout.ParseScaleMode(c.Foreground.Mode)
	softening, _ := imaging.ParseSoftening(c.Background.Softening)

	p := compose.Params{
		Canvas: layout.Size{Width: c.Canvas.Width, Height: c.Canvas.Height},
		Background: imaging.BackgroundParams{
			SafeCrop:   c.Background.SafeCrop,
			Softening:  softening,
			ExtraScale: c.Background.ExtraScale,
			BlurRadius: c.Background.BlurRadius,
			Saturation: c.Background.Saturation,
			Brightness: c.Background.Brightness,
		},
		Foreground: layout.ForegroundScale{Mode: mode, Ratio: c.Foreground.Ratio},
	}

	if c.Logo.Enabled {
		placement, known, _ := layout.ParsePlacement(c.Logo.Placement, c.Logo.LenientPlacement)
		if !known {
			log.Warnf("unknown logo placement %q, using %s", c.Logo.Placement, placement)
		}
		p.Logo = &compose.LogoParams{
			Brand: c.Logo.Brand,
			Model: c.Logo.Model,
			Placement: layout.PlacementParams{
				Mode:        placement,
				MarginRatio: c.Logo.MarginRatio,
				CustomX:     c.Logo.CustomPosition.X,
				CustomY:     c.Logo.CustomPosition.Y,
				Band:        c.Logo.BottomBand,
			},
			ScaleRatio: c.Logo.ScaleRatio,
			GapRatio:   c.Logo.GapRatio,
			Opacity:    c.Logo.Opacity,
		}
	}
	return p, nil
}

// Resolver builds the logo resolver described by the configuration.
func (c *Config) Resolver() *logo.Resolver {
	return logo.NewResolver(c.Logo.Dir, c.Logo.List, c.Logo.AutoScan)
}
