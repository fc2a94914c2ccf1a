package config

import (
	"fmt"

	"github.com/ironsheep/polaroid-compose/internal/imaging"
	"github.com/ironsheep/polaroid-compose/internal/layout"
)

// OutputFormats lists the accepted output_extension values.
var OutputFormats = []string{"jpg", "jpeg", "png", "webp"}

const maxLayoutRatio = 0.2

// Validate checks if the configuration is valid. The first violation is
// returned, wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.InboxDir == "" || c.OutDir == "" {
		return invalid("inbox_dir and out_dir must be set")
	}
	if c.MoveProcessedToDone && c.DoneDir == "" {
		return invalid("done_dir must be set when move_processed_to_done is true")
	}
	if !contains(OutputFormats, c.OutputExtension) {
		return invalid("output_extension %q must be one of %v", c.OutputExtension, OutputFormats)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return invalid("jpeg_quality must be between 1 and 100")
	}
	if len(c.SupportedExtensions) == 0 {
		return invalid("supported_extensions cannot be empty")
	}
	if c.Workers < 0 {
		return invalid("workers must not be negative")
	}

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return invalid("canvas.width and canvas.height must be positive")
	}

	mode, err := layout.ParseScaleMode(c.Foreground.Mode)
	if err != nil {
		return invalid("foreground.mode: %v", err)
	}
	if mode != layout.ScaleGolden && (c.Foreground.Ratio <= 0 || c.Foreground.Ratio > 1) {
		return invalid("foreground.ratio must be within (0, 1] for mode %s", mode)
	}

	bg := c.Background
	if _, err := imaging.ParseSoftening(bg.Softening); err != nil {
		return invalid("background.softening: %v", err)
	}
	if bg.ExtraScale < 1 {
		return invalid("background.extra_scale must be at least 1")
	}
	if bg.BlurRadius < 0 {
		return invalid("background.blur_radius must not be negative")
	}
	if bg.Brightness < 0 || bg.Saturation < 0 {
		return invalid("background.brightness and background.saturation must not be negative")
	}
	sc := bg.SafeCrop
	if sc.Left < 0 || sc.Right < 0 || sc.Top < 0 || sc.Bottom < 0 {
		return invalid("background.safe_crop fractions must not be negative")
	}

	if c.Logo.Enabled {
		if err := c.Logo.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (l LogoConfig) validate() error {
	if _, _, err := layout.ParsePlacement(l.Placement, l.LenientPlacement); err != nil {
		return invalid("logo.placement: %v", err)
	}
	ratios := []struct {
		name string
		v    float64
	}{
		{"margin_ratio", l.MarginRatio},
		{"scale_ratio", l.ScaleRatio},
		{"gap_ratio", l.GapRatio},
	}
	for _, r := range ratios {
		if r.v < 0 || r.v > maxLayoutRatio {
			return invalid("logo.%s must be within [0, %g]", r.name, maxLayoutRatio)
		}
	}
	if l.Opacity < 0 || l.Opacity > 1 {
		return invalid("logo.opacity must be within [0, 1]")
	}
	if err := l.BottomBand.Validate(); err != nil {
		return invalid("logo.bottom_band: %v", err)
	}
	if err := l.Brand.Validate(); err != nil {
		return invalid("logo.brand: %v", err)
	}
	if err := l.Model.Validate(); err != nil {
		return invalid("logo.model: %v", err)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig}, args...)...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
