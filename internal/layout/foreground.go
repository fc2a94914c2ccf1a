package layout

import (
	"fmt"
	"math"
)

// Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

// ScaleMode selects how the foreground target box is derived from the canvas.
type ScaleMode string

const (
	// ScaleGolden sizes the box at 1/Phi of the canvas in both dimensions.
	ScaleGolden ScaleMode = "golden"
	// ScaleFit sizes the box at a fixed fraction of the canvas.
	ScaleFit ScaleMode = "fit"
	// ScaleOverride is ScaleFit with an explicitly supplied fraction.
	ScaleOverride ScaleMode = "override"
	// ScaleWidthRatio bounds only the width; the height is the full canvas.
	ScaleWidthRatio ScaleMode = "width_ratio"
)

// ParseScaleMode validates a configured scale mode. An empty string selects
// ScaleGolden.
func ParseScaleMode(s string) (ScaleMode, error) {
	switch m := ScaleMode(s); m {
	case "":
		return ScaleGolden, nil
	case ScaleGolden, ScaleFit, ScaleOverride, ScaleWidthRatio:
		return m, nil
	default:
		return "", fmt.Errorf("unknown foreground mode %q", s)
	}
}

// ForegroundScale is the paper-scale policy for the sharp foreground layer.
type ForegroundScale struct {
	Mode  ScaleMode
	Ratio float64
}

// Box returns the target box the foreground is contain-fitted into.
func (f ForegroundScale) Box(canvas Size) Size {
	canvas = clampSize(canvas)
	switch f.Mode {
	case ScaleFit, ScaleOverride:
		return canvas.Scale(f.ratio())
	case ScaleWidthRatio:
		return Size{
			Width:  atLeastOne(int(float64(canvas.Width) * f.ratio())),
			Height: canvas.Height,
		}
	default:
		return canvas.Scale(1 / Phi)
	}
}

// ratio keeps the fraction inside (0,1].
func (f ForegroundScale) ratio() float64 {
	if f.Ratio <= 0 || f.Ratio > 1 {
		return 1
	}
	return f.Ratio
}

// Foreground returns the contain-fitted size of a src-sized foreground.
func (f ForegroundScale) Foreground(src, canvas Size) Size {
	return ContainFit(src, f.Box(canvas))
}
