package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestDrawGuides(t *testing.T) {
	base := solidNRGBA(50, 40, color.NRGBA{0, 0, 0, 255})
	green := color.NRGBA{0, 255, 0, 255}

	out := DrawGuides(base, []Guide{
		{Rect: image.Rect(10, 10, 30, 20), Color: green},
		{Rect: image.Rect(45, 35, 60, 50), Color: green},
		{Rect: image.Rectangle{}, Color: green},
	})

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"top edge", 15, 10, green},
		{"bottom edge", 15, 19, green},
		{"left edge", 10, 15, green},
		{"right edge", 29, 15, green},
		{"interior untouched", 15, 15, color.NRGBA{0, 0, 0, 255}},
		{"clipped guide drawn inside", 45, 38, green},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := out.NRGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if base.NRGBAAt(15, 10) != (color.NRGBA{0, 0, 0, 255}) {
		t.Error("DrawGuides modified its input")
	}
}

func TestDrawGuides_Label(t *testing.T) {
	base := solidNRGBA(60, 60, color.NRGBA{0, 0, 0, 255})

	out := DrawGuides(base, []Guide{
		{Rect: image.Rect(5, 5, 55, 55), Color: color.NRGBA{255, 0, 0, 255}, Label: true},
	})

	// "5,5": the first glyph's top row is fully lit.
	if got := out.NRGBAAt(7, 7); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("label pixel: got %v, want white", got)
	}
}
