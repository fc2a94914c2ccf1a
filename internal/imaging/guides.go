package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Guide is one rectangle drawn by DrawGuides.
type Guide struct {
	Rect  image.Rectangle
	Color color.NRGBA
	// Label prints the rectangle's top-left coordinates next to it.
	Label bool
}

// DrawGuides returns a copy of img with each guide's outline drawn one pixel
// wide. It is used to check layout decisions visually: margins, the bottom
// band, the foreground frame and the overlay box.
func DrawGuides(img image.Image, guides []Guide) *image.NRGBA {
	result := imaging.Clone(img)

	for _, g := range guides {
		r := g.Rect
		if r.Empty() {
			continue
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			setClipped(result, x, r.Min.Y, g.Color)
			setClipped(result, x, r.Max.Y-1, g.Color)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			setClipped(result, r.Min.X, y, g.Color)
			setClipped(result, r.Max.X-1, y, g.Color)
		}
		if g.Label {
			label := fmt.Sprintf("%d,%d", r.Min.X, r.Min.Y)
			drawLabel(result, r.Min.X+2, r.Min.Y+2, label, color.NRGBA{255, 255, 255, 255}, color.NRGBA{0, 0, 0, 180})
		}
	}
	return result
}

func setClipped(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}

// drawLabel draws digits and commas with a built-in 3x5 pixel font.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
		'-': {"000", "000", "111", "000", "000"},
	}

	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			setClipped(img, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					setClipped(img, cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
