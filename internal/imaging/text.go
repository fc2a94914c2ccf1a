package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	// ErrEmptyText is returned when there is nothing to render.
	ErrEmptyText = errors.New("empty text")

	// ErrNoInk is returned when the rendered text has no visible pixels.
	ErrNoInk = errors.New("rendered text has no ink")
)

// textPad keeps antialiased edges off the raster border before trimming.
const textPad = 4

// LoadFont parses a TrueType or OpenType font file.
func LoadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return f, nil
}

// DefaultFont returns the embedded Go Regular font.
func DefaultFont() *opentype.Font {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		// The embedded font is known-good.
		panic(fmt.Sprintf("parse embedded font: %v", err))
	}
	return f
}

// RenderText draws text in the given colour, trims the result to its ink
// bounding box and resizes it to exactly height pixels tall.
func RenderText(text string, height int, f *opentype.Font, c color.Color) (*image.NRGBA, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if height < 1 {
		height = 1
	}
	if f == nil {
		f = DefaultFont()
	}
	if c == nil {
		c = color.White
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(height),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil() + 2*textPad
	h := (bounds.Max.Y - bounds.Min.Y).Ceil() + 2*textPad

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(textPad-bounds.Min.X.Floor(), textPad-bounds.Min.Y.Floor()),
	}
	d.DrawString(text)

	ink := inkBounds(dst)
	if ink.Empty() {
		return nil, ErrNoInk
	}
	trimmed := dst.SubImage(ink).(*image.NRGBA)
	return ResizeToHeight(trimmed, height), nil
}

// inkBounds returns the smallest rectangle containing every pixel with
// non-zero alpha.
func inkBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x >= maxX {
				maxX = x + 1
			}
			if y < minY {
				minY = y
			}
			if y >= maxY {
				maxY = y + 1
			}
		}
	}
	if minX >= maxX || minY >= maxY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}
