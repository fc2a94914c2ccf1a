package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestAssemble(t *testing.T) {
	bg := solidNRGBA(100, 150, color.NRGBA{0, 0, 0, 255})
	fg := solidNRGBA(61, 91, color.NRGBA{255, 255, 255, 255})

	out := Assemble(bg, fg)

	if got := out.Bounds().Size(); got != image.Pt(100, 150) {
		t.Fatalf("canvas size: got %v, want 100x150", got)
	}

	// Offset is floor((100-61)/2), floor((150-91)/2) = (19, 29).
	tests := []struct {
		name  string
		x, y  int
		white bool
	}{
		{"foreground top-left", 19, 29, true},
		{"foreground bottom-right", 79, 119, true},
		{"left of foreground", 18, 29, false},
		{"above foreground", 19, 28, false},
		{"right of foreground", 80, 60, false},
		{"below foreground", 50, 120, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isWhite := out.NRGBAAt(tt.x, tt.y).R == 255
			if isWhite != tt.white {
				t.Errorf("pixel (%d,%d): white=%v, want %v", tt.x, tt.y, isWhite, tt.white)
			}
		})
	}
}

func TestApplyOverlay(t *testing.T) {
	canvas := solidNRGBA(20, 20, color.NRGBA{0, 0, 0, 255})
	overlay := solidNRGBA(4, 4, color.NRGBA{255, 255, 255, 128})

	out := ApplyOverlay(canvas, overlay, image.Pt(10, 10))

	blended := out.NRGBAAt(11, 11)
	if blended.R < 120 || blended.R > 136 {
		t.Errorf("half-transparent white over black: got R=%d, want about 128", blended.R)
	}
	if out.NRGBAAt(9, 9).R != 0 {
		t.Error("pixel outside the overlay changed")
	}
	if canvas.NRGBAAt(11, 11).R != 0 {
		t.Error("ApplyOverlay modified the canvas")
	}
}

func TestApplyOverlay_Nil(t *testing.T) {
	canvas := solidNRGBA(5, 5, color.NRGBA{9, 8, 7, 255})

	out := ApplyOverlay(canvas, nil, image.Pt(0, 0))

	if out == canvas {
		t.Error("nil overlay should still return a copy")
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if out.NRGBAAt(x, y) != canvas.NRGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}
}

func TestFlatten(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 255})

	out := Flatten(img, color.White)

	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("transparent pixel: got %v, want opaque white", got)
	}
	if got := out.NRGBAAt(1, 1); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("opaque pixel: got %v, want red", got)
	}
}
