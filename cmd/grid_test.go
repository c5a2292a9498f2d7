package cmd

import (
	"image/color"
	"testing"
)

func TestFrameAddressing(t *testing.T) {
	c := color.RGBA{R: 0xFF, A: 0xFF}

	var f Frame
	f.setPixel(3, 2, c)
	if f[2*Width+3] != c {
		t.Fatalf("setPixel(3,2) did not land on index %d", 2*Width+3)
	}

	f.clear()
	f.setLine(5, c)
	for i, px := range f {
		lit := i >= 5*Width && i < 6*Width
		if (px == c) != lit {
			t.Fatalf("setLine(5): index %d lit=%v", i, px == c)
		}
	}

	f.clear()
	f.setColumn(2, 3, c)
	for i, px := range f {
		lit := i%Width == 2 && i/Width < 3
		if (px == c) != lit {
			t.Fatalf("setColumn(2,3): index %d lit=%v", i, px == c)
		}
	}
}
