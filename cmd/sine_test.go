package cmd

import (
	"image/color"
	"math"
	"testing"
)

func TestSineTableMatchesReference(t *testing.T) {
	s := NewSine(color.RGBA{G: 30, A: 0xFF})

	for i := range s.table {
		want := int(math.Round(4*math.Sin(float64(i)*2*math.Pi/14) + 4))
		if s.table[i] != want {
			t.Fatalf("table[%d] = %d, want %d", i, s.table[i], want)
		}
		if s.table[i] < 0 || s.table[i] > Height {
			t.Fatalf("table[%d] = %d out of [0,%d]", i, s.table[i], Height)
		}
	}

	// pin the exact samples so a math regression is loud
	want := [sineSamples]int{4, 6, 7, 8, 8, 7, 6, 4, 2, 1, 0, 0, 1, 2}
	if s.table != want {
		t.Fatalf("table = %v, want %v", s.table, want)
	}
}

// columnHeight counts the lit pixels of a primary column and checks
// they are contiguous from the bottom.
func columnHeight(t *testing.T, f Frame, primary int, c color.RGBA) int {
	t.Helper()
	height := 0
	for sec := 0; sec < Height; sec++ {
		px := f[sec*Width+primary]
		switch {
		case px == c:
			if sec != height {
				t.Fatalf("column %d: lit pixel at row %d above a gap", primary, sec)
			}
			height++
		case px == (color.RGBA{}):
		default:
			t.Fatalf("column %d row %d: unexpected color %v", primary, sec, px)
		}
	}
	return height
}

func TestSineWindowSlides(t *testing.T) {
	c := color.RGBA{G: 30, A: 0xFF}
	s := NewSine(c)

	for tick := 1; tick <= 2*sineSamples; tick++ {
		s.Next()
		f := s.Frame()
		for p := 0; p < Width; p++ {
			want := s.table[(tick+p)%sineSamples]
			if got := columnHeight(t, f, p, c); got != want {
				t.Fatalf("tick %d: column %d height %d, want %d", tick, p, got, want)
			}
		}
	}
}
