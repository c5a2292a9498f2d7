package cmd

import "testing"

func TestSelectorSticky(t *testing.T) {
	m := ModeBlank

	m = SelectMode(m, 0.9, 0, 0)
	if m != ModeWave {
		t.Fatalf("after x tilt: mode %d, want %d", m, ModeWave)
	}

	// level reading keeps the last mode
	m = SelectMode(m, 0, 0, 0)
	if m != ModeWave {
		t.Fatalf("after level reading: mode %d, want %d", m, ModeWave)
	}

	m = SelectMode(m, 0, 0.9, 0)
	if m != ModeSine {
		t.Fatalf("after y tilt: mode %d, want %d", m, ModeSine)
	}
}

func TestSelectorAxes(t *testing.T) {
	cases := []struct {
		x, y float32
		want Mode
	}{
		{0.9, 0, ModeWave},
		{-0.9, 0, ModePulse},
		{0, 0.9, ModeSine},
		{0, -0.9, ModeSnake},
		{0.79, 0.79, ModeBlank}, // inside the dead zone
	}
	for _, c := range cases {
		if got := SelectMode(ModeBlank, c.x, c.y, 0); got != c.want {
			t.Errorf("SelectMode(blank, %v, %v): mode %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

// x is checked before y, so a simultaneous crossing goes to x.
func TestSelectorXWins(t *testing.T) {
	if got := SelectMode(ModeBlank, 0.9, 0.9, 0); got != ModeWave {
		t.Fatalf("simultaneous crossing: mode %d, want %d", got, ModeWave)
	}
	if got := SelectMode(ModeBlank, -0.9, -0.9, 0); got != ModePulse {
		t.Fatalf("simultaneous negative crossing: mode %d, want %d", got, ModePulse)
	}
}
