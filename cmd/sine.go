package cmd

import (
	"image/color"
	"math"
)

const sineSamples = 14 * Width / 8

// Sine draws eight vertical bars whose heights are a sliding window
// over a 14-sample sine table. The table is computed once and never
// changes; Next only rotates the read offset, so the shape sweeps
// through the columns with a 14-tick period.
type Sine struct {
	frame  Frame
	color  color.RGBA
	table  [sineSamples]int
	offset int
}

func NewSine(c color.RGBA) *Sine {
	s := &Sine{color: c}

	amplitude := float64(Height) / 2.0
	mid := float64(Height) / 2.0
	for i := range s.table {
		s.table[i] = int(math.Round(amplitude*math.Sin(float64(i)*(2.0*math.Pi/sineSamples)) + mid))
	}
	return s
}

func (s *Sine) Next() {
	s.offset = (s.offset + 1) % sineSamples

	s.frame.clear()
	for p := 0; p < Width; p++ {
		height := s.table[(s.offset+p)%sineSamples]
		if height > 0 {
			s.frame.setColumn(p, height, s.color)
		}
	}
}

func (s *Sine) Frame() Frame {
	return s.frame
}
