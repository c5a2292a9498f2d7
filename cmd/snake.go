package cmd

import "image/color"

// Snake bounces a single lit pixel along the primary axis, stepping
// one secondary row at each wall. Starting from (0,0) ascending, 64
// ticks visit every cell exactly once and land back on (0,0).
type Snake struct {
	frame     Frame
	color     color.RGBA
	primary   int
	secondary int
	ascending bool
}

func NewSnake(c color.RGBA) *Snake {
	return &Snake{
		color:     c,
		ascending: true,
	}
}

func (s *Snake) Next() {
	// A wall only counts when moving into it, so the start position
	// (0,0) heads right instead of immediately changing rows.
	atWall := (s.ascending && s.primary == Width-1) ||
		(!s.ascending && s.primary == 0)
	if atWall {
		s.ascending = !s.ascending
		s.secondary = (s.secondary + 1) % Height
	} else if s.ascending {
		s.primary++
	} else {
		s.primary--
	}

	s.frame.clear()
	s.frame.setPixel(s.primary, s.secondary, s.color)
}

func (s *Snake) Frame() Frame {
	return s.frame
}
