package cmd

import "image/color"

// Pulse breathes the whole matrix between dark and a brightness cap.
type Pulse struct {
	frame      Frame
	counter    int
	descending bool
	step       int
	brightness int
}

func NewPulse(brightness, step uint8) *Pulse {
	return &Pulse{
		step:       int(step),
		brightness: int(brightness),
	}
}

// Next steps the brightness counter one tick along its triangle wave
// and repaints the matrix a uniform gray at the new level. The counter
// saturates at the [0, brightness] bounds rather than wrapping.
func (p *Pulse) Next() {
	if p.counter <= 1 {
		p.descending = false
	} else if p.counter >= p.brightness {
		p.descending = true
	}
	if p.descending {
		p.counter -= p.step
		if p.counter < 0 {
			p.counter = 0
		}
	} else {
		p.counter += p.step
		if p.counter > p.brightness {
			p.counter = p.brightness
		}
	}

	v := uint8(p.counter)
	p.frame.fill(color.RGBA{R: v, G: v, B: v, A: 0xFF})
}

func (p *Pulse) Frame() Frame {
	return p.frame
}
