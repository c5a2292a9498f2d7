package cmd

import "image/color"

const numShadows = 7

// Wave sweeps one fully-lit line across the secondary axis with seven
// progressively dimmer shadow lines trailing it. Shadow i always sits
// i+1 rows behind the lead (mod Height), so together the lead and its
// shadows tile all eight rows in descending brightness tiers.
type Wave struct {
	frame   Frame
	color   color.RGBA
	lead    int
	shadows [numShadows]int
}

func NewWave(c color.RGBA) *Wave {
	w := &Wave{
		color: c,
		lead:  numShadows,
	}
	for i := range w.shadows {
		w.shadows[i] = numShadows - 1 - i
	}
	return w
}

func (w *Wave) Next() {
	w.lead = (w.lead + 1) % Height

	w.frame.clear()
	w.frame.setLine(w.lead, w.color)

	for i := range w.shadows {
		w.shadows[i] = (w.shadows[i] + 1) % Height
		w.frame.setLine(w.shadows[i], dimmed(w.color, i+1))
	}
}

func (w *Wave) Frame() Frame {
	return w.frame
}

// dimmed fades c toward dark in discrete tiers, tier 1 being the
// brightest shadow. Channels below numShadows have a zero dimming
// step, so tiny channels come out one count brighter than the lead;
// the math runs in int and clamps to the 8-bit range instead of
// wrapping.
func dimmed(c color.RGBA, tier int) color.RGBA {
	return color.RGBA{
		R: dimChannel(c.R, tier),
		G: dimChannel(c.G, tier),
		B: dimChannel(c.B, tier),
		A: c.A,
	}
}

func dimChannel(ch uint8, tier int) uint8 {
	v := int(ch)
	return clamp8(v - v/numShadows*tier + 1)
}
