package cmd

// Mode identifies which generator is visible on the matrix.
type Mode int

const (
	ModeWave Mode = 0x00 + iota
	ModePulse
	ModeSine
	ModeSnake
)

// ModeBlank is the startup sentinel. It renders an all-dark frame and
// is left behind for good on the first threshold crossing.
const ModeBlank Mode = -1

// TiltThreshold is how far an axis reading must lean, in g, before it
// selects a mode.
const TiltThreshold = 0.8

// SelectMode maps one orientation reading onto a mode. The x axis is
// checked before y, so x wins a simultaneous crossing; a reading with
// no axis past the threshold keeps the previous mode (the selection is
// sticky).
func SelectMode(prev Mode, x, y, z float32) Mode {
	switch {
	case x > TiltThreshold:
		return ModeWave
	case x < -TiltThreshold:
		return ModePulse
	case y > TiltThreshold:
		return ModeSine
	case y < -TiltThreshold:
		return ModeSnake
	}
	return prev
}
