package cmd

import (
	"image/color"
	"strconv"
	"strings"
)

// Settings carries the per-animation build parameters.
type Settings struct {
	PulseBrightness uint8
	PulseStep       uint8
	SnakeColor      color.RGBA
	WaveColor       color.RGBA
	SineColor       color.RGBA
}

// DefaultSettings matches the shipped firmware build.
func DefaultSettings() Settings {
	return Settings{
		PulseBrightness: 10,
		PulseStep:       1,
		SnakeColor:      color.RGBA{R: 255, A: 0xFF},
		WaveColor:       color.RGBA{B: 50, A: 0xFF},
		SineColor:       color.RGBA{G: 30, A: 0xFF},
	}
}

// ParseColor reads an "r,g,b" triple set at compile time via -ldflags,
// falling back when the value is empty or malformed.
func ParseColor(s string, fallback color.RGBA) color.RGBA {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fallback
	}
	var ch [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return fallback
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xFF}
}

// ParseLevel reads a single 0-255 value set via -ldflags.
func ParseLevel(s string, fallback uint8) uint8 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return fallback
	}
	return uint8(v)
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
