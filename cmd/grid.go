// Package cmd implements the tilt-selected animation engine for an
// 8x8 NeoPixel matrix. It is hardware-free; the firmware entrypoint
// and the simulator plug real or fake peripherals in through the
// OrientationProvider and PixelSink interfaces.
package cmd

import "image/color"

const (
	Width     = 8
	Height    = 8
	NumPixels = Width * Height
)

// Frame is one full matrix image in strip order: the pixel at
// (primary, secondary) lives at index secondary*Width + primary.
type Frame [NumPixels]color.RGBA

func (f *Frame) clear() {
	for i := range f {
		f[i] = color.RGBA{}
	}
}

func (f *Frame) fill(c color.RGBA) {
	for i := range f {
		f[i] = c
	}
}

func (f *Frame) setPixel(primary, secondary int, c color.RGBA) {
	f[secondary*Width+primary] = c
}

// setLine lights all Width pixels sharing one secondary coordinate.
func (f *Frame) setLine(secondary int, c color.RGBA) {
	for p := 0; p < Width; p++ {
		f[secondary*Width+p] = c
	}
}

// setColumn lights the bottom height pixels of one primary column.
func (f *Frame) setColumn(primary, height int, c color.RGBA) {
	for s := 0; s < height; s++ {
		f[s*Width+primary] = c
	}
}
