//go:build tinygo

package main

import (
	"fmt"
	"machine"
	"time"

	"tinygo.org/x/drivers/lis3dh"
	"tinygo.org/x/drivers/ws2812"

	"nifri2/tilt-matrix/cmd"
)

// Animation parameters are set at compile time via -ldflags
// e.g. -ldflags="-X main.buildWaveColor=0,0,50 -X main.buildPulseStep=2"
var (
	buildPulseBrightness string
	buildPulseStep       string
	buildSnakeColor      string
	buildWaveColor       string
	buildSineColor       string
)

const (
	Matrix_Pin    = machine.GP7
	Matrix_En_Pin = machine.GP10
)

// loopDelay paces the control loop; nine iterations make one frame.
const loopDelay = 5 * time.Millisecond

func buildSettings() cmd.Settings {
	s := cmd.DefaultSettings()
	s.PulseBrightness = cmd.ParseLevel(buildPulseBrightness, s.PulseBrightness)
	s.PulseStep = cmd.ParseLevel(buildPulseStep, s.PulseStep)
	s.SnakeColor = cmd.ParseColor(buildSnakeColor, s.SnakeColor)
	s.WaveColor = cmd.ParseColor(buildWaveColor, s.WaveColor)
	s.SineColor = cmd.ParseColor(buildSineColor, s.SineColor)
	return s
}

// tiltSensor adapts the LIS3DH accelerometer to the engine's
// OrientationProvider.
type tiltSensor struct {
	dev lis3dh.Device
}

func (t *tiltSensor) Orientation() (x, y, z float32, err error) {
	// ReadAcceleration reports micro-g per axis
	ax, ay, az, err := t.dev.ReadAcceleration()
	if err != nil {
		return 0, 0, 0, err
	}
	const g = 1000000
	return float32(ax) / g, float32(ay) / g, float32(az) / g, nil
}

// matrixSink adapts the WS2812 strip to the engine's PixelSink.
type matrixSink struct {
	strip ws2812.Device
}

func (m *matrixSink) WriteFrame(f cmd.Frame) error {
	return m.strip.WriteColors(f[:])
}

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	// I2C bus for the accelerometer
	i2c := machine.I2C1
	err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		fmt.Println("Error configuring I2C:", err)
		return
	}

	accel := lis3dh.New(i2c)
	accel.Address = lis3dh.Address0
	accel.Configure()
	accel.SetRange(lis3dh.RANGE_2_G)

	// Power up the matrix before the first write
	Matrix_En_Pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	Matrix_En_Pin.High()

	Matrix_Pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	strip := ws2812.New(Matrix_Pin)

	// Boot blink, 2 times, 200ms interval
	for i := 0; i < 2; i++ {
		led.High()
		time.Sleep(200 * time.Millisecond)
		led.Low()
		time.Sleep(200 * time.Millisecond)
	}

	controller := cmd.NewController(
		&tiltSensor{dev: accel},
		&matrixSink{strip: strip},
		buildSettings(),
	)

	fmt.Println("Starting Control Loop")
	if err := controller.Run(loopDelay); err != nil {
		fmt.Println("Control loop stopped:", err)
	}
}
