package cmd

import "time"

// OrientationProvider supplies one normalized accelerometer reading
// per control-loop iteration, each axis roughly in [-1, 1].
type OrientationProvider interface {
	Orientation() (x, y, z float32, err error)
}

// PixelSink pushes one complete frame to a display, in strip order.
type PixelSink interface {
	WriteFrame(Frame) error
}

// renderCadence is how many control-loop iterations pass between
// frame writes.
const renderCadence = 9

// Controller owns the four generators and the visible-mode state. All
// four generators advance together on every render step, whether
// visible or not, so switching modes never restarts an animation.
type Controller struct {
	pulse *Pulse
	snake *Snake
	wave  *Wave
	sine  *Sine

	sensor OrientationProvider
	sink   PixelSink

	mode  Mode
	ticks int
}

func NewController(sensor OrientationProvider, sink PixelSink, s Settings) *Controller {
	return &Controller{
		pulse:  NewPulse(s.PulseBrightness, s.PulseStep),
		snake:  NewSnake(s.SnakeColor),
		wave:   NewWave(s.WaveColor),
		sine:   NewSine(s.SineColor),
		sensor: sensor,
		sink:   sink,
		mode:   ModeBlank,
		ticks:  renderCadence, // render on the very first iteration
	}
}

// Tick runs one control-loop iteration: sample the sensor, update the
// mode, and every ninth call advance the generators and write the
// visible frame. Sensor and sink failures are fatal and returned
// untouched.
func (c *Controller) Tick() error {
	x, y, z, err := c.sensor.Orientation()
	if err != nil {
		return err
	}
	c.mode = SelectMode(c.mode, x, y, z)

	if c.ticks >= renderCadence {
		c.ticks = 0
		c.pulse.Next()
		c.snake.Next()
		c.wave.Next()
		c.sine.Next()

		if err := c.sink.WriteFrame(c.visibleFrame()); err != nil {
			return err
		}
	}
	c.ticks++
	return nil
}

// Run drives Tick forever with a fixed pacing delay between
// iterations. It only returns on a sensor or display failure.
func (c *Controller) Run(delay time.Duration) error {
	for {
		if err := c.Tick(); err != nil {
			return err
		}
		time.Sleep(delay)
	}
}

// Mode reports the currently visible mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) visibleFrame() Frame {
	switch c.mode {
	case ModeWave:
		return c.wave.Frame()
	case ModePulse:
		return c.pulse.Frame()
	case ModeSine:
		return c.sine.Frame()
	case ModeSnake:
		return c.snake.Frame()
	default:
		return Frame{}
	}
}
