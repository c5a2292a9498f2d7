// Command simview previews the matrix animations in a terminal, with
// the arrow keys standing in for board tilt: right=wave, left=pulse,
// up=sine, down=snake, space=level, q to quit.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"nifri2/tilt-matrix/cmd"
)

// keyTilt fakes the accelerometer. Arrow keys latch a tilted reading
// until space levels the board again, which exercises the sticky mode
// selection the same way a real sensor does.
type keyTilt struct {
	mu   sync.Mutex
	x, y float32
}

func (k *keyTilt) set(x, y float32) {
	k.mu.Lock()
	k.x, k.y = x, y
	k.mu.Unlock()
}

func (k *keyTilt) Orientation() (float32, float32, float32, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.x, k.y, 1, nil
}

// screenSink draws each matrix pixel as a two-column cell so the grid
// comes out roughly square.
type screenSink struct {
	screen tcell.Screen
}

func (s *screenSink) WriteFrame(f cmd.Frame) error {
	for sec := 0; sec < cmd.Height; sec++ {
		for pri := 0; pri < cmd.Width; pri++ {
			px := f[sec*cmd.Width+pri]
			st := tcell.StyleDefault.Background(
				tcell.NewRGBColor(int32(px.R), int32(px.G), int32(px.B)))
			// secondary 0 is the bottom row of the physical matrix
			row := cmd.Height - 1 - sec
			s.screen.SetContent(pri*2, row, ' ', nil, st)
			s.screen.SetContent(pri*2+1, row, ' ', nil, st)
		}
	}
	s.screen.Show()
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "simview:", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.Clear()

	tilt := &keyTilt{}
	controller := cmd.NewController(tilt, &screenSink{screen: screen}, cmd.DefaultSettings())

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return
				case tcell.KeyRight:
					tilt.set(0.9, 0)
				case tcell.KeyLeft:
					tilt.set(-0.9, 0)
				case tcell.KeyUp:
					tilt.set(0, 0.9)
				case tcell.KeyDown:
					tilt.set(0, -0.9)
				case tcell.KeyRune:
					switch ev.Rune() {
					case ' ':
						tilt.set(0, 0)
					case 'q':
						return
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			if err := controller.Tick(); err != nil {
				return err
			}
		}
	}
}
