package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"toroid-life/internal/sim"
)

// Renderer draws the grid to a terminal screen, one character per cell, with
// a reverse-video status line on the row beneath the field.
type Renderer struct {
	screen tcell.Screen
	keys   chan *tcell.EventKey
}

// New initializes the terminal and starts the key-event pump.
func New() (*Renderer, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return newWith(s)
}

func newWith(s tcell.Screen) (*Renderer, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	s.HideCursor()
	r := &Renderer{screen: s, keys: make(chan *tcell.EventKey, 16)}
	go r.pump()
	return r, nil
}

// pump forwards key events into a channel so Render can wait or poll as the
// frame's input mode demands. It exits when the screen is finalized.
func (r *Renderer) pump() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			select {
			case r.keys <- key:
			default:
			}
		}
	}
}

// AutoSize returns the grid dimensions that fill the terminal, reserving the
// bottom row for the status line.
func (r *Renderer) AutoSize() (h, w int) {
	w, h = r.screen.Size()
	if h > 1 {
		h--
	}
	return h, w
}

// Close releases the terminal.
func (r *Renderer) Close() { r.screen.Fini() }

// Render draws one frame and reports whether the simulation should continue.
// A blocking frame waits for any key; otherwise pending keys are drained and
// q, Q, Escape or Ctrl-C request quit.
func (r *Renderer) Render(f sim.Frame) bool {
	r.screen.Clear()
	h, w := f.Grid.Dims()
	cells := f.Grid.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			ch := ' '
			if cells[row*w+col] != 0 {
				ch = 'O'
			}
			r.screen.SetContent(col, row, ch, nil, tcell.StyleDefault)
		}
	}

	msg := "Q to Quit"
	if f.Blocking {
		msg = "Hit Any Key to Continue"
	}
	status := fmt.Sprintf("(%d x %d)  Gen:%6d  Lives:%6d  %s  [%s] ",
		h, w, f.Gen, f.Lives, f.Status, msg)
	style := tcell.StyleDefault.Reverse(true)
	for i, ch := range status {
		r.screen.SetContent(i, h, ch, nil, style)
	}
	r.screen.Show()

	if f.Blocking {
		<-r.keys
		return true
	}
	for {
		select {
		case key := <-r.keys:
			if wantsQuit(key) {
				return false
			}
		default:
			return true
		}
	}
}

func wantsQuit(key *tcell.EventKey) bool {
	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q' || key.Rune() == 'Q'
	}
	return false
}
