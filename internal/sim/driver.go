package sim

import (
	"fmt"
	"time"

	"toroid-life/internal/core"
	"toroid-life/internal/engine"
)

// Frame carries everything a Renderer needs to present one generation.
type Frame struct {
	Gen      int
	Grid     *core.Grid
	Lives    int
	Elapsed  time.Duration
	Status   string
	Blocking bool
}

// Renderer displays a frame and reports whether the simulation should keep
// running. Returning false requests a controlled termination.
type Renderer interface {
	Render(Frame) bool
}

// State identifies where the driver is in its lifecycle.
type State int

const (
	// Initializing means the buffers are built but the loop has not started.
	Initializing State = iota
	// Running means the generation loop is active.
	Running
	// Terminated is the terminal state after a quit request or error.
	Terminated
)

// Driver owns the two grid buffers and advances the simulation one
// generation at a time. It is strictly single-threaded: render, compute
// and swap happen in sequence, and the engine call blocks until the whole
// next generation has been written. The driver alone mutates the
// generation counter and reassigns buffer roles.
type Driver struct {
	eng  engine.Engine
	cur  *core.Grid
	nxt  *core.Grid
	gen  int
	fill float64

	state   State
	pacer   *core.Pacer
	elapsed time.Duration
}

// New constructs a driver around two freshly allocated buffers of the given
// dimensions. The current buffer is randomized from seed with live
// probability fill.
func New(eng engine.Engine, h, w int, seed int64, fill float64) (*Driver, error) {
	if eng == nil {
		return nil, fmt.Errorf("sim: nil engine")
	}
	cur, err := core.NewGrid(h, w)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewGrid(h, w)
	if err != nil {
		return nil, err
	}
	cur.Randomize(seed, fill)
	return &Driver{eng: eng, cur: cur, nxt: nxt, fill: fill, state: Initializing}, nil
}

// SetPacer throttles the running loop. A nil pacer runs unpaced.
func (d *Driver) SetPacer(p *core.Pacer) { d.pacer = p }

// Gen returns the number of completed generations.
func (d *Driver) Gen() int { return d.gen }

// Current returns the buffer holding the most recently completed generation.
func (d *Driver) Current() *core.Grid { return d.cur }

// State reports the driver's lifecycle state.
func (d *Driver) State() State { return d.state }

// Elapsed returns the computation time of the last completed generation.
func (d *Driver) Elapsed() time.Duration { return d.elapsed }

// Reset rebuilds generation zero from the provided seed, reusing the
// existing buffers.
func (d *Driver) Reset(seed int64) {
	d.cur.Randomize(seed, d.fill)
	d.nxt.Clear()
	d.gen = 0
	d.elapsed = 0
}

// Step advances the simulation by exactly one generation: a timed engine
// call into the next buffer, then an O(1) role swap and a counter bump.
func (d *Driver) Step() error {
	start := time.Now()
	if err := d.eng.Evaluate(d.nxt, d.cur); err != nil {
		return err
	}
	d.elapsed = time.Since(start)
	d.cur, d.nxt = d.nxt, d.cur
	d.gen++
	return nil
}

// Run executes the generation loop until the renderer requests quit. The
// first frame is presented in blocking-input mode and every later frame
// polls input without waiting; quit requests take effect only between
// generations, never mid-computation.
func (d *Driver) Run(r Renderer) error {
	status := fmt.Sprintf("<%s mode>", d.eng.Name())
	first := true
	d.state = Running
	for {
		ok := r.Render(Frame{
			Gen:      d.gen,
			Grid:     d.cur,
			Lives:    d.cur.LiveCount(),
			Elapsed:  d.elapsed,
			Status:   status,
			Blocking: first,
		})
		if !ok {
			d.state = Terminated
			return nil
		}
		if err := d.Step(); err != nil {
			d.state = Terminated
			return err
		}
		status = fmt.Sprintf("Time: %.6f", d.elapsed.Seconds())
		first = false
		d.pacer.Pace()
	}
}
