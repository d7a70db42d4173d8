package sim

import (
	"slices"
	"strings"
	"testing"

	"toroid-life/internal/core"
	"toroid-life/internal/engine"
)

// scriptedRenderer records every frame it is shown and quits after a fixed
// number of frames. Grid contents are snapshotted because the driver reuses
// its buffers across generations.
type scriptedRenderer struct {
	frames    []frameRecord
	quitAfter int
}

type frameRecord struct {
	gen      int
	cells    []uint8
	lives    int
	status   string
	blocking bool
}

func (r *scriptedRenderer) Render(f Frame) bool {
	r.frames = append(r.frames, frameRecord{
		gen:      f.Gen,
		cells:    append([]uint8(nil), f.Grid.Cells()...),
		lives:    f.Lives,
		status:   f.Status,
		blocking: f.Blocking,
	})
	return len(r.frames) <= r.quitAfter
}

func newTestDriver(t *testing.T, h, w int, seed int64) *Driver {
	t.Helper()
	eng, err := engine.New("sequential")
	if err != nil {
		t.Fatal(err)
	}
	d, err := New(eng, h, w, seed, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestNewRejectsBadInputs(t *testing.T) {
	eng, err := engine.New("sequential")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(eng, 0, 10, 1, 0.5); err == nil {
		t.Fatal("New accepted zero height")
	}
	if _, err := New(eng, 10, -1, 1, 0.5); err == nil {
		t.Fatal("New accepted negative width")
	}
	if _, err := New(nil, 10, 10, 1, 0.5); err == nil {
		t.Fatal("New accepted a nil engine")
	}
}

func TestGenerationBookkeeping(t *testing.T) {
	const n = 5
	d := newTestDriver(t, 8, 8, 17)
	r := &scriptedRenderer{quitAfter: n}

	if d.State() != Initializing {
		t.Fatalf("fresh driver in state %d, want Initializing", d.State())
	}
	if err := d.Run(r); err != nil {
		t.Fatal(err)
	}

	if d.Gen() != n {
		t.Fatalf("after %d iterations generation counter is %d", n, d.Gen())
	}
	if d.State() != Terminated {
		t.Fatalf("driver left in state %d, want Terminated", d.State())
	}
	if len(r.frames) != n+1 {
		t.Fatalf("renderer saw %d frames, want %d", len(r.frames), n+1)
	}
	for i, f := range r.frames {
		if f.gen != i {
			t.Errorf("frame %d reports generation %d", i, f.gen)
		}
		wantBlocking := i == 0
		if f.blocking != wantBlocking {
			t.Errorf("frame %d blocking=%v, want %v", i, f.blocking, wantBlocking)
		}
	}
}

func TestPresentedFramesMatchEngineOutput(t *testing.T) {
	const n = 6
	d := newTestDriver(t, 12, 9, 99)
	r := &scriptedRenderer{quitAfter: n}
	if err := d.Run(r); err != nil {
		t.Fatal(err)
	}

	// Replay the same seed through a second sequential engine; every frame
	// the renderer saw must be the generation most recently completed.
	eng, err := engine.New("sequential")
	if err != nil {
		t.Fatal(err)
	}
	cur, err := core.NewGrid(12, 9)
	if err != nil {
		t.Fatal(err)
	}
	nxt, err := core.NewGrid(12, 9)
	if err != nil {
		t.Fatal(err)
	}
	cur.Randomize(99, 0.5)

	for i, f := range r.frames {
		if !slices.Equal(f.cells, cur.Cells()) {
			t.Fatalf("frame %d does not match the independently computed generation", i)
		}
		if f.lives != cur.LiveCount() {
			t.Fatalf("frame %d reports %d live cells, want %d", i, f.lives, cur.LiveCount())
		}
		if err := eng.Evaluate(nxt, cur); err != nil {
			t.Fatal(err)
		}
		cur, nxt = nxt, cur
	}
}

func TestStatusStrings(t *testing.T) {
	d := newTestDriver(t, 6, 6, 3)
	r := &scriptedRenderer{quitAfter: 2}
	if err := d.Run(r); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(r.frames[0].status, "sequential") {
		t.Errorf("first status %q does not name the backend", r.frames[0].status)
	}
	for i, f := range r.frames[1:] {
		if !strings.HasPrefix(f.status, "Time: ") {
			t.Errorf("frame %d status %q lacks the timing prefix", i+1, f.status)
		}
	}
}

func TestStepSwapsWithoutCopy(t *testing.T) {
	d := newTestDriver(t, 8, 8, 5)
	before := d.Current()
	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	after := d.Current()
	if before == after {
		t.Fatal("Step did not swap buffer roles")
	}
	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if d.Current() != before {
		t.Fatal("second Step did not swap back to the original buffer")
	}
	if d.Gen() != 2 {
		t.Fatalf("generation counter is %d after two steps", d.Gen())
	}
}

func TestResetRestoresGenerationZero(t *testing.T) {
	d := newTestDriver(t, 10, 10, 21)
	initial := append([]uint8(nil), d.Current().Cells()...)

	for i := 0; i < 3; i++ {
		if err := d.Step(); err != nil {
			t.Fatal(err)
		}
	}
	d.Reset(21)

	if d.Gen() != 0 {
		t.Fatalf("Reset left generation counter at %d", d.Gen())
	}
	if !slices.Equal(initial, d.Current().Cells()) {
		t.Fatal("Reset with the same seed did not reproduce the initial fill")
	}
}
