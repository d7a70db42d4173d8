package engine

import (
	"fmt"
	"sort"

	"toroid-life/internal/core"
)

// Engine computes one generation of the simulation. Evaluate reads only src
// and fully writes dst before returning; the call is synchronous and the two
// buffers must be distinct grids of identical dimensions.
type Engine interface {
	Name() string
	Evaluate(dst, src *core.Grid) error
}

// Factory constructs an Engine. Construction may fail when the backend's
// execution substrate cannot be set up; such a failure is a configuration
// error and must keep the simulation loop from starting.
type Factory func() (Engine, error)

var backends = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// New constructs the named engine. Selecting an unknown backend is a
// configuration error; there is no fallback to another backend.
func New(name string) (Engine, error) {
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q, available: %v", name, Names())
	}
	return f()
}

// Names lists the registered backends in sorted order.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkBuffers(dst, src *core.Grid) error {
	if dst == nil || src == nil {
		return fmt.Errorf("engine: nil grid buffer")
	}
	if dst == src {
		return fmt.Errorf("engine: dst and src must be distinct buffers")
	}
	if dst.H != src.H || dst.W != src.W {
		return fmt.Errorf("engine: buffer dimensions differ, %dx%d vs %dx%d",
			dst.H, dst.W, src.H, src.W)
	}
	return nil
}
