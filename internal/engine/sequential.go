package engine

import "toroid-life/internal/core"

// Sequential evaluates every output cell one at a time in row-major order.
type Sequential struct{}

// Name identifies the backend.
func (Sequential) Name() string { return "sequential" }

// Evaluate computes the next generation of src into dst.
func (Sequential) Evaluate(dst, src *core.Grid) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	evalRows(dst, src, 0, src.H)
	return nil
}

func init() {
	Register("sequential", func() (Engine, error) { return Sequential{}, nil })
}
