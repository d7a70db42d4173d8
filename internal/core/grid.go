package core

import (
	"errors"
	"fmt"
)

// ErrCellValue reports an attempt to store a cell value outside {0, 1}.
var ErrCellValue = errors.New("cell value must be 0 or 1")

// Grid stores a fixed-size field of binary cells in row-major order.
// Dimensions are immutable after creation. Coordinates wrap toroidally, so
// any integer (row, col) pair addresses a valid cell.
type Grid struct {
	H, W int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(h, w int) (*Grid, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", h, w)
	}
	return &Grid{H: h, W: w, data: make([]uint8, h*w)}, nil
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Dims returns the grid height and width.
func (g *Grid) Dims() (h, w int) { return g.H, g.W }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Index returns the linear slice index for the wrapped coordinates.
func (g *Grid) Index(row, col int) int {
	row, col = g.Wrap(row, col)
	return row*g.W + col
}

// Get returns the cell at the wrapped coordinate. It is total: wraparound
// makes every integer row/col valid.
func (g *Grid) Get(row, col int) uint8 {
	return g.data[g.Index(row, col)]
}

// Set writes v to the wrapped coordinate. Values other than 0 and 1 are a
// contract violation and are rejected rather than clamped.
func (g *Grid) Set(row, col int, v uint8) error {
	if v > 1 {
		return fmt.Errorf("set (%d,%d): %w, got %d", row, col, ErrCellValue, v)
	}
	g.data[g.Index(row, col)] = v
	return nil
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// LiveCount returns the number of live cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Randomize fills every cell independently, alive with probability p, using
// a deterministic generator derived from seed.
func (g *Grid) Randomize(seed int64, p float64) {
	FillBernoulli(NewRNG(seed).Source(), g.data, p)
}
