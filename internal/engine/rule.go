package engine

import "toroid-life/internal/core"

// NextValue applies the Game of Life rule to a single cell: a dead cell with
// exactly three live neighbors is born, a live cell with two or three live
// neighbors survives, and every other cell is dead in the next generation.
// Both backends call this one function, so their agreement is structural.
func NextValue(v uint8, liveNeighbors int) uint8 {
	if liveNeighbors == 3 || (v == 1 && liveNeighbors == 2) {
		return 1
	}
	return 0
}

// LiveNeighbors counts the live cells in the Moore neighborhood of
// (row, col), wrapping toroidally at every edge.
func LiveNeighbors(g *core.Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n += int(g.Get(row+dr, col+dc))
		}
	}
	return n
}

// evalRows computes output rows [lo, hi) of dst from src. Shared by both
// backends; the parallel engine hands disjoint row ranges to its workers.
func evalRows(dst, src *core.Grid, lo, hi int) {
	out := dst.Cells()
	for row := lo; row < hi; row++ {
		for col := 0; col < src.W; col++ {
			out[row*src.W+col] = NextValue(src.Get(row, col), LiveNeighbors(src, row, col))
		}
	}
}
