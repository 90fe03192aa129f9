package core

import "fmt"

// mooreOffsets lists the eight (drow, dcol) offsets around a cell.
var mooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// wrapStep maps a coordinate that is at most one step outside [0, dim) back
// onto the torus.
func wrapStep(v, dim int) int {
	switch {
	case v < 0:
		return dim - 1
	case v >= dim:
		return 0
	}
	return v
}

// NeighborIndices returns the linear indices of the eight toroidal
// neighbours of (row, col), which must lie inside the grid. On grids with a
// dimension of 1 or 2 some indices repeat.
func (g *Grid) NeighborIndices(row, col int) [8]int {
	var out [8]int
	for i, off := range mooreOffsets {
		r := wrapStep(row+off[0], g.rows)
		c := wrapStep(col+off[1], g.cols)
		out[i] = g.Index(r, c)
	}
	return out
}

// AliveNeighbors counts the alive cells among the eight toroidal neighbours
// of (row, col). Coordinates are wrapped onto the grid first.
func (g *Grid) AliveNeighbors(row, col int) int {
	row, col = g.Wrap(row, col)
	n := 0
	for _, idx := range g.NeighborIndices(row, col) {
		if g.cells[idx] == Alive {
			n++
		}
	}
	return n
}

// CountAliveNeighbors returns the number of alive cells among the eight
// toroidal neighbours of (row, col), in the range 0-8.
func CountAliveNeighbors(g *Grid, row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("neighbours of (%d,%d) in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	return g.AliveNeighbors(row, col), nil
}
