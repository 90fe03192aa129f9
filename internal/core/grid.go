package core

import (
	"fmt"
	"math"
	"strings"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns "alive" or "dead".
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores a fixed-size matrix of cells in row-major order together with
// the number of alive cells. A Grid is never modified after construction;
// stepping a simulation produces a new Grid.
type Grid struct {
	rows, cols int
	cells      []Cell
	alive      int
}

// NewGrid builds a grid from rows*cols cells listed in row-major order. The
// slice is copied.
func NewGrid(rows, cols int, cells []Cell) (*Grid, error) {
	if err := CheckDims(rows, cols); err != nil {
		return nil, err
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("grid %dx%d: got %d cells, want %d: %w", rows, cols, len(cells), rows*cols, ErrMalformedInput)
	}
	data := make([]Cell, len(cells))
	copy(data, cells)
	return newGrid(rows, cols, data), nil
}

// CheckDims reports ErrInvalidDimension unless rows and cols are positive
// and rows*cols fits in an int.
func CheckDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("grid %dx%d: %w", rows, cols, ErrInvalidDimension)
	}
	if cols > math.MaxInt/rows {
		return fmt.Errorf("grid %dx%d: too many cells: %w", rows, cols, ErrInvalidDimension)
	}
	return nil
}

// NewGridFromBools is NewGrid for callers holding plain alive flags.
func NewGridFromBools(rows, cols int, alive []bool) (*Grid, error) {
	cells := make([]Cell, len(alive))
	for i, a := range alive {
		if a {
			cells[i] = Alive
		}
	}
	return NewGrid(rows, cols, cells)
}

// newGrid takes ownership of cells and counts the alive ones.
func newGrid(rows, cols int, cells []Cell) *Grid {
	g := &Grid{rows: rows, cols: cols, cells: cells}
	for _, c := range cells {
		if c == Alive {
			g.alive++
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size reports the grid dimensions as width (cols) by height (rows).
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Len returns rows*cols.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear index for coordinates (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at linear index i.
func (g *Grid) At(i int) Cell { return g.cells[i] }

// CellState returns the state of the cell at (row, col).
func (g *Grid) CellState(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Dead, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	return g.cells[g.Index(row, col)], nil
}

// IsAlive reports whether any cell is alive.
func (g *Grid) IsAlive() bool {
	for _, c := range g.cells {
		if c == Alive {
			return true
		}
	}
	return false
}

// AliveCount returns the number of alive cells.
func (g *Grid) AliveCount() int { return g.alive }

// Cells returns a copy of the cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Bools returns the grid as a matrix of alive flags indexed [row][col].
func (g *Grid) Bools() [][]bool {
	out := make([][]bool, g.rows)
	for r := range out {
		row := make([]bool, g.cols)
		for c := range row {
			row[c] = g.cells[g.Index(r, c)] == Alive
		}
		out[r] = row
	}
	return out
}

// Map builds a new grid of the same size whose cell at (row, col) is
// fn(row, col, current). fn sees only the receiver, never the grid being
// built.
func (g *Grid) Map(fn func(row, col int, c Cell) Cell) *Grid {
	next := make([]Cell, len(g.cells))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := g.Index(r, c)
			next[idx] = fn(r, c, g.cells[idx])
		}
	}
	return newGrid(g.rows, g.cols, next)
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, '#' for alive and '.' for dead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[g.Index(r, c)] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
