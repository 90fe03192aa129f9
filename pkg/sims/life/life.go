package life

import (
	"life-ca/internal/core"
	"life-ca/internal/pattern"
	rng "life-ca/pkg/core"
)

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg Config

	// initial is the pattern Reset returns to; nil for random soups.
	initial *core.Grid
	grid    *core.Grid
	gen     int
	display []uint8

	// labels caches CommunityLabels for the grid in labelled.
	labelled *core.Grid
	labels   []int
	groups   int
}

// New returns an empty Life grid of w columns by h rows. Reset fills it with
// a random soup.
func New(w, h int) (*Life, error) {
	if err := core.CheckDims(h, w); err != nil {
		return nil, err
	}
	g, err := core.NewGrid(h, w, make([]core.Cell, w*h))
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	l := &Life{cfg: cfg}
	l.setGrid(g)
	return l, nil
}

// NewFromGrid returns a Life starting from g. Reset returns to g. g must not
// be nil.
func NewFromGrid(g *core.Grid) *Life {
	if g == nil {
		panic("life: NewFromGrid called with a nil grid")
	}
	cfg := DefaultConfig()
	cfg.Width = g.Cols()
	cfg.Height = g.Rows()
	l := &Life{cfg: cfg, initial: g}
	l.setGrid(g)
	return l
}

// NewDefault returns a Life starting from the built-in 5x5 pattern.
func NewDefault() *Life {
	l := NewFromGrid(pattern.Default())
	l.cfg.Pattern = PatternDefault
	return l
}

// NewWithConfig builds a Life from cfg, loading the pattern file if one is
// named and seeding a random soup otherwise.
func NewWithConfig(cfg Config) (*Life, error) {
	switch cfg.Pattern {
	case "":
		l, err := New(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		l.cfg.Density = cfg.Density
		l.cfg.Seed = cfg.Seed
		l.Reset(0)
		return l, nil
	case PatternDefault:
		return NewDefault(), nil
	}
	g, err := pattern.Load(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	l := NewFromGrid(g)
	l.cfg.Pattern = cfg.Pattern
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the current grid as 0/1 values in row-major order.
func (l *Life) Cells() []uint8 { return l.display }

// Config returns the configuration the simulation was built from.
func (l *Life) Config() Config { return l.cfg }

// Reset returns to the initial pattern, or reseeds the random soup. A zero
// seed falls back to the configured one.
func (l *Life) Reset(seed int64) {
	l.gen = 0
	if l.initial != nil {
		l.setGrid(l.initial)
		return
	}
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.cfg.Seed = seed
	alive := make([]bool, l.grid.Len())
	rng.FillDensity(rng.NewRNG(seed), alive, l.cfg.Density)
	g, _ := core.NewGridFromBools(l.grid.Rows(), l.grid.Cols(), alive)
	l.setGrid(g)
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.NextGeneration() }

// Generation returns how many generations have been applied since the last
// reset.
func (l *Life) Generation() int { return l.gen }

// Grid returns the current generation.
func (l *Life) Grid() *core.Grid { return l.grid }

// CellState returns the state of the cell at (row, col).
func (l *Life) CellState(row, col int) (core.Cell, error) {
	return l.grid.CellState(row, col)
}

// IsAlive reports whether any cell is alive.
func (l *Life) IsAlive() bool { return l.grid.IsAlive() }

// TotalAliveCells returns the number of alive cells.
func (l *Life) TotalAliveCells() int { return l.grid.AliveCount() }

// AliveNeighbors returns the number of alive toroidal neighbours of (row, col).
func (l *Life) AliveNeighbors(row, col int) (int, error) {
	return core.CountAliveNeighbors(l.grid, row, col)
}

// ComputeNewGrid returns the next generation without applying it.
func (l *Life) ComputeNewGrid() *core.Grid { return ComputeNextGrid(l.grid) }

// NextGeneration replaces the grid with the next generation.
func (l *Life) NextGeneration() {
	l.setGrid(ComputeNextGrid(l.grid))
	l.gen++
}

// NextGenerations applies n generations one after another. n <= 0 leaves
// the simulation unchanged.
func (l *Life) NextGenerations(n int) {
	for i := 0; i < n; i++ {
		l.NextGeneration()
	}
}

// Communities returns the number of connected groups of alive cells.
func (l *Life) Communities() int {
	_, n := l.CommunityLabels()
	return n
}

// CommunityLabels labels every alive cell with its community; dead cells are
// -1. The result is cached until the grid changes and must not be modified.
func (l *Life) CommunityLabels() ([]int, int) {
	if l.labelled != l.grid {
		l.labels, l.groups = CommunityLabels(l.grid)
		l.labelled = l.grid
	}
	return l.labels, l.groups
}

// CommunitySizes returns the number of cells in each community of the
// current grid, indexed by label.
func (l *Life) CommunitySizes() []int {
	return sizesOf(l.CommunityLabels())
}

func (l *Life) setGrid(g *core.Grid) {
	l.grid = g
	if len(l.display) != g.Len() {
		l.display = make([]uint8, g.Len())
	}
	for i := range l.display {
		l.display[i] = uint8(g.At(i))
	}
}

// Rule returns the next state of a cell with the given number of alive
// neighbours: alive cells survive with 2 or 3, dead cells are born with 3.
func Rule(c core.Cell, neighbors int) core.Cell {
	switch {
	case c == core.Alive && (neighbors == 2 || neighbors == 3):
		return core.Alive
	case c == core.Dead && neighbors == 3:
		return core.Alive
	}
	return core.Dead
}

// ComputeNextGrid applies Rule to every cell of g and returns the result as
// a new grid. g is not modified.
func ComputeNextGrid(g *core.Grid) *core.Grid {
	return g.Map(func(row, col int, c core.Cell) core.Cell {
		return Rule(c, g.AliveNeighbors(row, col))
	})
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
