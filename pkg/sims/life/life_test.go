package life

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"life-ca/internal/core"
)

func gridOf(t *testing.T, rows, cols int, alive ...[2]int) *core.Grid {
	t.Helper()
	cells := make([]core.Cell, rows*cols)
	for _, rc := range alive {
		cells[rc[0]*cols+rc[1]] = core.Alive
	}
	g, err := core.NewGrid(rows, cols, cells)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func mustNew(t *testing.T, w, h int) *Life {
	t.Helper()
	l, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return l
}

func countTrue(m [][]bool) int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := core.Dead
		if n == 2 || n == 3 {
			wantAlive = core.Alive
		}
		if got := Rule(core.Alive, n); got != wantAlive {
			t.Fatalf("Rule(alive, %d) = %v, want %v", n, got, wantAlive)
		}
		wantDead := core.Dead
		if n == 3 {
			wantDead = core.Alive
		}
		if got := Rule(core.Dead, n); got != wantDead {
			t.Fatalf("Rule(dead, %d) = %v, want %v", n, got, wantDead)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := NewFromGrid(gridOf(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}))

	life.Step()
	want := ".....\n.....\n.###.\n.....\n.....\n"
	if got := life.Grid().String(); got != want {
		t.Fatalf("after first step:\n%s\nwant:\n%s", got, want)
	}

	life.Step()
	want = ".....\n..#..\n..#..\n..#..\n.....\n"
	if got := life.Grid().String(); got != want {
		t.Fatalf("after second step:\n%s\nwant:\n%s", got, want)
	}
	if life.Generation() != 2 {
		t.Fatalf("Generation() = %d, want 2", life.Generation())
	}
}

func TestBlockStillLife(t *testing.T) {
	g := gridOf(t, 6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
	next := ComputeNextGrid(g)
	if !next.Equal(g) {
		t.Fatalf("block changed:\n%s", next)
	}
}

func TestComputeNewGridDoesNotApply(t *testing.T) {
	life := NewDefault()
	before := life.Grid()
	next := life.ComputeNewGrid()
	if life.Grid() != before || life.Generation() != 0 {
		t.Fatal("ComputeNewGrid must not advance the simulation")
	}
	if next.Equal(before) {
		t.Fatal("default pattern is not a still life")
	}
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	start := gridOf(t, 8, 8, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})
	life := NewFromGrid(start)

	life.NextGenerations(4)
	moved := gridOf(t, 8, 8, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3})
	if !life.Grid().Equal(moved) {
		t.Fatalf("glider after 4 generations:\n%s", life.Grid())
	}

	life.NextGenerations(28)
	if !life.Grid().Equal(start) {
		t.Fatalf("glider after 32 generations:\n%s", life.Grid())
	}
	if life.Communities() != 1 {
		t.Fatalf("Communities() = %d, want 1", life.Communities())
	}
}

func TestDefaultPatternDiesOut(t *testing.T) {
	life := NewDefault()
	wantAlive := []int{5, 4, 3, 2, 0}
	for gen, want := range wantAlive {
		if got := life.TotalAliveCells(); got != want {
			t.Fatalf("generation %d: alive = %d, want %d", gen, got, want)
		}
		life.NextGeneration()
	}
	if life.IsAlive() {
		t.Fatal("default pattern should be extinct")
	}
}

func TestAliveCountMatchesGridAfterAdvance(t *testing.T) {
	life := mustNew(t, 24, 16)
	life.Reset(7)
	for _, n := range []int{1, 3, 10} {
		life.NextGenerations(n)
		if got, want := life.TotalAliveCells(), countTrue(life.Grid().Bools()); got != want {
			t.Fatalf("after %d more generations: TotalAliveCells = %d, grid has %d", n, got, want)
		}
	}
}

func TestNextGenerationsNonPositiveIsNoop(t *testing.T) {
	life := NewDefault()
	before := life.Grid()
	for _, n := range []int{0, -1} {
		life.NextGenerations(n)
		if !life.Grid().Equal(before) || life.TotalAliveCells() != 5 || life.Generation() != 0 {
			t.Fatalf("NextGenerations(%d) changed the simulation", n)
		}
	}
}

func TestCellStateAndNeighbors(t *testing.T) {
	life := NewDefault()
	if c, err := life.CellState(1, 3); err != nil || c != core.Alive {
		t.Fatalf("CellState(1,3) = %v, %v", c, err)
	}
	if _, err := life.CellState(5, 0); err == nil {
		t.Fatal("CellState(5,0) must fail")
	}
	if n, err := life.AliveNeighbors(2, 2); err != nil || n != 4 {
		t.Fatalf("AliveNeighbors(2,2) = %d, %v; want 4", n, err)
	}
	if _, err := life.AliveNeighbors(0, -1); err == nil {
		t.Fatal("AliveNeighbors(0,-1) must fail")
	}
}

func TestResetRestoresPattern(t *testing.T) {
	life := NewDefault()
	life.NextGenerations(3)
	life.Reset(99)
	if life.Generation() != 0 || life.TotalAliveCells() != 5 {
		t.Fatalf("after reset: generation=%d alive=%d", life.Generation(), life.TotalAliveCells())
	}
}

func TestResetSoupDeterministic(t *testing.T) {
	a := mustNew(t, 32, 32)
	b := mustNew(t, 32, 32)
	a.Reset(1234)
	b.Reset(1234)
	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("same seed must produce the same soup")
	}
	if a.TotalAliveCells() == 0 {
		t.Fatal("soup should not be empty at the default density")
	}
	b.Reset(4321)
	if a.Grid().Equal(b.Grid()) {
		t.Fatal("different seeds should produce different soups")
	}
}

func TestCellsTracksGrid(t *testing.T) {
	life := NewDefault()
	cells := life.Cells()
	if len(cells) != 25 || cells[1*5+1] != 1 || cells[0] != 0 {
		t.Fatalf("unexpected display buffer %v", cells)
	}
	life.NextGenerations(4)
	for i, c := range life.Cells() {
		if c != 0 {
			t.Fatalf("cell %d still set after extinction", i)
		}
	}
}

func TestNewWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 6
	soup, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if soup.Size() != (core.Size{W: 10, H: 6}) {
		t.Fatalf("Size() = %+v", soup.Size())
	}

	cfg.Pattern = PatternDefault
	def, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if def.TotalAliveCells() != 5 {
		t.Fatalf("default pattern alive = %d", def.TotalAliveCells())
	}

	path := filepath.Join(t.TempDir(), "block.txt")
	if err := os.WriteFile(path, []byte("2 2\ntrue true\ntrue true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Pattern = path
	block, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if block.TotalAliveCells() != 4 {
		t.Fatalf("block alive = %d", block.TotalAliveCells())
	}

	cfg.Pattern = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := NewWithConfig(cfg); err == nil {
		t.Fatal("missing pattern file must fail")
	}
}

func TestRegistered(t *testing.T) {
	sim, err := core.NewSim("life", map[string]string{"w": "12", "h": "7", "seed": "3"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Name() != "life" || sim.Size() != (core.Size{W: 12, H: 7}) {
		t.Fatalf("unexpected sim %s %+v", sim.Name(), sim.Size())
	}
	if _, err := core.NewSim("life", map[string]string{"pattern": "/nonexistent/pattern"}); err == nil {
		t.Fatal("bad pattern path must surface an error")
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"w": "40", "h": "-2", "density": "0.5", "seed": "9", "pattern": "x.txt"})
	if cfg.Width != 40 || cfg.Height != DefaultConfig().Height || cfg.Density != 0.5 || cfg.Seed != 9 || cfg.Pattern != "x.txt" {
		t.Fatalf("FromMap = %+v", cfg)
	}
	if back := FromMap(cfg.Map()); back != cfg {
		t.Fatalf("FromMap(Map()) = %+v, want %+v", back, cfg)
	}
}

func TestParameters(t *testing.T) {
	life := NewFromGrid(gridOf(t, 8, 8,
		[2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2},
		[2]int{5, 5}))
	snap := life.Parameters()
	want := map[string]string{"generation": "0", "alive": "5", "communities": "2", "largest": "4"}
	for key, value := range want {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != value {
			t.Fatalf("%s = %+v (found=%v), want %s", key, p, ok, value)
		}
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, wh := range [][2]int{{0, 5}, {5, -1}, {math.MaxInt, 2}, {4, 1 << 62}} {
		if _, err := New(wh[0], wh[1]); !errors.Is(err, core.ErrInvalidDimension) {
			t.Fatalf("New(%d, %d) error = %v, want ErrInvalidDimension", wh[0], wh[1], err)
		}
	}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = math.MaxInt, 2
	if _, err := NewWithConfig(cfg); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("NewWithConfig with overflowing size: error = %v", err)
	}
	if _, err := core.NewSim("life", map[string]string{"w": "9223372036854775807", "h": "2"}); err == nil {
		t.Fatal("registry must surface the dimension error")
	}
}

func TestNewFromGridNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewFromGrid(nil) should panic")
		}
	}()
	NewFromGrid(nil)
}
