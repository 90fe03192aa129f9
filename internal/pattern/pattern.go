// Package pattern reads and writes initial Life patterns.
//
// The text format is a stream of whitespace-separated tokens: the number of
// rows, the number of columns, then rows*cols booleans in row-major order
// where true marks an alive cell.
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"life-ca/internal/core"
)

// Parse reads a pattern from r.
func Parse(r io.Reader) (*core.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	rows, err := readDim(sc, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := readDim(sc, "cols")
	if err != nil {
		return nil, err
	}
	if err := core.CheckDims(rows, cols); err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}

	want := rows * cols
	alive := make([]bool, 0, min(want, maxPrealloc))
	for sc.Scan() {
		tok := sc.Text()
		if len(alive) == want {
			return nil, fmt.Errorf("pattern %dx%d: unexpected token %q after %d cells: %w", rows, cols, tok, want, core.ErrMalformedInput)
		}
		v, err := strconv.ParseBool(tok)
		if err != nil {
			return nil, fmt.Errorf("pattern cell %d: %q is not a boolean: %w", len(alive), tok, core.ErrMalformedInput)
		}
		alive = append(alive, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	if len(alive) != want {
		return nil, fmt.Errorf("pattern %dx%d: got %d cells, want %d: %w", rows, cols, len(alive), want, core.ErrMalformedInput)
	}
	return core.NewGridFromBools(rows, cols, alive)
}

// maxPrealloc caps the cell buffer reserved from the header, which comes from
// untrusted input.
const maxPrealloc = 1 << 16

func readDim(sc *bufio.Scanner, name string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("read pattern: %w", err)
		}
		return 0, fmt.Errorf("pattern: missing %s: %w", name, core.ErrMalformedInput)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("pattern %s: %q is not an integer: %w", name, sc.Text(), core.ErrMalformedInput)
	}
	return v, nil
}

// Load parses the pattern file at path.
func Load(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Encode writes g in the format read by Parse, one grid row per line.
func Encode(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", g.Rows(), g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatBool(g.At(g.Index(r, c)) == core.Alive))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Default returns the built-in 5x5 seed: alive cells at (1,1), (1,3), (2,2),
// (3,2) and (3,3). It dies out after a few generations.
func Default() *core.Grid {
	const rows, cols = 5, 5
	cells := make([]core.Cell, rows*cols)
	for _, rc := range [][2]int{{1, 1}, {1, 3}, {2, 2}, {3, 2}, {3, 3}} {
		cells[rc[0]*cols+rc[1]] = core.Alive
	}
	g, err := core.NewGrid(rows, cols, cells)
	if err != nil {
		panic(err)
	}
	return g
}
