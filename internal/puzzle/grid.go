// internal/puzzle/grid.go
//
// Letter grid and cell indexing for the word-search engine.
// Responsibilities:
//   - Build an immutable ROWS×COLS grid from equal-length rows.
//   - Convert between flat cell indices and (row, col) coordinates.
//
// Notes:
//   - Letters are upper-cased on load; no other validation is applied.
//   - ToIndex/ToRowCol do not bounds-check; callers use InBounds/Valid first.

package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyGrid  = errors.New("puzzle: grid has no rows")
	ErrRaggedGrid = errors.New("puzzle: grid rows differ in length")
)

// Grid is a fixed rectangular letter matrix stored row-major.
type Grid struct {
	rows    int
	cols    int
	letters []byte
}

// NewGrid builds a grid from rows of letters. Every row must have the same,
// non-zero length.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	letters := make([]byte, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d letters, want %d: %w", i, len(r), cols, ErrRaggedGrid)
		}
		letters = append(letters, strings.ToUpper(r)...)
	}
	return &Grid{rows: len(rows), cols: cols, letters: letters}, nil
}

// MustGrid is NewGrid for fixed fixtures; it panics on malformed input.
func MustGrid(rows ...string) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Size is the number of cells (ROWS*COLS).
func (g *Grid) Size() int { return len(g.letters) }

// ToIndex maps (row, col) to a flat cell index.
func (g *Grid) ToIndex(row, col int) int { return row*g.cols + col }

// ToRowCol maps a flat cell index back to (row, col).
func (g *Grid) ToRowCol(i int) (row, col int) { return i / g.cols, i % g.cols }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Valid reports whether i is a cell index of this grid.
func (g *Grid) Valid(i int) bool { return i >= 0 && i < len(g.letters) }

// Letter returns the letter at cell i. i must be Valid.
func (g *Grid) Letter(i int) byte { return g.letters[i] }

// Row returns row r as a string.
func (g *Grid) Row(r int) string {
	return string(g.letters[r*g.cols : (r+1)*g.cols])
}

// Lines returns every row as a string, top to bottom.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	for r := range out {
		out[r] = g.Row(r)
	}
	return out
}

// Spell concatenates the letters at the given cells in order.
// ok is false if any index is off the grid.
func (g *Grid) Spell(cells []int) (s string, ok bool) {
	b := make([]byte, len(cells))
	for k, i := range cells {
		if !g.Valid(i) {
			return "", false
		}
		b[k] = g.letters[i]
	}
	return string(b), true
}
