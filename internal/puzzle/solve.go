// internal/puzzle/solve.go
//
// Reveal-all solver: finds one placement for every word in the list.
//
// Search order (fixed, so results are reproducible):
//   1. Origins row-major, r = 0..ROWS-1, c = 0..COLS-1.
//   2. Directions E, S, W, N, SE, SW, NE, NW.
//   3. Forward spelling, then reversed spelling, at the same origin/direction.
// The first full in-bounds hit wins. Words with no hit are reported, not fatal.

package puzzle

// Direction is a unit step between consecutive cells of a line.
type Direction struct {
	DR   int    `json:"dr"`
	DC   int    `json:"dc"`
	Name string `json:"name"`
}

// Directions lists the eight search directions in scan order.
var Directions = [8]Direction{
	{0, 1, "E"},
	{1, 0, "S"},
	{0, -1, "W"},
	{-1, 0, "N"},
	{1, 1, "SE"},
	{1, -1, "SW"},
	{-1, 1, "NE"},
	{-1, -1, "NW"},
}

// Placement is the solver's answer for a single word.
type Placement struct {
	Word      string    `json:"word"`
	Found     bool      `json:"found"`
	Origin    int       `json:"origin"`
	Direction Direction `json:"direction"`
	Reversed  bool      `json:"reversed"` // path letters spell the word backwards
	Path      []int     `json:"path,omitempty"`
}

// Solution holds one Placement per distinct word, in word-list order.
type Solution []Placement

// Path returns the cell path for word, or false if the word is unknown or
// could not be placed.
func (s Solution) Path(word string) ([]int, bool) {
	for _, p := range s {
		if p.Word == word {
			return p.Path, p.Found
		}
	}
	return nil, false
}

// Placed returns only the words that were found.
func (s Solution) Placed() []Placement {
	out := make([]Placement, 0, len(s))
	for _, p := range s {
		if p.Found {
			out = append(out, p)
		}
	}
	return out
}

// Unplaced returns the words that have no placement in the grid.
func (s Solution) Unplaced() []string {
	var out []string
	for _, p := range s {
		if !p.Found {
			out = append(out, p.Word)
		}
	}
	return out
}

// SolveAll locates every word of words in g. Duplicate words are solved once.
func SolveAll(g *Grid, words []string) Solution {
	seen := make(map[string]struct{}, len(words))
	out := make(Solution, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, Solve(g, w))
	}
	return out
}

// Solve finds the first placement of word in g. Found is false when the word
// cannot be placed; an empty word is never placed.
func Solve(g *Grid, word string) Placement {
	res := Placement{Word: word, Origin: -1}
	if word == "" {
		return res
	}
	rev := Reverse(word)
	path := make([]int, len(word))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			for _, d := range Directions {
				if !g.walk(r, c, d, path) {
					continue
				}
				fwd := g.spells(path, word)
				if !fwd && !g.spells(path, rev) {
					continue
				}
				res.Found = true
				res.Origin = g.ToIndex(r, c)
				res.Direction = d
				res.Reversed = !fwd
				res.Path = append([]int(nil), path...)
				return res
			}
		}
	}
	return res
}

// walk fills path with len(path) cells from (r, c) along d. It reports false
// if the line leaves the grid.
func (g *Grid) walk(r, c int, d Direction, path []int) bool {
	for k := range path {
		rr, cc := r+k*d.DR, c+k*d.DC
		if !g.InBounds(rr, cc) {
			return false
		}
		path[k] = g.ToIndex(rr, cc)
	}
	return true
}

func (g *Grid) spells(path []int, w string) bool {
	for k, i := range path {
		if g.letters[i] != w[k] {
			return false
		}
	}
	return true
}
