package puzzle

import "strings"

// Puzzle is a named grid with its word list.
type Puzzle struct {
	Name  string
	Title string
	Grid  *Grid
	Words []string
}

// New builds a Puzzle from grid rows and words. Words are trimmed,
// upper-cased and de-duplicated keeping first occurrence; blanks are dropped.
func New(name, title string, rows, words []string) (*Puzzle, error) {
	g, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Name: name, Title: title, Grid: g, Words: NormalizeWords(words)}, nil
}

// NormalizeWords upper-cases and de-duplicates a word list, keeping order.
func NormalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
