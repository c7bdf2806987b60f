package puzzle

// Match checks a finished selection against the words still in play.
//
// The letters under the selection are read in order and reversed; the first
// word in remaining equal to either reading is returned. Empty selections and
// selections with off-grid cells never match.
func Match(selection []int, g *Grid, remaining []string) (string, bool) {
	if len(selection) == 0 {
		return "", false
	}
	s, ok := g.Spell(selection)
	if !ok {
		return "", false
	}
	rev := Reverse(s)
	for _, w := range remaining {
		if w == s || w == rev {
			return w, true
		}
	}
	return "", false
}

// Reverse returns s with its bytes in reverse order. Grid letters are ASCII.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
