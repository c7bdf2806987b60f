package game

import "github.com/zyedidia/generic/mapset"

// FoundEntry is a word confirmed on the board with the cells it occupies.
type FoundEntry struct {
	Word    string `json:"word"`
	Indices []int  `json:"indices"`
}

// Registry accumulates found words. A word is held at most once; entries keep
// the order in which they were found.
type Registry struct {
	words   mapset.Set[string]
	entries []FoundEntry
}

func NewRegistry() *Registry {
	return &Registry{words: mapset.New[string]()}
}

// Add records e unless its word is already present. It reports whether the
// entry was added.
func (r *Registry) Add(e FoundEntry) bool {
	if r.words.Has(e.Word) {
		return false
	}
	r.words.Put(e.Word)
	r.entries = append(r.entries, FoundEntry{Word: e.Word, Indices: append([]int(nil), e.Indices...)})
	return true
}

func (r *Registry) Has(word string) bool { return r.words.Has(word) }

func (r *Registry) Len() int { return r.words.Size() }

// Entries returns a copy of the found entries in discovery order.
func (r *Registry) Entries() []FoundEntry {
	out := make([]FoundEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Remaining returns words not yet found, preserving the order of words.
func (r *Registry) Remaining(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !r.words.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// Covers reports whether cell belongs to any found word.
func (r *Registry) Covers(cell int) bool {
	for _, e := range r.entries {
		for _, i := range e.Indices {
			if i == cell {
				return true
			}
		}
	}
	return false
}

// Replace discards all entries and records entries instead.
func (r *Registry) Replace(entries []FoundEntry) {
	r.Clear()
	for _, e := range entries {
		r.Add(e)
	}
}

func (r *Registry) Clear() {
	r.words = mapset.New[string]()
	r.entries = nil
}
