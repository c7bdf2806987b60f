package puzzle

import "testing"

func TestMatch(t *testing.T) {
	g := lifeSciences()
	cell := seq(25, 1, 4)     // row 1 reads "LLEC"
	cellRev := seq(28, -1, 4) // same cells dragged the other way

	tests := []struct {
		name      string
		selection []int
		remaining []string
		want      string
		ok        bool
	}{
		{"reversed reading", cell, []string{"GENE", "CELL"}, "CELL", true},
		{"forward reading", cellRev, []string{"CELL"}, "CELL", true},
		{"word already found", cell, []string{"GENE"}, "", false},
		{"no words left", cell, nil, "", false},
		{"empty selection", nil, []string{"CELL"}, "", false},
		{"prefix is not a match", seq(25, 1, 3), []string{"CELL"}, "", false},
		{"off-grid cell", []int{25, 26, 27, 999}, []string{"CELL"}, "", false},
		{"forward word", seq(16, 1, 8), lifeSciencesWords, "GENOTYPE", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.selection, g, tt.remaining)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("Match = (%q,%v), want (%q,%v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMatchFirstInOrderWins(t *testing.T) {
	g := MustGrid("ABA")
	got, ok := Match([]int{0, 1, 2}, g, []string{"ABA", "ABA"})
	if !ok || got != "ABA" {
		t.Fatalf("expected ABA, got %q ok=%v", got, ok)
	}
	got, ok = Match([]int{0, 1}, g, []string{"BA", "AB"})
	if !ok || got != "BA" {
		t.Fatalf("expected first listed word BA, got %q", got)
	}
}

func TestReverse(t *testing.T) {
	for in, want := range map[string]string{"": "", "A": "A", "LLEC": "CELL", "ABC": "CBA"} {
		if got := Reverse(in); got != want {
			t.Fatalf("Reverse(%q) = %q, want %q", in, got, want)
		}
	}
}
