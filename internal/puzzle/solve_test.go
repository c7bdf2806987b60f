package puzzle

import (
	"reflect"
	"testing"
)

func TestSolveAllLifeSciences(t *testing.T) {
	g := lifeSciences()
	sol := SolveAll(g, lifeSciencesWords)
	if len(sol) != len(lifeSciencesWords) {
		t.Fatalf("expected %d placements, got %d", len(lifeSciencesWords), len(sol))
	}

	want := map[string]struct {
		origin   int
		dir      string
		reversed bool
		path     []int
	}{
		"MITOSIS":        {182, "E", true, seq(182, 1, 7)},
		"MEIOSIS":        {151, "E", false, seq(151, 1, 7)},
		"CHROMOSOME":     {120, "E", false, seq(120, 1, 10)},
		"ENZYME":         {107, "E", false, seq(107, 1, 6)},
		"OSMOSIS":        {62, "E", false, seq(62, 1, 7)},
		"DIFFUSION":      {91, "E", false, seq(91, 1, 9)},
		"GENOTYPE":       {16, "E", false, seq(16, 1, 8)},
		"PHOTOSYNTHESIS": {0, "E", false, seq(0, 1, 14)},
		"TRANSCRIPTION":  {137, "E", false, seq(137, 1, 13)},
		"ALLELE":         {76, "E", false, seq(76, 1, 6)},
		"PROTEIN":        {0, "S", false, seq(0, 15, 7)},
		"CHLOROPLAST":    {46, "E", false, seq(46, 1, 11)},
		"CELL":           {25, "E", true, seq(25, 1, 4)},
		"GENE":           {168, "E", false, seq(168, 1, 4)},
	}
	for _, p := range sol {
		w, ok := want[p.Word]
		if !ok {
			continue
		}
		if !p.Found {
			t.Fatalf("%s: expected a placement", p.Word)
		}
		if p.Origin != w.origin || p.Direction.Name != w.dir || p.Reversed != w.reversed {
			t.Fatalf("%s: got origin=%d dir=%s reversed=%v, want %d %s %v",
				p.Word, p.Origin, p.Direction.Name, p.Reversed, w.origin, w.dir, w.reversed)
		}
		if !reflect.DeepEqual(p.Path, w.path) {
			t.Fatalf("%s: path %v, want %v", p.Word, p.Path, w.path)
		}
	}

	// The shipped grid does not contain these words in any direction.
	wantUnplaced := []string{"RIBOSOME", "NUCLEOTIDE", "PHENOTYPE", "MUTATION", "HOMEOSTASIS", "TRANSLATION"}
	if got := sol.Unplaced(); !reflect.DeepEqual(got, wantUnplaced) {
		t.Fatalf("unplaced = %v, want %v", got, wantUnplaced)
	}
	if len(sol.Placed()) != len(want) {
		t.Fatalf("expected %d placed words, got %d", len(want), len(sol.Placed()))
	}
}

func TestSolveAllPathsSpellWord(t *testing.T) {
	g := lifeSciences()
	for _, p := range SolveAll(g, lifeSciencesWords).Placed() {
		if len(p.Path) != len(p.Word) {
			t.Fatalf("%s: path length %d", p.Word, len(p.Path))
		}
		s, ok := g.Spell(p.Path)
		if !ok {
			t.Fatalf("%s: path leaves the grid: %v", p.Word, p.Path)
		}
		if s != p.Word && Reverse(s) != p.Word {
			t.Fatalf("%s: path spells %q", p.Word, s)
		}
		if (s != p.Word) != p.Reversed {
			t.Fatalf("%s: reversed flag %v but path spells %q", p.Word, p.Reversed, s)
		}
		if p.Path[0] != p.Origin {
			t.Fatalf("%s: path does not start at origin %d", p.Word, p.Origin)
		}
		// The path must be a straight trace from its first to last cell.
		if tr := g.Trace(p.Path[0], p.Path[len(p.Path)-1]); !reflect.DeepEqual(tr, p.Path) {
			t.Fatalf("%s: path %v is not a straight line (trace %v)", p.Word, p.Path, tr)
		}
	}
}

func TestSolveAllDeterministic(t *testing.T) {
	g := lifeSciences()
	a := SolveAll(g, lifeSciencesWords)
	b := SolveAll(g, lifeSciencesWords)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected identical solutions on repeated calls")
	}
}

func TestSolveEdgeCases(t *testing.T) {
	// Forward beats reversed for palindromes at the same origin/direction.
	if p := Solve(MustGrid("ABA"), "ABA"); !p.Found || p.Reversed || p.Origin != 0 || p.Direction.Name != "E" {
		t.Fatalf("palindrome: got %+v", p)
	}

	// Reversed at the first origin beats forward at a later origin.
	if p := Solve(MustGrid("AB"), "BA"); !p.Found || !p.Reversed || p.Origin != 0 || !reflect.DeepEqual(p.Path, []int{0, 1}) {
		t.Fatalf("reversed: got %+v", p)
	}

	// TAC runs NE from (2,0), but row 0 is scanned first: (0,2) SW reads CAT.
	g := MustGrid("XXC", "XAX", "TXX")
	if p := Solve(g, "TAC"); !p.Found || p.Origin != 2 || p.Direction.Name != "SW" || !p.Reversed {
		t.Fatalf("diagonal: got %+v", p)
	}

	if p := Solve(MustGrid("ABC"), ""); p.Found {
		t.Fatal("empty word must not be placed")
	}
	if p := Solve(MustGrid("ABC"), "ABCD"); p.Found {
		t.Fatal("word longer than the grid must not be placed")
	}

	sol := SolveAll(MustGrid("ABC"), []string{"AB", "ZZ", "AB"})
	if len(sol) != 2 {
		t.Fatalf("expected duplicates to be solved once, got %d placements", len(sol))
	}
	if _, ok := sol.Path("ZZ"); ok {
		t.Fatal("expected ZZ to be unplaced")
	}
	if path, ok := sol.Path("AB"); !ok || !reflect.DeepEqual(path, []int{0, 1}) {
		t.Fatalf("expected AB at [0 1], got %v", path)
	}
	if _, ok := sol.Path("nope"); ok {
		t.Fatal("unknown word must not have a path")
	}
}

func TestSolveAllPlanets(t *testing.T) {
	g := MustGrid(
		"RNVVARWMWC",
		"YRDTNGMARS",
		"RUNEFOMWSL",
		"CTEMNEPPUN",
		"CAPORFFLNE",
		"ASTCEUPUAV",
		"WEUVVRYTRE",
		"MRNETTEOUN",
		"YAEEARTHAU",
		"WJUPITERDS",
	)
	words := []string{"MERCURY", "VENUS", "EARTH", "MARS", "JUPITER", "SATURN", "URANUS", "NEPTUNE", "PLUTO", "COMET"}
	sol := SolveAll(g, words)
	if u := sol.Unplaced(); len(u) != 0 {
		t.Fatalf("expected every planet placed, missing %v", u)
	}
	if p, _ := sol.Path("MERCURY"); !reflect.DeepEqual(p, []int{26, 35, 44, 53, 62, 71, 80}) {
		t.Fatalf("MERCURY path %v", p)
	}
	if p, _ := sol.Path("SATURN"); !reflect.DeepEqual(p, seq(1, 10, 6)) {
		t.Fatalf("SATURN path %v", p)
	}
}
