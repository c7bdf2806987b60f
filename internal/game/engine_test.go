package game

import (
	"reflect"
	"testing"

	"github.com/robalobadob/wordsearch/internal/puzzle"
)

func lifeSciences(t *testing.T) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.New("life-sciences", "Grade 12 Life Sciences", []string{
		"PHOTOSYNTHESISA",
		"RGENOTYPEELLECM",
		"OLNITATUMMITOSI",
		"TCHLOROPLASTTEO",
		"EROSMOSISPHENOT",
		"IALLELEMRIBOSOM",
		"NDIFFUSIONNUCLE",
		"SYENZYMETRANSLA",
		"CHROMOSOMEHOMEO",
		"RETRANSCRIPTION",
		"IMEIOSISPROTEIN",
		"POHGENEPLASMCSN",
		"TISISOTIMOMMTLU",
		"IOODNITEIDONNAA",
		"OSYSENIPLANRTRC",
	}, []string{
		"MITOSIS", "MEIOSIS", "CHROMOSOME", "RIBOSOME", "ENZYME",
		"OSMOSIS", "DIFFUSION", "NUCLEOTIDE", "GENOTYPE", "PHENOTYPE",
		"MUTATION", "HOMEOSTASIS", "PHOTOSYNTHESIS", "TRANSCRIPTION", "TRANSLATION",
		"ALLELE", "PROTEIN", "CHLOROPLAST", "CELL", "GENE",
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return p
}

func apply(t *testing.T, g *Game, evs ...Event) Outcome {
	t.Helper()
	var out Outcome
	for _, ev := range evs {
		var err error
		if out, err = g.Apply(ev); err != nil {
			t.Fatalf("Apply(%+v): %v", ev, err)
		}
	}
	return out
}

func TestSelectCellEndToEnd(t *testing.T) {
	g := New(lifeSciences(t))

	out := apply(t, g, Down(25), Move(26))
	if out.Phase != PhaseSelecting || !reflect.DeepEqual(out.Selection, []int{25, 26}) {
		t.Fatalf("unexpected live state: %+v", out)
	}
	out = apply(t, g, Move(28), Up())
	if out.Found == nil || out.Found.Word != "CELL" {
		t.Fatalf("expected CELL to be found, got %+v", out.Found)
	}
	if !reflect.DeepEqual(out.Found.Indices, []int{25, 26, 27, 28}) {
		t.Fatalf("unexpected CELL indices %v", out.Found.Indices)
	}
	if out.Phase != PhaseIdle || len(out.Selection) != 0 {
		t.Fatalf("expected idle with no selection after release, got %+v", out)
	}

	if g.Found.Len() != 1 || !g.Found.Has("CELL") {
		t.Fatalf("expected only CELL found, got %v", g.Found.Entries())
	}
	for _, w := range g.Puzzle.Words {
		if w != "CELL" && g.Found.Has(w) {
			t.Fatalf("%s should not be found", w)
		}
	}
	if rem := g.Remaining(); len(rem) != len(g.Puzzle.Words)-1 {
		t.Fatalf("expected %d remaining, got %d", len(g.Puzzle.Words)-1, len(rem))
	}

	// Dragging the same word again, the other way, does not re-match it.
	out = apply(t, g, Down(28), Move(25), Up())
	if out.Found != nil {
		t.Fatalf("CELL matched twice: %+v", out.Found)
	}
	if g.Found.Len() != 1 {
		t.Fatalf("expected 1 found word, got %d", g.Found.Len())
	}
}

func TestNonStraightMoveKeepsSelection(t *testing.T) {
	g := New(lifeSciences(t))
	apply(t, g, Down(0), Move(1))
	out := apply(t, g, Move(17)) // (1,2): not a straight line from (0,0)
	if !reflect.DeepEqual(out.Selection, []int{0, 1}) {
		t.Fatalf("expected previous selection kept, got %v", out.Selection)
	}
}

func TestPointerDownDiscardsLiveSelection(t *testing.T) {
	g := New(lifeSciences(t))
	apply(t, g, Down(0), Move(3))
	out := apply(t, g, Down(50))
	if out.Phase != PhaseSelecting || !reflect.DeepEqual(out.Selection, []int{50}) {
		t.Fatalf("expected fresh selection at 50, got %+v", out)
	}
	if g.Start != 50 {
		t.Fatalf("expected drag start 50, got %d", g.Start)
	}
}

func TestIdleEventsIgnored(t *testing.T) {
	g := New(lifeSciences(t))
	out := apply(t, g, Move(4), Up())
	if out.Phase != PhaseIdle || len(out.Selection) != 0 || out.Found != nil {
		t.Fatalf("expected untouched idle game, got %+v", out)
	}
	out = apply(t, g, Down(-1), Down(g.Puzzle.Grid.Size()))
	if out.Phase != PhaseIdle {
		t.Fatalf("off-grid press should be ignored, got %+v", out)
	}
}

func TestCancelSkipsMatch(t *testing.T) {
	g := New(lifeSciences(t))
	out := apply(t, g, Down(25), Move(28), Cancel())
	if out.Phase != PhaseIdle || out.Found != nil || g.Found.Len() != 0 {
		t.Fatalf("cancel must not register a word: %+v", out)
	}
	if out = apply(t, g, Up()); out.Found != nil {
		t.Fatal("release after cancel must not match")
	}
}

func TestMoveOffBoardTruncates(t *testing.T) {
	g := New(lifeSciences(t))
	out := apply(t, g, Down(1), MoveTo(3, -2))
	if !reflect.DeepEqual(out.Selection, []int{1, 15}) {
		t.Fatalf("expected truncated selection [1 15], got %v", out.Selection)
	}
}

func TestUnknownEvent(t *testing.T) {
	g := New(lifeSciences(t))
	if _, err := g.Apply(Event{Kind: "hover"}); err == nil {
		t.Fatal("expected error for unknown event kind")
	}
}

func TestRevealAndReset(t *testing.T) {
	g := New(lifeSciences(t))
	apply(t, g, Down(25), Move(28), Up())
	apply(t, g, Down(0), Move(2))

	sol := g.Reveal()
	if len(sol) != len(g.Puzzle.Words) {
		t.Fatalf("expected a placement per word, got %d", len(sol))
	}
	snap := g.Snapshot()
	if !snap.Revealed || len(snap.Found) != 14 {
		t.Fatalf("expected 14 revealed words, got %d (revealed=%v)", len(snap.Found), snap.Revealed)
	}
	if snap.Status != "playing" || len(snap.Remaining) != 6 {
		t.Fatalf("expected 6 unplaceable words remaining, got %v", snap.Remaining)
	}
	if snap.Phase != PhaseSelecting || !reflect.DeepEqual(snap.Selection, []int{0, 1, 2}) {
		t.Fatalf("reveal must not touch the live selection: %+v", snap)
	}
	for _, e := range snap.Found {
		if path, _ := sol.Path(e.Word); !reflect.DeepEqual(path, e.Indices) {
			t.Fatalf("%s: registry path %v differs from solver %v", e.Word, e.Indices, path)
		}
	}

	g.Reset()
	snap = g.Snapshot()
	if len(snap.Found) != 0 || snap.Revealed || snap.Phase != PhaseIdle || len(snap.Selection) != 0 {
		t.Fatalf("expected clean game after reset, got %+v", snap)
	}
	if len(snap.Remaining) != len(g.Puzzle.Words) {
		t.Fatalf("expected all words remaining, got %d", len(snap.Remaining))
	}
}

func TestRevealCompletesPlaceablePuzzle(t *testing.T) {
	p, err := puzzle.New("mini", "", []string{"CAT", "XOX", "XXG"}, []string{"cat", "cog", "tox"})
	if err != nil {
		t.Fatal(err)
	}
	g := New(p)
	if g.Snapshot().Status != "playing" {
		t.Fatal("expected new game to be playing")
	}
	sol := g.Reveal()
	if u := sol.Unplaced(); len(u) != 0 {
		t.Fatalf("unexpected unplaced words %v", u)
	}
	if s := g.Snapshot(); s.Status != "complete" || s.Total != 3 {
		t.Fatalf("expected complete 3/3, got %+v", s)
	}
}
