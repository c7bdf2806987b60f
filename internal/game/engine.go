// internal/game/engine.go
//
// Play engine for a single word-search session.
// Responsibilities:
//   - Create new games bound to a puzzle.
//   - Drive the selection state machine from pointer events:
//       idle      --down-->   selecting
//       selecting --move-->   selecting (selection re-traced)
//       selecting --up-->     idle      (selection matched, then discarded)
//       any       --cancel--> idle
//   - Reveal-all (replace found words with the solver's placements) and reset.
//
// Notes:
//   - A Game is not safe for concurrent use; the store serializes access.
//   - Matching always runs against Found.Remaining(words), so a found word
//     can never match again.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/robalobadob/wordsearch/internal/puzzle"
)

// New constructs a new idle game for p.
func New(p *puzzle.Puzzle) *Game {
	return &Game{
		ID:     randomID(),
		Puzzle: p,
		Phase:  PhaseIdle,
		Start:  -1,
		Found:  NewRegistry(),
	}
}

// Apply feeds one pointer event through the state machine.
// It returns the resulting phase and selection, plus the entry registered when
// a release completed a word. Unknown event kinds are an error; every other
// input is absorbed.
func (g *Game) Apply(ev Event) (Outcome, error) {
	var found *FoundEntry
	switch ev.Kind {
	case EventDown:
		g.pointerDown(ev.Cell)
	case EventMove:
		g.pointerMove(ev)
	case EventUp:
		found = g.pointerUp()
	case EventCancel:
		g.idle()
	default:
		return g.outcome(nil), fmt.Errorf("unknown event %q", ev.Kind)
	}
	return g.outcome(found), nil
}

// pointerDown starts a new drag at cell, discarding any unfinished one.
// Presses off the grid are ignored.
func (g *Game) pointerDown(cell int) {
	if !g.Puzzle.Grid.Valid(cell) {
		return
	}
	g.Phase = PhaseSelecting
	g.Start = cell
	g.Selection = []int{cell}
}

// pointerMove re-traces the live selection from the drag origin. A move that
// does not form a straight line keeps the previous selection.
func (g *Game) pointerMove(ev Event) {
	if g.Phase != PhaseSelecting {
		return
	}
	grid := g.Puzzle.Grid
	var line []int
	switch {
	case ev.Coords:
		sr, sc := grid.ToRowCol(g.Start)
		line = grid.TraceCells(sr, sc, ev.Row, ev.Col)
	case grid.Valid(ev.Cell):
		line = grid.Trace(g.Start, ev.Cell)
	}
	if len(line) > 0 {
		g.Selection = line
	}
}

// pointerUp finalizes the drag: the selection is matched against the words
// still in play and then discarded.
func (g *Game) pointerUp() *FoundEntry {
	if g.Phase != PhaseSelecting {
		return nil
	}
	sel := g.Selection
	g.idle()

	w, ok := puzzle.Match(sel, g.Puzzle.Grid, g.Remaining())
	if !ok {
		return nil
	}
	e := FoundEntry{Word: w, Indices: sel}
	g.Found.Add(e)
	return &e
}

func (g *Game) idle() {
	g.Phase = PhaseIdle
	g.Start = -1
	g.Selection = nil
}

// Reveal solves the puzzle and replaces the found words with one placement
// per placeable word. The live selection is left alone.
func (g *Game) Reveal() puzzle.Solution {
	sol := puzzle.SolveAll(g.Puzzle.Grid, g.Puzzle.Words)
	placed := sol.Placed()
	entries := make([]FoundEntry, 0, len(placed))
	for _, p := range placed {
		entries = append(entries, FoundEntry{Word: p.Word, Indices: p.Path})
	}
	g.Found.Replace(entries)
	g.Revealed = true
	return sol
}

// Reset clears found words and any live selection.
func (g *Game) Reset() {
	g.Found.Clear()
	g.Revealed = false
	g.idle()
}

// Remaining lists the words not yet found, in word-list order.
func (g *Game) Remaining() []string {
	return g.Found.Remaining(g.Puzzle.Words)
}

// Selected reports whether cell is part of the live selection.
func (g *Game) Selected(cell int) bool {
	for _, i := range g.Selection {
		if i == cell {
			return true
		}
	}
	return false
}

// state reports "complete" once every word is found, else "playing".
func (g *Game) state() string {
	if g.Found.Len() >= len(g.Puzzle.Words) {
		return "complete"
	}
	return "playing"
}

// Snapshot copies the current state for rendering or encoding.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:        g.ID,
		Puzzle:    g.Puzzle.Name,
		Phase:     g.Phase,
		Selection: append([]int{}, g.Selection...),
		Found:     g.Found.Entries(),
		Remaining: g.Remaining(),
		Total:     len(g.Puzzle.Words),
		Revealed:  g.Revealed,
		Status:    g.state(),
	}
}

func (g *Game) outcome(found *FoundEntry) Outcome {
	return Outcome{Phase: g.Phase, Selection: append([]int{}, g.Selection...), Found: found}
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
