// internal/game/types.go
//
// Core type definitions for a word-search play session.
// Defines:
//   - Phase: selection state machine states (idle/selecting).
//   - Event: pointer input fed to the state machine.
//   - Game: state for a single session (live selection + found words).

package game

import "github.com/robalobadob/wordsearch/internal/puzzle"

// Phase is the selection state of a Game.
//   - "idle":      no pointer is down.
//   - "selecting": a drag is in progress; Selection holds the live line.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseSelecting Phase = "selecting"
)

// EventKind names a pointer transition.
type EventKind string

const (
	EventDown   EventKind = "down"
	EventMove   EventKind = "move"
	EventUp     EventKind = "up"
	EventCancel EventKind = "cancel"
)

// Event is one pointer/touch input. Cell is a flat cell index; when Coords is
// set, Row/Col are used instead so a drag may end off the board.
type Event struct {
	Kind   EventKind
	Cell   int
	Row    int
	Col    int
	Coords bool
}

func Down(cell int) Event { return Event{Kind: EventDown, Cell: cell} }
func Move(cell int) Event { return Event{Kind: EventMove, Cell: cell} }
func MoveTo(row, col int) Event { return Event{Kind: EventMove, Row: row, Col: col, Coords: true} }
func Up() Event { return Event{Kind: EventUp} }
func Cancel() Event { return Event{Kind: EventCancel} }

// Outcome reports what an event changed.
type Outcome struct {
	Phase     Phase       `json:"phase"`
	Selection []int       `json:"selection"`
	Found     *FoundEntry `json:"found,omitempty"` // set when a release matched a word
}

// Game holds the state of a single word-search session.
type Game struct {
	ID        string         // Unique game identifier (random hex string).
	Puzzle    *puzzle.Puzzle // Grid + word list; never mutated.
	Phase     Phase          // Current selection state.
	Start     int            // Cell where the live drag began (valid while selecting).
	Selection []int          // Live selection; empty while idle.
	Found     *Registry      // Words found so far.
	Revealed  bool           // True once reveal-all replaced the registry.
}

// Snapshot is a read-only view of a Game for transports and renderers.
type Snapshot struct {
	ID        string       `json:"id"`
	Puzzle    string       `json:"puzzle"`
	Phase     Phase        `json:"phase"`
	Selection []int        `json:"selection"`
	Found     []FoundEntry `json:"found"`
	Remaining []string     `json:"remaining"`
	Total     int          `json:"total"`
	Revealed  bool         `json:"revealed"`
	Status    string       `json:"status"` // "playing" | "complete"
}
