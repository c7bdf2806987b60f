// Package tui is a terminal front end for a single word-search game.
//
// The board is drawn three terminal columns per cell below a one-line title.
// Mouse drags feed the game's pointer state machine directly; the keyboard
// offers the same through a cursor (arrows/hjkl to move, space to start and
// finish a selection).
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/game"
)

const (
	cellWidth  = 3 // " X "
	headerRows = 2 // title + blank line
)

// Model is the bubbletea model wrapping one game.
type Model struct {
	g        *game.Game
	curRow   int
	curCol   int
	status   string
	width    int
	height   int
	quitting bool
}

// New returns a Model playing g.
func New(g *game.Game) Model {
	return Model{g: g, status: "drag across a word, or use space to mark its ends"}
}

// Game exposes the wrapped game.
func (m Model) Game() *game.Game { return m.g }

func (m Model) Init() tea.Cmd { return nil }

// cellAt maps a terminal position to board coordinates. The result may lie
// outside the board.
func cellAt(x, y int) (row, col int) {
	return y - headerRows, x / cellWidth
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m.mouse(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.apply(game.Cancel())
		case "r":
			sol := m.g.Reveal()
			m.status = "revealed"
			if u := sol.Unplaced(); len(u) > 0 {
				log.Warn().Strs("unplaced", u).Msg("puzzle only partially solvable")
				m.status = "revealed; not on the board: " + strings.Join(u, ", ")
			}
		case "x":
			m.g.Reset()
			m.status = "board reset"
		case " ", "enter":
			if m.g.Phase == game.PhaseIdle {
				m.apply(game.Down(m.g.Puzzle.Grid.ToIndex(m.curRow, m.curCol)))
			} else {
				m.apply(game.Up())
			}
		case "up", "k":
			m.moveCursor(-1, 0)
		case "down", "j":
			m.moveCursor(1, 0)
		case "left", "h":
			m.moveCursor(0, -1)
		case "right", "l":
			m.moveCursor(0, 1)
		}
	}
	return m, nil
}

func (m Model) mouse(msg tea.MouseMsg) Model {
	row, col := cellAt(msg.X, msg.Y)
	grid := m.g.Puzzle.Grid
	switch msg.Type {
	case tea.MouseLeft:
		if m.g.Phase == game.PhaseSelecting {
			m.apply(game.MoveTo(row, col))
			return m
		}
		if grid.InBounds(row, col) {
			m.curRow, m.curCol = row, col
			m.apply(game.Down(grid.ToIndex(row, col)))
		}
	case tea.MouseMotion:
		m.apply(game.MoveTo(row, col))
	case tea.MouseRelease:
		m.apply(game.Up())
	}
	return m
}

func (m *Model) moveCursor(dr, dc int) {
	grid := m.g.Puzzle.Grid
	r, c := m.curRow+dr, m.curCol+dc
	if !grid.InBounds(r, c) {
		return
	}
	m.curRow, m.curCol = r, c
	m.apply(game.Move(grid.ToIndex(r, c)))
}

// apply feeds ev to the game and updates the status line.
func (m *Model) apply(ev game.Event) {
	wasSelecting := m.g.Phase == game.PhaseSelecting
	out, err := m.g.Apply(ev)
	if err != nil {
		log.Error().Err(err).Msg("apply")
		return
	}
	switch {
	case out.Found != nil:
		log.Debug().Str("word", out.Found.Word).Ints("cells", out.Found.Indices).Msg("word found")
		m.status = "found " + out.Found.Word
		if len(m.g.Remaining()) == 0 {
			m.status = "all words found!"
		}
	case ev.Kind == game.EventUp && wasSelecting:
		m.status = "no word there"
	}
}
