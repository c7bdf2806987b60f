package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	letterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	foundStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	selectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Underline(true).Bold(true)
	doneWordStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle    = lipgloss.NewStyle().PaddingLeft(4)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	p := m.g.Puzzle
	title := p.Title
	if title == "" {
		title = p.Name
	}
	found, total := m.g.Found.Len(), len(p.Words)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  (%d/%d)", title, found, total)))
	b.WriteString("\n\n")
	board := lipgloss.JoinHorizontal(lipgloss.Top, m.board(), panelStyle.Render(m.wordList()))
	b.WriteString(board)
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("drag/space select · arrows move · r reveal · x reset · esc cancel · q quit"))
	return b.String()
}

// board renders the letter grid, one line per row.
func (m Model) board() string {
	grid := m.g.Puzzle.Grid
	lines := make([]string, grid.Rows())
	for r := 0; r < grid.Rows(); r++ {
		var line strings.Builder
		for c := 0; c < grid.Cols(); c++ {
			i := grid.ToIndex(r, c)
			line.WriteString(m.cellStyle(i, r, c).Render(" " + string(grid.Letter(i)) + " "))
		}
		lines[r] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (m Model) cellStyle(i, r, c int) lipgloss.Style {
	st := letterStyle
	switch {
	case m.g.Selected(i):
		st = selectStyle
	case m.g.Found.Covers(i):
		st = foundStyle
	}
	if r == m.curRow && c == m.curCol {
		st = st.Copy().Inherit(cursorStyle)
	}
	return st
}

// wordList renders the words in list order, found ones struck through.
func (m Model) wordList() string {
	words := m.g.Puzzle.Words
	lines := make([]string, len(words))
	for k, w := range words {
		if m.g.Found.Has(w) {
			lines[k] = doneWordStyle.Render(w)
		} else {
			lines[k] = wordStyle.Render(w)
		}
	}
	return strings.Join(lines, "\n")
}
