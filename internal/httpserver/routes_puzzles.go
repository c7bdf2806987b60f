// internal/httpserver/routes_puzzles.go
//
// Stateless puzzle endpoints:
//   - GET  /puzzles                 → catalog listing
//   - GET  /puzzles/{name}          → grid + word list
//   - GET  /puzzles/{name}/solution → reveal-all placements
//   - POST /puzzles/{name}/trace    → straight-line cells between two points
//   - POST /puzzles/{name}/match    → word spelled by a selection, if any
//
// None of these touch game state; a client may run the whole puzzle locally
// against them.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/puzzle"
)

func (s *Server) mountPuzzles() {
	s.r.Route("/puzzles", func(r chi.Router) {
		r.Get("/", s.handleListPuzzles)
		r.Get("/{name}", s.handleGetPuzzle)
		r.Get("/{name}/solution", s.handleSolution)
		r.Post("/{name}/trace", s.handleTrace)
		r.Post("/{name}/match", s.handleMatch)
	})
}

// puzzleView is the JSON shape of a puzzle.
type puzzleView struct {
	Name  string   `json:"name"`
	Title string   `json:"title,omitempty"`
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Grid  []string `json:"grid"`
	Words []string `json:"words"`
}

func viewOf(p *puzzle.Puzzle) puzzleView {
	return puzzleView{
		Name:  p.Name,
		Title: p.Title,
		Rows:  p.Grid.Rows(),
		Cols:  p.Grid.Cols(),
		Grid:  p.Grid.Lines(),
		Words: p.Words,
	}
}

// loadPuzzle resolves {name}; it writes the error response and returns nil on failure.
func (s *Server) loadPuzzle(w http.ResponseWriter, r *http.Request) *puzzle.Puzzle {
	p, err := s.lib.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeLookupError(w, r, err)
		return nil
	}
	return p
}

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	list, err := s.lib.List(r.Context())
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	if p := s.loadPuzzle(w, r); p != nil {
		writeJSON(w, http.StatusOK, viewOf(p))
	}
}

type solutionRes struct {
	Puzzle     string             `json:"puzzle"`
	Placements []puzzle.Placement `json:"placements"`
	Unplaced   []string           `json:"unplaced"`
}

func (s *Server) handleSolution(w http.ResponseWriter, r *http.Request) {
	p := s.loadPuzzle(w, r)
	if p == nil {
		return
	}
	sol := puzzle.SolveAll(p.Grid, p.Words)
	writeJSON(w, http.StatusOK, solutionRes{Puzzle: p.Name, Placements: sol, Unplaced: nonNil(sol.Unplaced())})
}

// point is a (row, col) pair; either may fall off the grid for trace ends.
type point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// traceReq accepts either flat cell indices or coordinates.
type traceReq struct {
	Start *int   `json:"start"`
	End   *int   `json:"end"`
	From  *point `json:"from"`
	To    *point `json:"to"`
}

type cellsRes struct {
	Cells []int `json:"cells"`
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	p := s.loadPuzzle(w, r)
	if p == nil {
		return
	}
	var req traceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g := p.Grid
	switch {
	case req.From != nil && req.To != nil:
		writeJSON(w, http.StatusOK, cellsRes{Cells: g.TraceCells(req.From.Row, req.From.Col, req.To.Row, req.To.Col)})
	case req.Start != nil && req.End != nil:
		if !g.Valid(*req.Start) || !g.Valid(*req.End) {
			writeError(w, http.StatusBadRequest, "cell_out_of_range")
			return
		}
		writeJSON(w, http.StatusOK, cellsRes{Cells: g.Trace(*req.Start, *req.End)})
	default:
		writeError(w, http.StatusBadRequest, "missing_endpoints")
	}
}

type matchReq struct {
	Cells []int    `json:"cells"`
	Found []string `json:"found"` // words already found; never matched again
}

type matchRes struct {
	Word    string `json:"word,omitempty"`
	Matched bool   `json:"matched"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	p := s.loadPuzzle(w, r)
	if p == nil {
		return
	}
	var req matchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	found := game.NewRegistry()
	for _, f := range req.Found {
		found.Add(game.FoundEntry{Word: strings.ToUpper(strings.TrimSpace(f))})
	}
	word, ok := puzzle.Match(req.Cells, p.Grid, found.Remaining(p.Words))
	writeJSON(w, http.StatusOK, matchRes{Word: word, Matched: ok})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
