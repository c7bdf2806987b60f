// internal/httpserver/routes_game.go
//
// Game endpoints. Each game is a single-player board held in memory:
//   - POST /game/new            → create a game for a puzzle, issue its token
//   - GET  /game/{id}           → current snapshot
//   - POST /game/{id}/pointer   → feed one pointer event (down|move|up|cancel)
//   - POST /game/{id}/reveal    → replace found words with every placement
//   - POST /game/{id}/reset     → clear found words and selection
//
// All /game/{id} routes require the token returned by /game/new, either as a
// bearer token or the path-scoped cookie.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/puzzle"
)

func (s *Server) mountGame() {
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGame)
		r.Get("/", s.handleGetGame)
		r.Post("/pointer", s.handlePointer)
		r.Post("/reveal", s.handleReveal)
		r.Post("/reset", s.handleReset)
	})
}

type newGameReq struct {
	Puzzle string `json:"puzzle"`
}

type newGameRes struct {
	GameID string        `json:"gameId"`
	Token  string        `json:"token"`
	Puzzle puzzleView    `json:"puzzle"`
	State  game.Snapshot `json:"state"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Puzzle == "" {
		writeError(w, http.StatusBadRequest, "puzzle_required")
		return
	}
	s.startGame(w, r, req.Puzzle)
}

// startGame creates a game for the named puzzle and writes the token response.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, name string) {
	p, err := s.lib.Get(r.Context(), name)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	g := game.New(p)
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signGameToken(g.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign game token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setGameCookie(w, g.ID, tok, exp)
	hlog.FromRequest(r).Info().Str("gameId", g.ID).Str("puzzle", p.Name).Msg("game created")
	writeJSON(w, http.StatusCreated, newGameRes{GameID: g.ID, Token: tok, Puzzle: viewOf(p), State: g.Snapshot()})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// pointerReq is one pointer event. Cell addresses a grid cell directly;
// Row/Col may be used instead, and for "move" may point off the board.
type pointerReq struct {
	Action game.EventKind `json:"action"`
	Cell   *int           `json:"cell"`
	Row    *int           `json:"row"`
	Col    *int           `json:"col"`
}

type pointerRes struct {
	Outcome game.Outcome  `json:"outcome"`
	State   game.Snapshot `json:"state"`
}

// event converts the request into a state-machine event for grid.
func (req pointerReq) event(grid *puzzle.Grid) game.Event {
	ev := game.Event{Kind: req.Action, Cell: -1}
	switch {
	case req.Cell != nil:
		ev.Cell = *req.Cell
	case req.Row != nil && req.Col != nil:
		if req.Action == game.EventMove {
			return game.MoveTo(*req.Row, *req.Col)
		}
		if grid.InBounds(*req.Row, *req.Col) {
			ev.Cell = grid.ToIndex(*req.Row, *req.Col)
		}
	}
	return ev
}

func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	var req pointerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var res pointerRes
	var applyErr error
	err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(g *game.Game) error {
		res.Outcome, applyErr = g.Apply(req.event(g.Puzzle.Grid))
		res.State = g.Snapshot()
		return nil
	})
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	if applyErr != nil {
		writeError(w, http.StatusBadRequest, "unknown_action")
		return
	}
	if f := res.Outcome.Found; f != nil {
		hlog.FromRequest(r).Debug().Str("word", f.Word).Ints("cells", f.Indices).Msg("word found")
	}
	writeJSON(w, http.StatusOK, res)
}

type revealRes struct {
	State    game.Snapshot `json:"state"`
	Unplaced []string      `json:"unplaced"`
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	var res revealRes
	err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(g *game.Game) error {
		sol := g.Reveal()
		res.Unplaced = nonNil(sol.Unplaced())
		res.State = g.Snapshot()
		return nil
	})
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	if len(res.Unplaced) > 0 {
		hlog.FromRequest(r).Warn().Strs("unplaced", res.Unplaced).Msg("puzzle only partially solvable")
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(g *game.Game) error {
		g.Reset()
		snap = g.Snapshot()
		return nil
	})
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
