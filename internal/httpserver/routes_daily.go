// internal/httpserver/routes_daily.go
//
// HTTP routes for the puzzle of the day.
//   - GET  /daily      → today's date key and puzzle listing entry
//   - POST /daily/new  → start a game on today's puzzle
//
// The pick is deterministic for date + salt (see internal/daily), so every
// replica serving the same catalog agrees on the puzzle.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/daily"
)

func (s *Server) mountDaily() {
	s.r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDaily)
		r.Post("/new", s.handleDailyNew)
	})
}

type dailyRes struct {
	Date   string       `json:"date"`
	Puzzle catalog.Meta `json:"puzzle"`
}

// today resolves the listing entry of today's puzzle.
func (s *Server) today(r *http.Request) (dailyRes, error) {
	list, err := s.lib.List(r.Context())
	if err != nil {
		return dailyRes{}, err
	}
	if len(list) == 0 {
		return dailyRes{}, catalog.ErrNotFound
	}
	now := s.now()
	i := daily.PuzzleIndex(now, s.cfg.DailySalt, len(list))
	return dailyRes{Date: daily.DateKey(now), Puzzle: list[i]}, nil
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	res, err := s.today(r)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	res, err := s.today(r)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	s.startGame(w, r, res.Puzzle.Name)
}
