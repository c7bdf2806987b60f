package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordsearch/internal/puzzle"
)

// SQLStore is a Library backed by the puzzles table. It holds definitions
// only; games are never written here.
type SQLStore struct{ db *sql.DB }

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

const upsertPuzzle = `
        INSERT INTO puzzles (name, title, n_rows, n_cols, grid, words)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(name) DO UPDATE SET
            title=excluded.title, n_rows=excluded.n_rows, n_cols=excluded.n_cols,
            grid=excluded.grid, words=excluded.words`

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsert(ctx context.Context, ex execer, p *puzzle.Puzzle) error {
	_, err := ex.ExecContext(ctx, upsertPuzzle,
		p.Name, p.Title, p.Grid.Rows(), p.Grid.Cols(),
		strings.Join(p.Grid.Lines(), "\n"), strings.Join(p.Words, "\n"),
	)
	return err
}

// Put inserts or replaces a puzzle definition.
func (s *SQLStore) Put(ctx context.Context, p *puzzle.Puzzle) error {
	return upsert(ctx, s.db, p)
}

// Seed copies every puzzle of src into the table in one transaction.
func (s *SQLStore) Seed(ctx context.Context, src []*puzzle.Puzzle) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, p := range src {
		if err := upsert(ctx, tx, p); err != nil {
			return fmt.Errorf("seed %s: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

func (s *SQLStore) List(ctx context.Context) ([]Meta, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT name, title, n_rows, n_cols, words
        FROM puzzles
        ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Meta, 0)
	for rows.Next() {
		var m Meta
		var words string
		if err := rows.Scan(&m.Name, &m.Title, &m.Rows, &m.Cols, &words); err != nil {
			return nil, err
		}
		m.Words = len(splitLines(words))
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, name string) (*puzzle.Puzzle, error) {
	var title, grid, words string
	err := s.db.QueryRowContext(ctx,
		`SELECT title, grid, words FROM puzzles WHERE name=?`, name,
	).Scan(&title, &grid, &words)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return puzzle.New(name, title, splitLines(grid), splitLines(words))
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
