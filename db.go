// db.go
//
// Puzzle library selection for the server.
//   - No DB_PATH: serve the built-in catalog straight from memory.
//   - DB_PATH set: open SQLite, apply embedded migrations, seed the built-in
//     puzzles (upsert), and serve from the database so puzzles added there
//     by other tools are listed too.

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/assets"
	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/db"
)

// openLibrary returns the catalog to serve and a func releasing its resources.
func openLibrary(ctx context.Context, dsn string) (catalog.Library, func(), error) {
	builtin := catalog.Builtin()
	if dsn == "" {
		log.Info().Int("puzzles", len(builtin.All())).Msg("serving built-in catalog")
		return builtin, func() {}, nil
	}

	conn, err := db.Open(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	if err := db.Migrate(conn, assets.Migrations()); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	lib := catalog.NewSQLStore(conn)
	if err := lib.Seed(ctx, builtin.All()); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("seed: %w", err)
	}
	log.Info().Str("db", dsn).Int("seeded", len(builtin.All())).Msg("serving SQLite catalog")
	return lib, func() { _ = conn.Close() }, nil
}
