// main.go
//
// Entry point of the word-search HTTP server.
// Startup order:
//   - .env (optional) and log level
//   - puzzle catalog (embedded puzzles + PUZZLE_DIR)
//   - optional SQLite-backed catalog when DB_PATH is set
//   - in-memory game store + idle-game sweeper
//   - HTTP server on PORT

package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/httpserver"
	"github.com/robalobadob/wordsearch/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := catalog.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load puzzles")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lib, closeLib, err := openLibrary(ctx, os.Getenv("DB_PATH"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open puzzle library")
	}
	defer closeLib()

	mem := store.NewMemoryStore()
	ttl := time.Duration(getEnvInt("GAME_TTL_MINUTES", 120)) * time.Minute
	go store.RunSweeper(ctx, mem, ttl, time.Minute)

	srv := httpserver.New(mem, lib, httpserver.ConfigFromEnv())
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Dur("gameTTL", ttl).Msg("starting wordsearch server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil && n > 0 {
		return n
	}
	return def
}
