// Command wordsearch-tui plays a catalog puzzle in the terminal.
//
//	wordsearch-tui [-puzzle name] [-list]
//
// Logs go to $WORDSEARCH_LOG (default wordsearch-tui.log); the terminal
// belongs to the UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/daily"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/tui"
)

func main() {
	_ = godotenv.Load()
	name := flag.String("puzzle", "", "puzzle to play (default: puzzle of the day)")
	list := flag.Bool("list", false, "list puzzles and exit")
	flag.Parse()

	closeLog := setupLog(getEnv("WORDSEARCH_LOG", defaultLogPath))
	defer closeLog()

	if err := catalog.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "load puzzles:", err)
		os.Exit(1)
	}
	lib := catalog.Builtin()
	ctx := context.Background()

	metas, err := lib.List(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "list puzzles:", err)
		os.Exit(1)
	}
	if *list {
		for _, m := range metas {
			fmt.Printf("%-20s %2dx%-2d %2d words  %s\n", m.Name, m.Rows, m.Cols, m.Words, m.Title)
		}
		return
	}
	if *name == "" {
		*name = todaysPuzzle(time.Now(), metas)
	}

	p, err := lib.Get(ctx, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "puzzle %q: %v\n", *name, err)
		os.Exit(1)
	}
	log.Info().Str("puzzle", p.Name).Msg("starting")

	prog := tea.NewProgram(
		tui.New(game.New(p)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := prog.Run()
	if err != nil {
		log.Error().Err(err).Msg("tui exited")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if m, ok := final.(tui.Model); ok {
		g := m.Game()
		fmt.Printf("%s: %d/%d words found\n", p.Name, g.Found.Len(), len(p.Words))
	}
}

const defaultLogPath = "wordsearch-tui.log"

// todaysPuzzle picks the same puzzle of the day as the server's GET /daily.
func todaysPuzzle(now time.Time, metas []catalog.Meta) string {
	names := make([]string, len(metas))
	for i, m := range metas {
		names[i] = m.Name
	}
	return daily.Pick(now, daily.SaltFromEnv(), names)
}

// setupLog routes zerolog to path, or discards it when path is "-".
func setupLog(path string) func() {
	if path == "-" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log:", err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
