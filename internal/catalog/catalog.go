// internal/catalog/catalog.go
//
// Puzzle library: the fixed grids and word lists the game is played on.
//
// Responsibilities:
//   - Load puzzles from the embedded assets and, optionally, a directory of
//     *.puzzle files (PUZZLE_DIR).
//   - Serve them by name through the Library interface (memory here,
//     SQLite in sqlstore.go).
//
// Initialization behavior (Init):
//   1. Embedded puzzles are always loaded.
//   2. If PUZZLE_DIR is set, its *.puzzle files are added; a file whose name
//      matches an embedded puzzle replaces it.
//   Init runs once (sync.Once).

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/robalobadob/wordsearch/assets"
	"github.com/robalobadob/wordsearch/internal/puzzle"
)

// ErrNotFound is returned for unknown puzzle names.
var ErrNotFound = errors.New("puzzle not found")

// Meta is a lightweight listing entry.
type Meta struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Words int    `json:"words"`
}

// Library serves puzzles by name.
type Library interface {
	List(ctx context.Context) ([]Meta, error)
	Get(ctx context.Context, name string) (*puzzle.Puzzle, error)
}

// Memory is a Library held in a map. It is read-only after construction.
type Memory struct {
	puzzles map[string]*puzzle.Puzzle
}

// NewMemory builds a library from puzzles; later duplicates replace earlier ones.
func NewMemory(ps ...*puzzle.Puzzle) *Memory {
	m := &Memory{puzzles: make(map[string]*puzzle.Puzzle, len(ps))}
	for _, p := range ps {
		m.puzzles[p.Name] = p
	}
	return m
}

// LoadFS parses every *.puzzle file at the root of fsys.
func LoadFS(fsys fs.FS) ([]*puzzle.Puzzle, error) {
	files, err := fs.Glob(fsys, "*.puzzle")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	out := make([]*puzzle.Puzzle, 0, len(files))
	for _, f := range files {
		p, err := loadFile(fsys, f)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func loadFile(fsys fs.FS, name string) (*puzzle.Puzzle, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Parse(f, strings.TrimSuffix(name, ".puzzle"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

func (m *Memory) List(ctx context.Context) ([]Meta, error) {
	out := make([]Meta, 0, len(m.puzzles))
	for _, p := range m.puzzles {
		out = append(out, metaOf(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) Get(ctx context.Context, name string) (*puzzle.Puzzle, error) {
	if p, ok := m.puzzles[name]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

// All returns every puzzle sorted by name.
func (m *Memory) All() []*puzzle.Puzzle {
	out := make([]*puzzle.Puzzle, 0, len(m.puzzles))
	for _, p := range m.puzzles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func metaOf(p *puzzle.Puzzle) Meta {
	return Meta{Name: p.Name, Title: p.Title, Rows: p.Grid.Rows(), Cols: p.Grid.Cols(), Words: len(p.Words)}
}

var (
	initOnce   sync.Once
	builtin    *Memory
	initialErr error
)

// Init loads the embedded puzzles plus PUZZLE_DIR exactly once.
func Init() error {
	initOnce.Do(func() {
		ps, err := LoadFS(assets.Puzzles())
		if err != nil {
			initialErr = fmt.Errorf("catalog: embedded puzzles: %w", err)
			return
		}
		if dir := os.Getenv("PUZZLE_DIR"); dir != "" {
			extra, err := LoadFS(os.DirFS(dir))
			if err != nil {
				initialErr = fmt.Errorf("catalog: %s: %w", dir, err)
				return
			}
			ps = append(ps, extra...)
		}
		if len(ps) == 0 {
			initialErr = errors.New("catalog: no puzzles loaded")
			return
		}
		builtin = NewMemory(ps...)
	})
	return initialErr
}

// Builtin returns the library loaded by Init, or nil if Init failed or has
// not run.
func Builtin() *Memory { return builtin }
