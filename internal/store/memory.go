// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds live word-search games for the HTTP layer; play state is never
// persisted and is lost when the process restarts.
//
// Characteristics:
//   - Games keyed by ID in a map, guarded by an RWMutex.
//   - Update runs a mutation under the write lock, so concurrent requests
//     against the same game are applied one at a time.
//   - Each access stamps the entry; Sweep evicts games idle past a cutoff.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordsearch/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the session interface for games.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get returns a snapshot of a game by ID.
	Get(ctx context.Context, id string) (game.Snapshot, error)

	// Update runs fn against the stored game while holding exclusive access.
	Update(ctx context.Context, id string, fn func(g *game.Game) error) error

	// Delete drops a game. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Sweep evicts games not touched since cutoff and returns how many went.
	Sweep(ctx context.Context, cutoff time.Time) int

	// Len reports the number of live games.
	Len() int
}

type entry struct {
	g        *game.Game
	lastSeen time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards games
	games map[string]*entry // keyed by Game.ID
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = &entry{g: g, lastSeen: m.now()}
	return nil
}

// Get copies the game state under the lock so callers never share it.
func (m *memory) Get(ctx context.Context, id string) (game.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return game.Snapshot{}, ErrNotFound
	}
	e.lastSeen = m.now()
	return e.g.Snapshot(), nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(g *game.Game) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	e.lastSeen = m.now()
	return fn(e.g)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.games {
		if e.lastSeen.Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
