// internal/store/memory.go
//
// In-memory implementation of the Store interface for finished rounds.
// This is a lightweight record of play within one process, used for
// end-of-session stats; durability is deliberately out of scope.
//
// Characteristics:
//   - Stores Result values keyed by round ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.
//   - Errors are returned for missing round IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"
)

// Result is the frozen outcome of one finished round.
type Result struct {
	ID      string   // session/round identifier
	Date    string   // YYYY-MM-DD the round was played
	Words   []string // found words, submission order
	Score   int      // total round score
	Missed  int      // solver words the player did not find
	Seconds int      // round length
}

// Store records finished rounds.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a round result.
	Save(ctx context.Context, r Result) error

	// Get retrieves a result by round ID.
	// Returns an error if the round is not found.
	Get(ctx context.Context, id string) (Result, error)

	// List returns every recorded result, in insertion order.
	List(ctx context.Context) ([]Result, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards results and order
	results map[string]Result // keyed by Result.ID
	order   []string          // IDs in insertion order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]Result)}
}

// Save adds or updates the result in the map.
func (m *memory) Save(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.results[r.ID] = r
	return nil
}

// Get looks up a result by round ID.
func (m *memory) Get(ctx context.Context, id string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[id]; ok {
		return r, nil
	}
	return Result{}, errors.New("not found")
}

// List returns all results in the order they were first saved.
func (m *memory) List(ctx context.Context) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Result, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.results[id])
	}
	return out, nil
}
