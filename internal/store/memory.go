// internal/store/memory.go
//
// In-memory implementation of Store.
// Used when no results database is configured, and in tests.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sort"
	"sync"
)

// memory is a slice-backed Store implementation.
type memory struct {
	mu      sync.RWMutex // guards results and seen
	results []Result
	seen    map[string]struct{} // SessionIDs already saved
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{seen: make(map[string]struct{})}
}

// Save appends r unless its session was already saved.
func (m *memory) Save(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seen[r.SessionID]; ok {
		return nil
	}
	m.seen[r.SessionID] = struct{}{}
	m.results = append(m.results, r)
	return nil
}

// Recent returns the newest results first.
func (m *memory) Recent(ctx context.Context, limit int) ([]Result, error) {
	m.mu.RLock()
	out := append([]Result(nil), m.results...)
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinishedAt.After(out[j].FinishedAt)
	})
	return truncate(out, normLimit(limit)), nil
}

// Leaderboard ranks the results of one daily date.
func (m *memory) Leaderboard(ctx context.Context, date string, limit int) ([]Result, error) {
	m.mu.RLock()
	var out []Result
	for _, r := range m.results {
		if date != "" && r.Date == date {
			out = append(out, r)
		}
	}
	m.mu.RUnlock()

	rank(out)
	return truncate(out, normLimit(limit)), nil
}

func (m *memory) Close() error { return nil }

func truncate(rs []Result, n int) []Result {
	if len(rs) > n {
		return rs[:n]
	}
	return rs
}
