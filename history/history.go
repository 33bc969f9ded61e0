// Package history keeps the results of finished matches.
package history

import (
	"context"
	"slices"
	"sync"
	"time"
)

// TeamResult is one team's final standing.
type TeamResult struct {
	Name         string   `json:"name"`
	Participants []string `json:"participants"`
	Score        int      `json:"score"`
	Guessed      []string `json:"guessed"`
}

// Result is a finished match.
type Result struct {
	GameID     string       `json:"game_id"`
	FinishedAt time.Time    `json:"finished_at"`
	Draw       bool         `json:"draw"`
	Winner     string       `json:"winner,omitempty"`
	Teams      []TeamResult `json:"teams"`
}

type Store interface {
	Record(ctx context.Context, r Result) error
	// Recent returns up to limit results, newest first.
	Recent(ctx context.Context, limit int) ([]Result, error)
	Close() error
}

// MemoryStore keeps the most recent results in a fixed-size ring.
type MemoryStore struct {
	mu      sync.Mutex
	results []Result
	next    int
	full    bool
}

func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		results: make([]Result, max(capacity, 1)),
	}
}

func (m *MemoryStore) Record(_ context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results[m.next] = r
	m.next = (m.next + 1) % len(m.results)
	if m.next == 0 {
		m.full = true
	}

	return nil
}

func (m *MemoryStore) Recent(_ context.Context, limit int) ([]Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.next
	if m.full {
		n = len(m.results)
	}
	if limit > 0 {
		n = min(n, limit)
	}

	out := make([]Result, 0, n)
	for i := 1; i <= n; i++ {
		idx := (m.next - i + len(m.results)) % len(m.results)
		out = append(out, clone(m.results[idx]))
	}

	return out, nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func clone(r Result) Result {
	r.Teams = slices.Clone(r.Teams)
	for i := range r.Teams {
		r.Teams[i].Participants = slices.Clone(r.Teams[i].Participants)
		r.Teams[i].Guessed = slices.Clone(r.Teams[i].Guessed)
	}

	return r
}
