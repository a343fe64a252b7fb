package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

// ScoreStorage keeps finished quiz results in memory.
// It is used when no score database is configured; entries are lost on exit.
type ScoreStorage struct {
	mu      sync.RWMutex
	entries map[string]*entities.ScoreEntry
}

// NewScoreStorage creates a new ScoreStorage.
func NewScoreStorage() *ScoreStorage {
	return &ScoreStorage{
		entries: make(map[string]*entities.ScoreEntry),
	}
}

// Save stores an entry. Saving the same session twice keeps the first entry.
func (s *ScoreStorage) Save(_ context.Context, entry *entities.ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entry.SessionID]; !ok {
		s.entries[entry.SessionID] = entry
	}
	return nil
}

// Top returns up to limit best scores, best first.
func (s *ScoreStorage) Top(_ context.Context, limit int) ([]*entities.ScoreEntry, error) {
	s.mu.RLock()
	sorted := make([]*entities.ScoreEntry, 0, len(s.entries))
	for _, e := range s.entries {
		sorted = append(sorted, e)
	}
	s.mu.RUnlock()

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Better(sorted[j])
	})

	if limit >= 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted, nil
}
