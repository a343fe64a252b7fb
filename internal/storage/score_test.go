package storage

import (
	"context"
	"testing"
	"time"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

func entry(id string, correct, total int, at time.Time) *entities.ScoreEntry {
	return &entities.ScoreEntry{
		SessionID:   id,
		PlayerName:  id,
		Result:      entities.QuizResult{CorrectCount: correct, TotalCount: total},
		CompletedAt: at,
	}
}

// TestScoreStorageTopOrdering verifies the leaderboard order and limit.
func TestScoreStorageTopOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewScoreStorage()
	now := time.Now()

	for _, e := range []*entities.ScoreEntry{
		entry("half", 1, 2, now),
		entry("perfect", 3, 3, now),
		entry("zero", 0, 5, now),
		entry("bigger-half", 2, 4, now),
	} {
		if err := s.Save(ctx, e); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	top, err := s.Top(ctx, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	want := []string{"perfect", "bigger-half", "half"}
	if len(top) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(top))
	}
	for i, id := range want {
		if top[i].SessionID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, top[i].SessionID)
		}
	}
}

// TestScoreStorageSaveKeepsFirst verifies a session is recorded once.
func TestScoreStorageSaveKeepsFirst(t *testing.T) {
	ctx := context.Background()
	s := NewScoreStorage()
	now := time.Now()

	_ = s.Save(ctx, entry("s1", 1, 2, now))
	_ = s.Save(ctx, entry("s1", 2, 2, now))

	top, err := s.Top(ctx, 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 1 || top[0].Result.CorrectCount != 1 {
		t.Fatalf("expected the first entry only, got %+v", top)
	}
}

// TestScoreStorageEmpty verifies an empty leaderboard.
func TestScoreStorageEmpty(t *testing.T) {
	top, err := NewScoreStorage().Top(context.Background(), 5)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 0 {
		t.Fatalf("expected no entries, got %+v", top)
	}
}
