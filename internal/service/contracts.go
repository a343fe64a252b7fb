package service

import (
	"context"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

type QuestionRepository interface {
	Append(ctx context.Context, q entities.Question) error
	LoadAll(ctx context.Context) ([]entities.Question, error)
}

type ScoreRepository interface {
	Save(ctx context.Context, entry *entities.ScoreEntry) error
	Top(ctx context.Context, limit int) ([]*entities.ScoreEntry, error)
}

// BankLoader reads questions from a question bank file.
type BankLoader func(path string) ([]entities.Question, error)
