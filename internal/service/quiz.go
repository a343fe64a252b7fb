package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

var ErrNoQuestionsAvailable = errors.New("no questions available")

// QuizService runs the admin and player flows on top of the question store.
type QuizService struct {
	logger       *zap.Logger
	questionRepo QuestionRepository
	scoreRepo    ScoreRepository
	loadBank     BankLoader
	evaluator    *Evaluator
}

func NewQuizService(
	logger *zap.Logger,
	questionRepo QuestionRepository,
	scoreRepo ScoreRepository,
	loadBank BankLoader,
) *QuizService {
	return &QuizService{
		logger:       logger,
		questionRepo: questionRepo,
		scoreRepo:    scoreRepo,
		loadBank:     loadBank,
		evaluator:    NewEvaluator(),
	}
}

// AddQuestion appends q to the question store as written by the admin.
func (s *QuizService) AddQuestion(ctx context.Context, q entities.Question) error {
	if err := s.questionRepo.Append(ctx, q); err != nil {
		return fmt.Errorf("add question: %w", err)
	}

	s.logger.Info("question added",
		zap.String("prompt", q.Prompt),
		zap.Int("correct_index", q.CorrectIndex),
	)

	return nil
}

// ImportQuestions appends every question of a bank file, in bank order.
// Nothing is appended when the bank file is invalid. A store failure stops
// the import part way: the questions before it stay appended and their
// number is returned with the error.
func (s *QuizService) ImportQuestions(ctx context.Context, path string) (int, error) {
	questions, err := s.loadBank(path)
	if err != nil {
		return 0, fmt.Errorf("load question bank: %w", err)
	}

	for i, q := range questions {
		if err := s.questionRepo.Append(ctx, q); err != nil {
			return i, fmt.Errorf("import question %d: %w", i+1, err)
		}
	}

	s.logger.Info("questions imported",
		zap.String("path", path),
		zap.Int("count", len(questions)),
	)

	return len(questions), nil
}

// ListQuestions returns every question in the store, in store order.
func (s *QuizService) ListQuestions(ctx context.Context) ([]entities.Question, error) {
	questions, err := s.questionRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// StartSession loads the store and opens a new quiz session for the player.
func (s *QuizService) StartSession(ctx context.Context, playerName string) (*entities.QuizSession, error) {
	questions, err := s.questionRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	session := entities.NewQuizSession(playerName, questions)

	s.logger.Debug("quiz session started",
		zap.String("session_id", session.ID),
		zap.String("player", playerName),
		zap.Int("total_questions", session.TotalQuestions),
	)

	return session, nil
}

// Play asks every question of session through source and returns the score.
//
// A finished session is recorded in the score history. If source fails the
// session is abandoned, nothing is recorded and the partial result is
// returned with the error.
func (s *QuizService) Play(
	ctx context.Context,
	session *entities.QuizSession,
	source AnswerSource,
) (entities.QuizResult, error) {
	if err := s.evaluator.Run(ctx, session, source); err != nil {
		session.Abandon()
		s.logger.Info("quiz session abandoned",
			zap.String("session_id", session.ID),
			zap.Int("answered", session.Answered()),
			zap.Error(err),
		)
		return session.Result(), err
	}

	session.Complete()
	result := session.Result()

	if err := s.scoreRepo.Save(ctx, entities.NewScoreEntry(session)); err != nil {
		s.logger.Error("failed to record score",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("quiz session completed",
		zap.String("session_id", session.ID),
		zap.String("player", session.PlayerName),
		zap.Int("correct", result.CorrectCount),
		zap.Int("total", result.TotalCount),
	)

	return result, nil
}

// TopScores returns the best recorded results, best first.
func (s *QuizService) TopScores(ctx context.Context, limit int) ([]*entities.ScoreEntry, error) {
	entries, err := s.scoreRepo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	return entries, nil
}
