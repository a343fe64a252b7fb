package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

var ErrNoMoreAnswers = errors.New("no more answers")

// AnswerSource supplies the player's answer for each question in turn.
// num is the 1-based position of q in the quiz. Showing the question to the
// player, if there is a player, is up to the source.
type AnswerSource interface {
	NextAnswer(ctx context.Context, num int, q entities.Question) (int, error)
}

// SliceAnswers is an AnswerSource that hands out answers in order.
type SliceAnswers []int

// NextAnswer returns the answer for question num.
func (a SliceAnswers) NextAnswer(_ context.Context, num int, _ entities.Question) (int, error) {
	if num < 1 || num > len(a) {
		return 0, ErrNoMoreAnswers
	}
	return a[num-1], nil
}

// Evaluator scores a player's answers against a list of questions.
// It keeps no state between calls and does no I/O of its own.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate asks source for one answer per question, in order, and counts the
// correct ones. TotalCount is always len(questions).
//
// If the source fails or ctx is cancelled, evaluation stops and the tally so
// far is returned together with the error.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	questions []entities.Question,
	source AnswerSource,
) (entities.QuizResult, error) {
	session := entities.NewQuizSession("", questions)
	err := e.Run(ctx, session, source)
	return session.Result(), err
}

// Run plays session to the end, recording each answer on the session.
func (e *Evaluator) Run(ctx context.Context, session *entities.QuizSession, source AnswerSource) error {
	for !session.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		num := session.CurrentQuestionNum
		q := session.Questions[num-1]

		answer, err := source.NextAnswer(ctx, num, q)
		if err != nil {
			return err
		}

		session.Record(q.CheckAnswer(answer))
	}

	return nil
}
