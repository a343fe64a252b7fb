package console

import (
	"context"
	"errors"
	"io"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

func (h *Handler) playerMenu(ctx context.Context, name string) error {
	return h.runMenu(ctx, msgPlayerMenu, []menuItem{
		h.withErrorHandling(func(ctx context.Context) error { return h.startQuiz(ctx, name) }),
		h.withErrorHandling(h.topScores),
		nil,
	})
}

func (h *Handler) startQuiz(ctx context.Context, name string) error {
	session, err := h.quizService.StartSession(ctx, name)
	if err != nil {
		return err
	}

	result, err := h.quizService.Play(ctx, session, &consoleAnswers{h: h})
	if err != nil {
		if errors.Is(err, io.EOF) {
			h.out.println("")
			h.out.printError(msgQuizAbandoned)
		}
		return err
	}

	h.out.line()
	h.out.printScore(result)
	return nil
}

func (h *Handler) topScores(ctx context.Context) error {
	entries, err := h.quizService.TopScores(ctx, h.scoreLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		h.out.println(msgNoScoresYet)
		return nil
	}

	h.out.printScores(entries)
	return nil
}

// consoleAnswers presents each question on the console and reads the answer.
type consoleAnswers struct {
	h *Handler
}

func (a *consoleAnswers) NextAnswer(_ context.Context, _ int, q entities.Question) (int, error) {
	a.h.out.line()
	a.h.out.printQuestion(q)
	return a.h.readInt(msgEnterAnswer)
}
