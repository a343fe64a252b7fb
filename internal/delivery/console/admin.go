package console

import (
	"context"
	"strings"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

func (h *Handler) adminMenu(ctx context.Context) error {
	return h.runMenu(ctx, msgAdminMenu, []menuItem{
		h.withErrorHandling(h.addQuestion),
		h.withErrorHandling(h.listQuestions),
		h.withErrorHandling(h.importQuestions),
		nil,
	})
}

// addQuestion reads a question from the admin and appends it to the store.
// The correct option number is stored exactly as typed.
func (h *Handler) addQuestion(ctx context.Context) error {
	h.out.print(msgEnterQuestion)
	prompt, err := h.in.readLine()
	if err != nil {
		return err
	}

	var options [entities.OptionCount]string
	for i := range options {
		h.out.printf(msgEnterOption, i+1)
		if options[i], err = h.in.readLine(); err != nil {
			return err
		}
	}

	correct, err := h.readInt(msgEnterCorrect)
	if err != nil {
		return err
	}

	if err := h.quizService.AddQuestion(ctx, entities.NewQuestion(prompt, options, correct)); err != nil {
		return err
	}

	h.out.println(msgQuestionAdded)
	return nil
}

func (h *Handler) listQuestions(ctx context.Context) error {
	questions, err := h.quizService.ListQuestions(ctx)
	if err != nil {
		return err
	}

	if len(questions) == 0 {
		h.out.println(msgQuestionsEmpty)
		return nil
	}

	h.out.printQuestionList(questions)
	return nil
}

func (h *Handler) importQuestions(ctx context.Context) error {
	h.out.print(msgEnterBankPath)
	path, err := h.in.readLine()
	if err != nil {
		return err
	}

	n, err := h.quizService.ImportQuestions(ctx, strings.TrimSpace(path))
	if err != nil {
		if n > 0 {
			h.out.printf(msgPartialImport+"\n", n)
		}
		return err
	}

	h.out.printf(msgImported+"\n", n)
	return nil
}
