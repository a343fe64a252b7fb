package console

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-manager/internal/repository"
	"github.com/aliskhannn/quiz-manager/internal/service"
)

// withErrorHandling turns service failures into console messages so the
// menu keeps running. End of input and cancellation are passed through.
func (h *Handler) withErrorHandling(fn menuItem) menuItem {
	return func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return err
		}

		h.logger.Error("handle error", zap.Error(err))
		h.out.printError(errorMessage(err))

		var bankErr *repository.BankError
		if errors.As(err, &bankErr) {
			for _, issue := range bankErr.Issues {
				h.out.printf("  %s: %s\n", issue.Field, issue.Message)
			}
		}

		return nil
	}
}

// errorMessage maps an error to the text shown to the user.
func errorMessage(err error) string {
	var bankErr *repository.BankError
	switch {
	case errors.Is(err, repository.ErrStoreNotFound):
		return msgStoreNotFound
	case errors.Is(err, repository.ErrStoreIO):
		return msgStoreIO
	case errors.Is(err, service.ErrNoQuestionsAvailable):
		return msgNoQuestions
	case errors.As(err, &bankErr):
		return msgInvalidBank
	default:
		return msgInternalError
	}
}
