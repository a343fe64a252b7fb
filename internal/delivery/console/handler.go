package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
	"github.com/aliskhannn/quiz-manager/internal/service"
)

type QuizService interface {
	AddQuestion(ctx context.Context, q entities.Question) error
	ImportQuestions(ctx context.Context, path string) (int, error)
	ListQuestions(ctx context.Context) ([]entities.Question, error)
	StartSession(ctx context.Context, playerName string) (*entities.QuizSession, error)
	Play(ctx context.Context, session *entities.QuizSession, source service.AnswerSource) (entities.QuizResult, error)
	TopScores(ctx context.Context, limit int) ([]*entities.ScoreEntry, error)
}

type Handler struct {
	logger      *zap.Logger
	quizService QuizService
	in          *lineReader
	out         *printer
	scoreLimit  int
}

func NewHandler(
	logger *zap.Logger,
	quizService QuizService,
	in io.Reader,
	out io.Writer,
	scoreLimit int,
) *Handler {
	if scoreLimit <= 0 {
		scoreLimit = 10
	}
	return &Handler{
		logger:      logger,
		quizService: quizService,
		in:          newLineReader(in),
		out:         newPrinter(out),
		scoreLimit:  scoreLimit,
	}
}

// Run asks for a name and a role, then runs that role's menus until the
// user exits or the input ends.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("console handler started")
	defer h.logger.Info("console handler stopped")

	h.out.line()
	h.out.printTitle(msgTitle)
	h.out.line()

	h.out.print(msgEnterName)
	name, err := h.in.readLine()
	if err != nil {
		return ignoreEOF(err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultPlayerName
	}

	h.out.print(msgRoleMenu)
	line, err := h.in.readLine()
	if err != nil {
		return ignoreEOF(err)
	}

	choice, _ := parseInt(line)
	role, err := entities.RoleByChoice(choice)
	if err != nil {
		h.out.printError(msgInvalidChoice)
		return nil
	}

	h.logger.Debug("user signed in",
		zap.String("name", name),
		zap.String("role", role.Name()),
	)
	h.out.printf(msgRoleLine+"\n", role.Name())

	if entities.CanAdminister(role) && entities.CanPlay(role) {
		h.out.println(msgRegistered)
	}

	if entities.CanAdminister(role) {
		if err := h.adminMenu(ctx); err != nil {
			return ignoreEOF(err)
		}
	}

	if entities.CanPlay(role) {
		if err := h.playerMenu(ctx, name); err != nil {
			return ignoreEOF(err)
		}
	}

	h.out.line()
	h.out.printf(msgGoodbye+"\n", name)

	return nil
}

// menuItem is one numbered action of a menu. A nil action exits the menu.
type menuItem func(ctx context.Context) error

// runMenu shows prompt until the user picks the exit entry.
func (h *Handler) runMenu(ctx context.Context, prompt string, items []menuItem) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.out.line()
		h.out.print(prompt)

		line, err := h.in.readLine()
		if err != nil {
			return err
		}

		choice, ok := parseInt(line)
		if !ok || choice < 1 || choice > len(items) {
			h.out.printError(msgInvalidChoice)
			continue
		}

		action := items[choice-1]
		if action == nil {
			return nil
		}

		if err := action(ctx); err != nil {
			return err
		}
	}
}

// readInt prompts until the user enters a whole number.
func (h *Handler) readInt(prompt string) (int, error) {
	for {
		h.out.print(prompt)
		line, err := h.in.readLine()
		if err != nil {
			return 0, err
		}
		if n, ok := parseInt(line); ok {
			return n, nil
		}
		h.out.printError(msgNotANumber)
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
