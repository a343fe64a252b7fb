package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

// DefaultStorePath is the question store used when none is configured.
const DefaultStorePath = "quiz.txt"

var (
	ErrStoreNotFound = errors.New("quiz file not found")
	ErrStoreIO       = errors.New("quiz file error")
)

// StoreError describes a failed operation on the question store file.
// It matches both its kind (ErrStoreNotFound or ErrStoreIO) and the underlying cause.
type StoreError struct {
	Op   string // "append" or "load"
	Path string
	Kind error
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// QuestionRepository keeps questions in an append-only, line-oriented text file.
//
// Every call opens and closes the file itself. There is no locking: two
// writers, or a writer racing a reader, can interleave lines and break the
// record alignment of everything after that point. The same happens if a
// prompt or option contains a line break.
type QuestionRepository struct {
	path string
}

// NewQuestionRepository creates a repository over the store file at path.
// The file is not touched until the first call.
func NewQuestionRepository(path string) *QuestionRepository {
	if path == "" {
		path = DefaultStorePath
	}
	return &QuestionRepository{path: path}
}

// Path returns the location of the store file.
func (r *QuestionRepository) Path() string {
	return r.path
}

// Append writes q to the end of the store, creating the file if needed.
func (r *QuestionRepository) Append(ctx context.Context, q entities.Question) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return r.ioError("append", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = r.ioError("append", cerr)
		}
	}()

	if _, err := f.Write(encodeQuestion(q)); err != nil {
		return r.ioError("append", err)
	}

	if err := f.Sync(); err != nil {
		return r.ioError("append", err)
	}

	return nil
}

// LoadAll reads every complete question from the store in file order.
// A missing store is reported as ErrStoreNotFound, never as an empty list.
// On a read failure the records decoded before it are returned with the error.
func (r *QuestionRepository) LoadAll(ctx context.Context) ([]entities.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &StoreError{Op: "load", Path: r.path, Kind: ErrStoreNotFound, Err: err}
		}
		return nil, r.ioError("load", err)
	}
	defer func() { _ = f.Close() }()

	questions, err := decodeQuestions(f)
	if err != nil {
		return questions, r.ioError("load", err)
	}

	return questions, nil
}

// Count returns the number of complete questions in the store.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	questions, err := r.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(questions), nil
}

func (r *QuestionRepository) ioError(op string, err error) error {
	return &StoreError{Op: op, Path: r.path, Kind: ErrStoreIO, Err: err}
}
