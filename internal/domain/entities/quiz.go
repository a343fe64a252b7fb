package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session statuses.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionAbandoned = "abandoned"
)

// QuizResult is the outcome of one pass through the question list.
type QuizResult struct {
	CorrectCount int // number of questions answered correctly
	TotalCount   int // number of questions loaded for the quiz
}

// Percent returns the share of correct answers as a whole percentage.
func (r QuizResult) Percent() int {
	if r.TotalCount <= 0 {
		return 0
	}
	return r.CorrectCount * 100 / r.TotalCount
}

func (r QuizResult) String() string {
	return fmt.Sprintf("%d/%d", r.CorrectCount, r.TotalCount)
}

// QuizSession represents one player's run through the loaded questions.
// It lives only for the duration of the run and is never written to the question store.
type QuizSession struct {
	ID                 string     // unique session ID
	PlayerName         string     // name the player entered
	Questions          []Question // questions in store order
	CurrentQuestionNum int        // 1-based number of the question being asked
	CorrectAnswers     int        // number of correct answers so far
	TotalQuestions     int        // total number of questions in the quiz
	Status             string     // "active", "completed" or "abandoned"
	StartedAt          time.Time  // timestamp when the quiz started
	CompletedAt        *time.Time // timestamp when the quiz ended (nullable)
}

// NewQuizSession creates a new active session over the given questions.
func NewQuizSession(playerName string, questions []Question) *QuizSession {
	return &QuizSession{
		ID:                 uuid.NewString(),
		PlayerName:         playerName,
		Questions:          questions,
		CurrentQuestionNum: 1,
		TotalQuestions:     len(questions),
		Status:             SessionActive,
		StartedAt:          time.Now(),
	}
}

// Record tallies an answer to the current question and moves to the next one.
func (qs *QuizSession) Record(isCorrect bool) {
	if isCorrect {
		qs.CorrectAnswers++
	}
	qs.CurrentQuestionNum++
}

// Done reports whether every question has been answered.
func (qs *QuizSession) Done() bool {
	return qs.CurrentQuestionNum > qs.TotalQuestions
}

// Answered returns how many questions have been presented and answered.
func (qs *QuizSession) Answered() int {
	return qs.CurrentQuestionNum - 1
}

// Complete marks the session as completed and sets the completion timestamp.
func (qs *QuizSession) Complete() {
	qs.finish(SessionCompleted)
}

// Abandon marks the session as ended before all questions were answered.
func (qs *QuizSession) Abandon() {
	qs.finish(SessionAbandoned)
}

func (qs *QuizSession) finish(status string) {
	qs.Status = status
	now := time.Now()
	qs.CompletedAt = &now
}

// Result returns the current tally as a QuizResult.
func (qs *QuizSession) Result() QuizResult {
	return QuizResult{
		CorrectCount: qs.CorrectAnswers,
		TotalCount:   qs.TotalQuestions,
	}
}
