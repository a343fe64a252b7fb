package entities

import "time"

// ScoreEntry is one finished quiz in the score history.
type ScoreEntry struct {
	SessionID   string
	PlayerName  string
	Result      QuizResult
	CompletedAt time.Time
}

// NewScoreEntry builds a history entry from a finished session.
func NewScoreEntry(session *QuizSession) *ScoreEntry {
	completedAt := time.Now()
	if session.CompletedAt != nil {
		completedAt = *session.CompletedAt
	}

	return &ScoreEntry{
		SessionID:   session.ID,
		PlayerName:  session.PlayerName,
		Result:      session.Result(),
		CompletedAt: completedAt,
	}
}

// Better reports whether e ranks above other on a leaderboard:
// higher percentage first, then more correct answers, then the earlier finish.
func (e *ScoreEntry) Better(other *ScoreEntry) bool {
	if e.Result.Percent() != other.Result.Percent() {
		return e.Result.Percent() > other.Result.Percent()
	}
	if e.Result.CorrectCount != other.Result.CorrectCount {
		return e.Result.CorrectCount > other.Result.CorrectCount
	}
	return e.CompletedAt.Before(other.CompletedAt)
}
