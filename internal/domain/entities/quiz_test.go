package entities

import "testing"

func sampleQuestions(correct ...int) []Question {
	questions := make([]Question, 0, len(correct))
	for _, c := range correct {
		questions = append(questions, NewQuestion("Q", [OptionCount]string{"a", "b", "c", "d"}, c))
	}
	return questions
}

// TestCheckAnswerIsPlainEquality verifies answers are compared without normalization.
func TestCheckAnswerIsPlainEquality(t *testing.T) {
	q := NewQuestion("2+2?", [OptionCount]string{"3", "4", "5", "6"}, 2)

	cases := []struct {
		answer int
		want   bool
	}{
		{2, true},
		{1, false},
		{3, false},
		{9, false},
		{0, false},
		{-2, false},
	}
	for _, tc := range cases {
		if got := q.CheckAnswer(tc.answer); got != tc.want {
			t.Fatalf("CheckAnswer(%d) = %v, want %v", tc.answer, got, tc.want)
		}
	}
}

// TestOutOfRangeCorrectIndexCanNeverBeAnswered verifies a bad stored index only makes the question unanswerable.
func TestOutOfRangeCorrectIndexCanNeverBeAnswered(t *testing.T) {
	q := NewQuestion("?", [OptionCount]string{"a", "b", "c", "d"}, 7)
	for answer := 1; answer <= OptionCount; answer++ {
		if q.CheckAnswer(answer) {
			t.Fatalf("answer %d should not match index 7", answer)
		}
	}
}

// TestQuizSessionTally verifies the session counts answers and completes.
func TestQuizSessionTally(t *testing.T) {
	s := NewQuizSession("alice", sampleQuestions(1, 2, 3))
	if s.ID == "" {
		t.Fatalf("expected session id")
	}
	if s.Status != SessionActive || s.CurrentQuestionNum != 1 || s.TotalQuestions != 3 {
		t.Fatalf("unexpected new session: %+v", s)
	}

	s.Record(true)
	s.Record(false)
	if s.Done() {
		t.Fatalf("session should not be done after 2 of 3 answers")
	}
	if s.Answered() != 2 {
		t.Fatalf("expected 2 answered, got %d", s.Answered())
	}
	s.Record(true)
	if !s.Done() {
		t.Fatalf("session should be done")
	}

	s.Complete()
	if s.Status != SessionCompleted || s.CompletedAt == nil {
		t.Fatalf("expected completed session, got %+v", s)
	}

	got := s.Result()
	if got != (QuizResult{CorrectCount: 2, TotalCount: 3}) {
		t.Fatalf("unexpected result %+v", got)
	}
}

// TestQuizSessionAbandon verifies abandon sets the status and timestamp.
func TestQuizSessionAbandon(t *testing.T) {
	s := NewQuizSession("bob", sampleQuestions(1))
	s.Abandon()
	if s.Status != SessionAbandoned || s.CompletedAt == nil {
		t.Fatalf("expected abandoned session, got %+v", s)
	}
}

// TestQuizResultFormatting verifies the score string and percentage.
func TestQuizResultFormatting(t *testing.T) {
	r := QuizResult{CorrectCount: 2, TotalCount: 3}
	if r.String() != "2/3" {
		t.Fatalf("expected 2/3, got %q", r.String())
	}
	if r.Percent() != 66 {
		t.Fatalf("expected 66, got %d", r.Percent())
	}
	if (QuizResult{}).Percent() != 0 {
		t.Fatalf("empty result should be 0 percent")
	}
}

// TestScoreEntryOrdering verifies leaderboard ranking rules.
func TestScoreEntryOrdering(t *testing.T) {
	s := NewQuizSession("a", sampleQuestions(1, 1))
	s.Record(true)
	s.Record(true)
	s.Complete()
	perfect := NewScoreEntry(s)

	half := &ScoreEntry{Result: QuizResult{CorrectCount: 2, TotalCount: 4}, CompletedAt: perfect.CompletedAt}
	smallHalf := &ScoreEntry{Result: QuizResult{CorrectCount: 1, TotalCount: 2}, CompletedAt: perfect.CompletedAt}

	if !perfect.Better(half) || half.Better(perfect) {
		t.Fatalf("higher percentage should rank first")
	}
	if !half.Better(smallHalf) {
		t.Fatalf("more correct answers should break percentage ties")
	}

	earlier := &ScoreEntry{Result: half.Result, CompletedAt: half.CompletedAt.Add(-1)}
	if !earlier.Better(half) {
		t.Fatalf("earlier finish should break remaining ties")
	}
	if perfect.PlayerName != "a" || perfect.SessionID != s.ID {
		t.Fatalf("entry should copy session identity: %+v", perfect)
	}
}
