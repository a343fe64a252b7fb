package entities

// OptionCount is the number of answer choices every question carries.
const OptionCount = 4

// RecordLines is the number of store lines one question occupies:
// the prompt, one line per option and the correct option number.
const RecordLines = 1 + OptionCount + 1

// Question is a single multiple-choice question as kept in the question store.
type Question struct {
	Prompt       string              // question text, a single line
	Options      [OptionCount]string // answer choices shown as 1..4
	CorrectIndex int                 // 1-based number of the correct option, stored as written
}

// NewQuestion creates a question from a prompt, its options and the correct option number.
func NewQuestion(prompt string, options [OptionCount]string, correctIndex int) Question {
	return Question{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// CheckAnswer reports whether answer is the correct option number.
// There is no normalization: an answer outside 1..4 is simply wrong.
func (q Question) CheckAnswer(answer int) bool {
	return answer == q.CorrectIndex
}
