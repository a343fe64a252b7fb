package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

// printer writes styled text to the console. Styles degrade to plain text
// when the output is not a terminal.
type printer struct {
	w       io.Writer
	title   lipgloss.Style
	heading lipgloss.Style
	score   lipgloss.Style
	err     lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		heading: r.NewStyle().Bold(true),
		score:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		err:     r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (p *printer) line() {
	fmt.Fprintf(p.w, "\n%s\n", separator)
}

func (p *printer) print(s string) {
	fmt.Fprint(p.w, s)
}

func (p *printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *printer) printTitle(s string) {
	p.println(p.title.Render(s))
}

func (p *printer) printError(s string) {
	p.println(p.err.Render(s))
}

func (p *printer) printScore(r entities.QuizResult) {
	p.println(p.score.Render(fmt.Sprintf(msgScore, r)))
}

// printQuestion shows the prompt and the numbered options.
func (p *printer) printQuestion(q entities.Question) {
	p.println(q.Prompt)
	for i, opt := range q.Options {
		p.printf("%d. %s\n", i+1, opt)
	}
}

// printQuestionList shows every stored question with its correct option number.
func (p *printer) printQuestionList(questions []entities.Question) {
	for i, q := range questions {
		p.println(p.heading.Render(fmt.Sprintf("#%d %s", i+1, q.Prompt)))
		for j, opt := range q.Options {
			marker := " "
			if q.CheckAnswer(j + 1) {
				marker = "*"
			}
			p.printf(" %s %d. %s\n", marker, j+1, opt)
		}
		if q.CorrectIndex < 1 || q.CorrectIndex > entities.OptionCount {
			p.printf("   correct option: %d (cannot be answered)\n", q.CorrectIndex)
		}
	}
}

// printScores shows the leaderboard.
func (p *printer) printScores(entries []*entities.ScoreEntry) {
	p.println(p.heading.Render(msgTopScores))
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %-16s %s (%d%%)  %s\n",
			i+1,
			e.PlayerName,
			e.Result,
			e.Result.Percent(),
			e.CompletedAt.Local().Format("02.01.2006 15:04"),
		)
	}
	p.print(b.String())
}
