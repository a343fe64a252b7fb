package repository

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

// encodeQuestion renders q as one store record: the prompt, the four options
// and the correct option number, one per line.
func encodeQuestion(q entities.Question) []byte {
	var buf bytes.Buffer
	buf.WriteString(q.Prompt)
	buf.WriteByte('\n')
	for _, opt := range q.Options {
		buf.WriteString(opt)
		buf.WriteByte('\n')
	}
	buf.WriteString(strconv.Itoa(q.CorrectIndex))
	buf.WriteByte('\n')
	return buf.Bytes()
}

// decodeQuestions reads records from r until the input ends.
//
// Records are positional, RecordLines lines each. A trailing record with
// fewer lines is dropped, and a record whose last line is not an integer
// ends decoding; in both cases the records read so far are returned
// without an error.
func decodeQuestions(r io.Reader) ([]entities.Question, error) {
	reader := bufio.NewReader(r)

	questions := make([]entities.Question, 0)
	lines := make([]string, 0, entities.RecordLines)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return questions, err
		}
		if line == "" && err != nil {
			return questions, nil
		}

		line = strings.TrimSuffix(line, "\n")
		lines = append(lines, strings.TrimSuffix(line, "\r"))

		if len(lines) == entities.RecordLines {
			q, ok := parseRecord(lines)
			if !ok {
				return questions, nil
			}
			questions = append(questions, q)
			lines = lines[:0]
		}

		if err != nil {
			return questions, nil
		}
	}
}

// parseRecord builds a question from exactly RecordLines lines.
func parseRecord(lines []string) (entities.Question, bool) {
	correct, err := strconv.Atoi(strings.TrimSpace(lines[entities.RecordLines-1]))
	if err != nil {
		return entities.Question{}, false
	}

	var options [entities.OptionCount]string
	copy(options[:], lines[1:1+entities.OptionCount])

	return entities.NewQuestion(lines[0], options, correct), true
}
