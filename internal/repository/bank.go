package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

// Bank is a question bank file used to add many questions at once.
type Bank struct {
	Questions []BankQuestion `json:"questions" yaml:"questions"`
}

// BankQuestion is one question entry of a bank file.
type BankQuestion struct {
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options"`
	Correct  int      `json:"correct" yaml:"correct"`
}

// BankIssue is a problem found in one field of a bank file.
type BankIssue struct {
	Field   string
	Message string
}

// BankError reports every issue found in a bank file.
type BankError struct {
	Issues []BankIssue
}

func (err *BankError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

// LoadBank reads a YAML or JSON question bank (chosen by file extension)
// and converts it to questions ready for the store.
func LoadBank(path string) ([]entities.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var bank Bank
	if strings.EqualFold(filepath.Ext(path), ".json") {
		bank, err = parseJSONBank(data)
	} else {
		bank, err = parseYAMLBank(data)
	}
	if err != nil {
		return nil, err
	}

	return bank.toQuestions()
}

func parseJSONBank(data []byte) (Bank, error) {
	var bank Bank
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&bank); err != nil {
		return Bank{}, fmt.Errorf("parse json: %w", err)
	}
	return bank, nil
}

func parseYAMLBank(data []byte) (Bank, error) {
	var bank Bank
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bank); err != nil {
		if err == io.EOF {
			return Bank{}, nil
		}
		return Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	return bank, nil
}

func (b Bank) toQuestions() ([]entities.Question, error) {
	var issues []BankIssue
	add := func(field, message string) {
		issues = append(issues, BankIssue{Field: field, Message: message})
	}

	questions := make([]entities.Question, 0, len(b.Questions))
	for i, entry := range b.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		prompt := strings.TrimSpace(entry.Question)
		if prompt == "" {
			add(prefix+".question", "is required")
		} else if strings.ContainsAny(prompt, "\r\n") {
			add(prefix+".question", "must be a single line")
		}

		if len(entry.Options) != entities.OptionCount {
			add(prefix+".options", fmt.Sprintf("must have exactly %d entries, got %d", entities.OptionCount, len(entry.Options)))
			continue
		}

		var options [entities.OptionCount]string
		for j, opt := range entry.Options {
			opt = strings.TrimSpace(opt)
			if strings.ContainsAny(opt, "\r\n") {
				add(fmt.Sprintf("%s.options[%d]", prefix, j), "must be a single line")
			}
			options[j] = opt
		}

		questions = append(questions, entities.NewQuestion(prompt, options, entry.Correct))
	}

	if len(issues) > 0 {
		return nil, &BankError{Issues: issues}
	}

	return questions, nil
}
