package repository

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
)

// TestDecodeQuestions covers the positional record rules.
func TestDecodeQuestions(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		prompts []string
	}{
		{name: "empty", input: "", prompts: nil},
		{name: "one record", input: "Q\na\nb\nc\nd\n1\n", prompts: []string{"Q"}},
		{name: "no final newline", input: "Q\na\nb\nc\nd\n1", prompts: []string{"Q"}},
		{name: "crlf", input: "Q\r\na\r\nb\r\nc\r\nd\r\n4\r\n", prompts: []string{"Q"}},
		{name: "only prompt left", input: "Q\na\nb\nc\nd\n1\nR\n", prompts: []string{"Q"}},
		{name: "options without index", input: "Q\na\nb\nc\nd\n1\nR\na\nb\nc\nd\n", prompts: []string{"Q"}},
		{name: "padded index", input: "Q\na\nb\nc\nd\n  3 \n", prompts: []string{"Q"}},
		{name: "blank index line", input: "Q\na\nb\nc\nd\n\nR\na\nb\nc\nd\n1\n", prompts: nil},
		{name: "negative index", input: "Q\na\nb\nc\nd\n-1\n", prompts: []string{"Q"}},
		{name: "blank prompt", input: "\na\nb\nc\nd\n2\n", prompts: []string{""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeQuestions(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got == nil {
				t.Fatalf("expected non-nil result")
			}
			if len(got) != len(tc.prompts) {
				t.Fatalf("expected %d questions, got %+v", len(tc.prompts), got)
			}
			for i, p := range tc.prompts {
				if got[i].Prompt != p {
					t.Fatalf("question %d: expected prompt %q, got %q", i, p, got[i].Prompt)
				}
			}
		})
	}
}

// TestDecodeQuestionsFields verifies options and index are mapped in order.
func TestDecodeQuestionsFields(t *testing.T) {
	got, err := decodeQuestions(strings.NewReader("Q\r\none\ntwo\nthree\nfour\n 4\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := entities.NewQuestion("Q", [entities.OptionCount]string{"one", "two", "three", "four"}, 4)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// TestEncodeDecodeKeepsSpaces verifies text is stored without trimming.
func TestEncodeDecodeKeepsSpaces(t *testing.T) {
	q := entities.NewQuestion("  spaced prompt ", [entities.OptionCount]string{" a", "b ", "", "d"}, 1)

	got, err := decodeQuestions(strings.NewReader(string(encodeQuestion(q))))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0] != q {
		t.Fatalf("expected %+v, got %+v", q, got)
	}
}

// TestEmbeddedNewlineBreaksAlignment documents that line breaks in text shift later records.
func TestEmbeddedNewlineBreaksAlignment(t *testing.T) {
	broken := entities.NewQuestion("two\nlines", [entities.OptionCount]string{"a", "b", "c", "d"}, 1)
	next := entities.NewQuestion("next", [entities.OptionCount]string{"a", "b", "c", "d"}, 2)

	data := string(encodeQuestion(broken)) + string(encodeQuestion(next))
	got, err := decodeQuestions(strings.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected misaligned store to stop at the first record, got %+v", got)
	}
}

// TestDecodeQuestionsReadFailureKeepsDecodedRecords verifies a read error
// returns the records decoded before it.
func TestDecodeQuestionsReadFailureKeepsDecodedRecords(t *testing.T) {
	errDisk := errors.New("disk failure")
	r := io.MultiReader(strings.NewReader("Q\na\nb\nc\nd\n1\nR\n"), iotest.ErrReader(errDisk))

	got, err := decodeQuestions(r)
	if !errors.Is(err, errDisk) {
		t.Fatalf("expected read error, got %v", err)
	}
	if len(got) != 1 || got[0].Prompt != "Q" {
		t.Fatalf("expected the first record, got %+v", got)
	}
}
