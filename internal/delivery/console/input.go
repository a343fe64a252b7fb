package console

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// lineReader reads user input one line at a time.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	return &lineReader{scanner: scanner}
}

// readLine returns the next line without its line ending, or io.EOF.
func (r *lineReader) readLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
}

// parseInt parses a whole-number answer, ignoring surrounding spaces.
func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
