package netfile

import (
	"bufio"
	"io"
	"strings"
)

const commentChar = "#"

// LineReader yields the content lines of a network file. Everything from the
// first '#' to the end of a line is dropped, and lines left blank are skipped.
//
// Lines may be of any length. A trailing "\r" is dropped with the "\n".
//
// Usage mirrors bufio.Scanner:
//
//	lr := NewLineReader(r)
//	for lr.Next() {
//	    fields := strings.Fields(lr.Text())
//	}
//	if err := lr.Err(); err != nil { ... }
type LineReader struct {
	br   *bufio.Reader
	text string
	line int
	eof  bool
	err  error
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(r)}
}

// readLine returns the next physical line without its terminator.
func (lr *LineReader) readLine() (string, bool) {
	if lr.eof || lr.err != nil {
		return "", false
	}
	s, err := lr.br.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			lr.err = err
			return "", false
		}
		lr.eof = true
		if s == "" {
			return "", false
		}
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), true
}

// Next advances to the next content line. It returns false at end of input
// or on a read error.
func (lr *LineReader) Next() bool {
	for {
		raw, ok := lr.readLine()
		if !ok {
			break
		}
		lr.line++
		text := StripComment(raw)
		if strings.TrimSpace(text) == "" {
			continue
		}
		lr.text = text
		return true
	}
	lr.text = ""
	return false
}

// Text returns the current content line with its comment removed.
func (lr *LineReader) Text() string {
	return lr.text
}

// Fields returns the whitespace separated tokens of the current line.
func (lr *LineReader) Fields() []string {
	return strings.Fields(lr.text)
}

// Line returns the 1-based physical line number of the current line.
func (lr *LineReader) Line() int {
	return lr.line
}

// Err returns the first non-EOF read error.
func (lr *LineReader) Err() error {
	return lr.err
}

// StripComment removes everything from the first '#' on.
func StripComment(line string) string {
	if i := strings.Index(line, commentChar); i >= 0 {
		return line[:i]
	}
	return line
}
