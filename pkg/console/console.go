package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when the input stream ends while a prompt is waiting
var ErrInputClosed = errors.New("console input closed")

// IO is the console capability a session reads choices from and writes output to.
type IO interface {
	// Prompt writes text and returns the next input line, trimmed and lowercased.
	Prompt(text string) (string, error)
	// Write prints text followed by a newline.
	Write(text string)
}

// Terminal implements IO over a reader/writer pair.
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminal creates a terminal reading lines from in and writing to out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Prompt writes text without a trailing newline and reads one line.
func (t *Terminal) Prompt(text string) (string, error) {
	fmt.Fprint(t.out, text)

	line, err := t.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}

	return Normalize(line), nil
}

// Write prints text followed by a newline.
func (t *Terminal) Write(text string) {
	fmt.Fprintln(t.out, text)
}

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
