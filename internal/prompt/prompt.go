// Package prompt reads interactive answers from a line-oriented input stream.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter writes questions to out and reads one line per answer from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm asks a yes/no question. Only "y" (any case, surrounding whitespace
// ignored) counts as yes; anything else, including an empty line or end of
// input, is no. An error is returned only when reading fails for a reason
// other than end of input.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, err := p.readLine()
	if err != nil {
		return false, err
	}

	return strings.EqualFold(line, "y"), nil
}

// ReadLine prints label and returns the next input line with surrounding
// whitespace removed. End of input yields an empty string.
func (p *Prompter) ReadLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	return p.readLine()
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
