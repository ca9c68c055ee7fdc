package intscan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Ints parses a whitespace-separated list of integers. A blank or empty
// string is a valid empty list. The first non-integer token aborts with an
// error wrapping [ErrNotInteger].
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for i, tok := range fields {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at position %d", ErrNotInteger, tok, i)
		}
		out = append(out, n)
	}
	return out, nil
}

// Int parses a single integer, tolerating surrounding whitespace.
func Int(s string) (int, error) {
	tok := strings.TrimSpace(s)
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, tok)
	}
	return n, nil
}

// Prompter reads line-oriented integer input from an io.Reader, writing a
// prompt to an io.Writer before each read. The zero value is not usable;
// construct with [NewPrompter].
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading from in and prompting on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ints prints prompt, reads one line, and parses it with [Ints].
func (p *Prompter) Ints(prompt string) ([]int, error) {
	line, err := p.readLine(prompt)
	if err != nil {
		return nil, err
	}
	return Ints(line)
}

// Int prints prompt, reads one line, and parses it with [Int].
func (p *Prompter) Int(prompt string) (int, error) {
	line, err := p.readLine(prompt)
	if err != nil {
		return 0, err
	}
	return Int(line)
}

func (p *Prompter) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		// a final unterminated line still counts as input
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("intscan: read input: %w", err)
	}
	return line, nil
}
