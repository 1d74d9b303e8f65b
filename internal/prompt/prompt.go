// Package prompt reads confirmations and names from the user.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// Prompter asks the user questions.
type Prompter interface {
	// Confirm asks a yes/no question. Only "y" and "yes" confirm.
	Confirm(question string) (bool, error)

	// ReadLine prints prompt and returns the trimmed answer.
	ReadLine(prompt string) (string, error)
}

// Console prompts on a reader/writer pair, normally stdin and stdout.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewConsole returns a Console reading from in and writing prompts to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{reader: bufio.NewReader(in), out: out}
}

// Stdio returns a Console bound to the process's standard streams.
func Stdio() *Console {
	return NewConsole(os.Stdin, os.Stdout)
}

// Interactive reports whether stdin is a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (c *Console) Confirm(question string) (bool, error) {
	answer, err := c.ReadLine(question + " [(y)/(n)]: ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	input, err := c.reader.ReadString('\n')
	// EOF ends the answer; an empty answer is a valid reply.
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(input), nil
}

// Scripted answers from a fixed list. It is meant for automation and tests.
type Scripted struct {
	Confirms []bool
	Lines    []string

	// Asked records every question and prompt in order.
	Asked []string
}

func (s *Scripted) Confirm(question string) (bool, error) {
	s.Asked = append(s.Asked, question)
	if len(s.Confirms) == 0 {
		return false, errors.Newf("no scripted answer for %q", question)
	}
	answer := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return answer, nil
}

func (s *Scripted) ReadLine(prompt string) (string, error) {
	s.Asked = append(s.Asked, prompt)
	if len(s.Lines) == 0 {
		return "", errors.Newf("no scripted answer for %q", prompt)
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}
