// Package console provides the small prompt/response surface used by the
// interactive review loop and the dictionary entry editor. The Console
// interface exists so tests can script a whole session without a terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console is the I/O surface of the interactive parts of piscribe.
// The WithSpacing variants print a blank line first so consecutive
// prompts stay readable.
type Console interface {
	Print(text string)
	PrintWithSpacing(text string)
	Input(prompt string) string
	InputWithSpacing(prompt string) string
}

// Terminal is the stdin/stdout Console used by the CLI.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal over os.Stdin and os.Stdout.
func NewTerminal() *Terminal {
	return &Terminal{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// NewTerminalWith creates a Terminal over explicit reader and writer.
func NewTerminalWith(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) Print(text string) {
	fmt.Fprintln(t.out, text)
}

func (t *Terminal) PrintWithSpacing(text string) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, text)
}

// Input prints prompt and reads one line, trimmed of surrounding
// whitespace. EOF yields an empty string.
func (t *Terminal) Input(prompt string) string {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (t *Terminal) InputWithSpacing(prompt string) string {
	fmt.Fprintln(t.out)
	return t.Input(prompt)
}
