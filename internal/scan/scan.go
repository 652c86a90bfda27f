// Package scan provides wizard.Scanner implementations that simulate a
// barcode or measuring device by prompting for typed input.
package scan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/wizard"
	"golang.org/x/term"
)

// ErrInputClosed is the same sentinel the wizard checks for.
var ErrInputClosed = wizard.ErrInputClosed

// promptText is the text shown before each reading.
func promptText(label string) string {
	return "Enter " + label + ": "
}

// New returns a Terminal scanner when in is a terminal and a Lines scanner otherwise.
func New(in *os.File, out io.Writer) wizard.Scanner {
	if term.IsTerminal(int(in.Fd())) {
		return NewTerminal(in, out)
	}
	return NewLines(in, out)
}

// Lines reads one reading per line from a non-interactive source such as a pipe.
// A blank line counts as a cancelled reading.
type Lines struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLines returns a Lines scanner reading from r and writing prompts to out.
// out may be nil to suppress prompts.
func NewLines(r io.Reader, out io.Writer) *Lines {
	return &Lines{r: bufio.NewReader(r), out: out}
}

// Scan prints the prompt for label and reads the next line.
func (l *Lines) Scan(ctx context.Context, label string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if l.out != nil {
		fmt.Fprint(l.out, promptText(label))
	}
	line, err := l.r.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, ErrInputClosed
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("reading %s: %w", label, err)
	}
	// Piped input is not echoed, so finish the prompt line here.
	if l.out != nil {
		fmt.Fprintln(l.out)
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return "", false, nil
	}
	return line, true, nil
}

// Terminal reads readings with an interactive line editor. The terminal is
// put in raw mode only for the duration of each read.
// An empty line counts as a cancelled reading; Ctrl-C or Ctrl-D closes the input.
type Terminal struct {
	in     *os.File
	editor *editor
}

// NewTerminal returns a Terminal scanner on the given TTY.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, editor: newEditor(in, out)}
}

// Scan prompts for label and reads one line.
func (t *Terminal) Scan(ctx context.Context, label string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	fd := int(t.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", false, fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return t.editor.read(label)
}

// editor is the line-reading half of Terminal. One term.Terminal lives for
// the whole session: it buffers keystrokes read past the end of a line, so
// a pasted or fast-typed "50\r30\r15\r" yields three readings.
type editor struct {
	t *term.Terminal
}

func newEditor(r io.Reader, w io.Writer) *editor {
	rw := struct {
		io.Reader
		io.Writer
	}{r, w}
	return &editor{t: term.NewTerminal(rw, "")}
}

func (e *editor) read(label string) (string, bool, error) {
	e.t.SetPrompt(promptText(label))
	line, err := e.t.ReadLine()
	switch {
	case errors.Is(err, io.EOF):
		return "", false, ErrInputClosed
	case errors.Is(err, term.ErrPasteIndicator):
		// A bracketed paste still carries a complete line.
	case err != nil:
		return "", false, fmt.Errorf("reading %s: %w", label, err)
	}
	if strings.TrimSpace(line) == "" {
		return "", false, nil
	}
	return line, true, nil
}
