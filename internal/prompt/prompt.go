// Package prompt asks the user for named fields on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrPromptUnavailable is returned when no input can be read, for example
// because stdin is closed or was never started.
var ErrPromptUnavailable = errors.New("prompt unavailable")

// Field is a single named value to collect.
type Field struct {
	Name        string
	Description string
	Secret      bool // read without echo when the input is a terminal
}

// Prompter collects field values from a user. Start must be called before
// Get; Stop releases the prompt and is safe to call at any time, including
// after a failed Start or Get.
type Prompter interface {
	Start(out io.Writer, label string) error
	Get(fields []Field) (map[string]string, error)
	Stop()
}

// Terminal prompts on out and reads answers line by line from in.
type Terminal struct {
	in      io.Reader
	out     io.Writer
	label   string
	reader  *bufio.Reader
	started bool
}

var _ Prompter = &Terminal{}

// NewTerminal creates a prompter reading from in. Secret fields are read with
// echo disabled when in is a terminal.
func NewTerminal(in io.Reader) *Terminal {
	return &Terminal{in: in}
}

// NewStdin creates a prompter reading from os.Stdin.
func NewStdin() *Terminal {
	return NewTerminal(os.Stdin)
}

func (t *Terminal) Start(out io.Writer, label string) error {
	if t.in == nil {
		return ErrPromptUnavailable
	}
	if out == nil {
		out = os.Stderr
	}
	t.out = out
	t.label = label
	t.reader = bufio.NewReader(t.in)
	t.started = true
	return nil
}

func (t *Terminal) Get(fields []Field) (map[string]string, error) {
	if !t.started {
		return nil, ErrPromptUnavailable
	}
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		v, err := t.read(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		values[f.Name] = v
	}
	return values, nil
}

func (t *Terminal) read(f Field) (string, error) {
	prefix := f.Name
	if t.label != "" {
		prefix = t.label + " " + f.Name
	}
	if f.Description != "" {
		fmt.Fprintf(t.out, "%s (%s): ", prefix, f.Description)
	} else {
		fmt.Fprintf(t.out, "%s: ", prefix)
	}

	if fd, ok := t.terminalFd(); ok && f.Secret {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(t.out)
		if err != nil {
			return "", errors.Join(ErrPromptUnavailable, err)
		}
		return string(b), nil
	}

	line, err := t.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrPromptUnavailable
		}
		return "", errors.Join(ErrPromptUnavailable, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) terminalFd() (int, bool) {
	f, ok := t.in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func (t *Terminal) Stop() {
	t.started = false
	t.reader = nil
}
