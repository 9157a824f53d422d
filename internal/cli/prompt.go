package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotInteractive is returned when a confirmation is needed but stdin is
// not a terminal.
var ErrNotInteractive = errors.New("confirmation required: rerun with --yes or from a terminal")

// Prompter asks yes/no questions and reads secrets.
type Prompter struct {
	In  io.Reader
	Out io.Writer
	// IsTerminal reports whether In is attached to a terminal.
	IsTerminal func() bool
	// ReadSecret reads one line without echo.
	ReadSecret func() ([]byte, error)
}

// NewPrompter creates a prompter on the process stdin.
func NewPrompter() *Prompter {
	fd := int(os.Stdin.Fd())
	return &Prompter{
		In:         os.Stdin,
		Out:        os.Stderr,
		IsTerminal: func() bool { return term.IsTerminal(fd) },
		ReadSecret: func() ([]byte, error) { return term.ReadPassword(fd) },
	}
}

// Confirm asks question and reports a yes answer. assumeYes skips the
// question.
func (p *Prompter) Confirm(question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if p.IsTerminal == nil || !p.IsTerminal() {
		return false, ErrNotInteractive
	}
	fmt.Fprintf(p.Out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Secret reads a value without echo from a terminal.
func (p *Prompter) Secret(label string) (string, error) {
	if p.IsTerminal == nil || !p.IsTerminal() || p.ReadSecret == nil {
		return "", ErrNotInteractive
	}
	fmt.Fprintf(p.Out, "%s: ", label)
	b, err := p.ReadSecret()
	fmt.Fprintln(p.Out)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return string(b), nil
}
