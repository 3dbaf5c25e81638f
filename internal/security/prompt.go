// Package security provides interactive credential prompts.
// Passwords typed at a terminal are read without echo.
package security

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// InteractivePrompter implements CredentialPrompter via terminal interaction
type InteractivePrompter struct {
	reader *bufio.Reader
	out    io.Writer
	// secretFD is the terminal to read hidden input from, -1 for none
	secretFD int
}

// NewInteractivePrompter creates a prompter reading answers from reader.
// Passwords are echoed like any other answer.
func NewInteractivePrompter(reader *bufio.Reader, out io.Writer) *InteractivePrompter {
	return &InteractivePrompter{
		reader:   reader,
		out:      out,
		secretFD: -1,
	}
}

// NewTerminalPrompter is like NewInteractivePrompter, but reads secrets
// from the terminal fd without echo when fd is a terminal
func NewTerminalPrompter(reader *bufio.Reader, out io.Writer, fd int) *InteractivePrompter {
	p := NewInteractivePrompter(reader, out)
	if term.IsTerminal(fd) {
		p.secretFD = fd
	}
	return p
}

// Ask writes label and reads one line, stripping the trailing \r and \n
func (p *InteractivePrompter) Ask(label string) (string, error) {
	if _, err := io.WriteString(p.out, label); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	response, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || response == "" {
			return "", fmt.Errorf("failed to read response: %w", err)
		}
	}

	return strings.TrimRight(response, "\r\n"), nil
}

// AskSecret writes label and reads one line without echoing it
func (p *InteractivePrompter) AskSecret(label string) (string, error) {
	if p.secretFD < 0 || p.reader.Buffered() > 0 {
		return p.Ask(label)
	}

	if _, err := io.WriteString(p.out, label); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	secret, err := term.ReadPassword(p.secretFD)
	// ReadPassword swallows the newline the user typed
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return strings.TrimRight(string(secret), "\r\n"), nil
}
