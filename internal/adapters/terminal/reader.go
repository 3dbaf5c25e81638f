// Package terminal provides line readers over the process's standard input.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// BufferedReader reads lines from any io.Reader, writing prompts to out.
// It is used when standard input is not a terminal.
type BufferedReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewBufferedReader creates a reader sharing the given buffered input
func NewBufferedReader(in *bufio.Reader, out io.Writer) *BufferedReader {
	return &BufferedReader{in: in, out: out}
}

// ReadLine writes prompt and returns the next line without its terminator.
// A final line without a newline is returned before io.EOF.
func (r *BufferedReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadlineReader reads lines with editing and history (readline)
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader creates a readline-backed reader on the process's
// terminal. historyFile may be empty to keep history in memory only.
func NewReadlineReader(historyFile string) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine shows prompt and reads one edited line. Ctrl-C discards the
// current line and yields an empty one.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

// Close restores the terminal
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
