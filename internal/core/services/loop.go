package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/enunezf/sqlprompt/internal/core/ports"
)

// Prompt is shown before each statement in interactive mode
const Prompt = "> "

// StatementRunner executes one statement and reports the outcome itself
type StatementRunner interface {
	Execute(ctx context.Context, sqlText string)
}

// InteractiveLoop reads statements line by line until quit or end of input
type InteractiveLoop struct {
	reader ports.LineReader
	runner StatementRunner
}

// NewInteractiveLoop creates a new interactive loop
func NewInteractiveLoop(reader ports.LineReader, runner StatementRunner) *InteractiveLoop {
	return &InteractiveLoop{reader: reader, runner: runner}
}

// Run loops until the quit sentinel or end of input. Only read failures
// other than io.EOF are returned.
func (l *InteractiveLoop) Run(ctx context.Context) error {
	for {
		line, err := l.reader.ReadLine(Prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		query := strings.TrimSpace(line)
		if IsQuit(query) {
			return nil
		}
		if query == "" {
			continue
		}

		l.runner.Execute(ctx, query)
	}
}

// IsQuit reports whether a trimmed line is the quit sentinel: "quit" in any
// case, optionally followed directly by one ";"
func IsQuit(line string) bool {
	return strings.EqualFold(strings.TrimSuffix(line, ";"), "quit")
}
