package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/enunezf/sqlprompt/internal/core/domain"
	"github.com/enunezf/sqlprompt/internal/core/ports"
)

// EmptyResultText is printed when a statement returns no rows
const EmptyResultText = "Empty result"

// QueryExecutor runs statements against a session and prints the outcome
type QueryExecutor struct {
	session   ports.SessionPort
	formatter *TableFormatter
	out       io.Writer
	logger    *slog.Logger
}

// NewQueryExecutor creates an executor writing to out
func NewQueryExecutor(session ports.SessionPort, out io.Writer, logger *slog.Logger) *QueryExecutor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &QueryExecutor{
		session:   session,
		formatter: NewTableFormatter(),
		out:       out,
		logger:    logger,
	}
}

// Execute submits sqlText and prints an error, "Empty result" or a table.
// Nothing is returned: every failure ends up as printed output.
func (e *QueryExecutor) Execute(ctx context.Context, sqlText string) {
	start := time.Now()

	rs, err := e.session.Query(ctx, sqlText)
	if err != nil {
		e.logger.Debug("statement failed", "length", len(sqlText), "error", err)
		e.printf("Error: %s\n", statementMessage(err))
		return
	}

	e.logger.Debug("statement done", "rows", rs.Len(), "elapsed", time.Since(start))

	if rs.IsEmpty() {
		e.printf("%s\n", EmptyResultText)
		return
	}

	if err := e.formatter.Render(e.out, rs); err != nil {
		e.logger.Warn("failed to write result", "error", err)
	}
}

func (e *QueryExecutor) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(e.out, format, args...); err != nil {
		e.logger.Warn("failed to write output", "error", err)
	}
}

// statementMessage extracts the text the user should see for a failure
func statementMessage(err error) string {
	var stmtErr *domain.StatementError
	if errors.As(err, &stmtErr) {
		return stmtErr.Error()
	}
	return err.Error()
}
