// Package ports defines the interfaces (ports) for the hexagonal architecture.
package ports

import (
	"context"

	"github.com/enunezf/sqlprompt/internal/core/domain"
)

// SessionPort defines the interface for an open database session
type SessionPort interface {
	// Query submits one statement and fetches every row it returns.
	// Failures are reported as *domain.StatementError.
	Query(ctx context.Context, sqlText string) (*domain.ResultSet, error)

	// Close closes the session
	Close() error
}
