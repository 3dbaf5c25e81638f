package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/enunezf/sqlprompt/internal/core/domain"
	"github.com/enunezf/sqlprompt/internal/core/ports"
)

// connect opens the session. A failure is printed as "Connection fail:"
// and returned as *domain.ConnectionError; it is never retried.
func (a *App) connect(ctx context.Context, params domain.ConnectionParameters) (ports.SessionPort, error) {
	a.Logger.Debug("connecting", "target", params.SafeString())

	session, err := a.Open(ctx, params)
	if err != nil {
		var connErr *domain.ConnectionError
		if !errors.As(err, &connErr) {
			connErr = &domain.ConnectionError{Target: params.SafeString(), Cause: err}
		}
		a.Logger.Debug("connection failed", "target", connErr.Target, "error", connErr.Cause)
		fmt.Fprintf(a.Stdout, "Connection fail: %s\n", connErr.Error())
		return nil, connErr
	}

	a.Logger.Debug("connected", "target", params.SafeString())
	return session, nil
}
