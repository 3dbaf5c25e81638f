// Package mysql provides the MySQL session adapter implementation.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	mysqldrv "github.com/go-sql-driver/mysql"

	"github.com/enunezf/sqlprompt/internal/core/domain"
)

// Session implements the SessionPort interface for MySQL.
// All statements run on one pinned connection, so USE and session
// variables carry over from one statement to the next.
type Session struct {
	db   *sql.DB
	conn *sql.Conn
}

// DriverConfig translates connection parameters into a driver config
func DriverConfig(params domain.ConnectionParameters) *mysqldrv.Config {
	cfg := mysqldrv.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = params.Address()
	cfg.User = params.User
	if params.HasPassword {
		cfg.Passwd = params.Password
	}
	cfg.DBName = params.Database
	return cfg
}

// SafeDSN returns the driver DSN for params with the password masked
func SafeDSN(params domain.ConnectionParameters) string {
	cfg := DriverConfig(params)
	if cfg.Passwd != "" {
		cfg.Passwd = "***"
	}
	return cfg.FormatDSN()
}

// Open establishes a session to the server described by params.
// Any failure is returned as *domain.ConnectionError.
func Open(ctx context.Context, params domain.ConnectionParameters) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, &domain.ConnectionError{Target: SafeDSN(params), Cause: err}
	}

	connector, err := mysqldrv.NewConnector(DriverConfig(params))
	if err != nil {
		return nil, &domain.ConnectionError{Target: SafeDSN(params), Cause: err}
	}

	db := sql.OpenDB(connector)
	session, err := newSession(ctx, db)
	if err != nil {
		db.Close()
		return nil, &domain.ConnectionError{Target: SafeDSN(params), Cause: err}
	}

	return session, nil
}

// newSession pins a single connection from db and verifies it
func newSession(ctx context.Context, db *sql.DB) (*Session, error) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, err
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return &Session{db: db, conn: conn}, nil
}

// Query submits one statement and fetches every row it returns
func (s *Session) Query(ctx context.Context, sqlText string) (*domain.ResultSet, error) {
	if s.conn == nil {
		return nil, fmt.Errorf("not connected")
	}

	rows, err := s.conn.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, statementError(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, statementError(err)
	}

	rs := &domain.ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, statementError(err)
		}
		rs.Append(values)
	}

	if err := rows.Err(); err != nil {
		return nil, statementError(err)
	}

	return rs, nil
}

// Close releases the pinned connection and closes the pool
func (s *Session) Close() error {
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// statementError keeps only the server's message for rejected statements
func statementError(err error) error {
	var serverErr *mysqldrv.MySQLError
	if errors.As(err, &serverErr) {
		return &domain.StatementError{Message: serverErr.Message, Cause: err}
	}
	return &domain.StatementError{Message: err.Error(), Cause: err}
}
