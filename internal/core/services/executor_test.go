package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/enunezf/sqlprompt/internal/core/domain"
)

// fakeSession answers every statement from a fixed table
type fakeSession struct {
	results map[string]*domain.ResultSet
	errs    map[string]error
	queries []string
}

func (s *fakeSession) Query(ctx context.Context, sqlText string) (*domain.ResultSet, error) {
	s.queries = append(s.queries, sqlText)
	if err, ok := s.errs[sqlText]; ok {
		return nil, err
	}
	if rs, ok := s.results[sqlText]; ok {
		return rs, nil
	}
	return &domain.ResultSet{}, nil
}

func (s *fakeSession) Close() error { return nil }

func TestExecute(t *testing.T) {
	session := &fakeSession{
		results: map[string]*domain.ResultSet{
			"SELECT id, name FROM t": domain.NewResultSet(
				[]string{"id", "name"},
				[]any{int64(1), []byte("Al")},
				[]any{int64(2), []byte("Bob")},
			),
			"SELECT c FROM t":         domain.NewResultSet([]string{"c"}, []any{"x"}, []any{nil}),
			"SELECT 1 FROM t WHERE 0": domain.NewResultSet([]string{"1"}),
		},
		errs: map[string]error{
			"SELEC":  &domain.StatementError{Message: "You have an error in your SQL syntax"},
			"broken": errors.New("invalid connection"),
		},
	}

	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "Rows",
			sql:  "SELECT id, name FROM t",
			want: "+----+------+\n| id | name |\n+----+------+\n| 1  | Al   |\n| 2  | Bob  |\n+----+------+\n",
		},
		{
			name: "Null",
			sql:  "SELECT c FROM t",
			want: "+------+\n| c    |\n+------+\n| x    |\n| NULL |\n+------+\n",
		},
		{
			name: "ZeroRows",
			sql:  "SELECT 1 FROM t WHERE 0",
			want: "Empty result\n",
		},
		{
			name: "NoResultSet",
			sql:  "SET @a = 1",
			want: "Empty result\n",
		},
		{
			name: "StatementError",
			sql:  "SELEC",
			want: "Error: You have an error in your SQL syntax\n",
		},
		{
			name: "OtherError",
			sql:  "broken",
			want: "Error: invalid connection\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			NewQueryExecutor(session, &out, nil).Execute(context.Background(), test.sql)
			if diff := cmp.Diff(test.want, out.String()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExecuteLogOmitsStatementText(t *testing.T) {
	const statement = "CREATE USER 'app'@'%' IDENTIFIED BY 'hunter2'"
	session := &fakeSession{
		errs: map[string]error{
			statement: &domain.StatementError{Message: "Operation CREATE USER failed"},
		},
	}

	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	NewQueryExecutor(session, &out, logger).Execute(context.Background(), statement)

	if logs.Len() == 0 {
		t.Fatal("nothing logged for a failed statement")
	}
	if strings.Contains(logs.String(), "hunter2") {
		t.Errorf("log contains statement text: %s", logs.String())
	}
	if got, want := out.String(), "Error: Operation CREATE USER failed\n"; got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
}
