package domain

import "fmt"

// ConnectionError reports a failure to open the session. It ends the run.
type ConnectionError struct {
	Target string
	Cause  error
}

func (e *ConnectionError) Error() string {
	return e.Cause.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// StatementError reports a statement the server or driver rejected.
// Message is what gets shown to the user.
type StatementError struct {
	Message string
	Cause   error
}

func (e *StatementError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("statement failed: %v", e.Cause)
}

func (e *StatementError) Unwrap() error {
	return e.Cause
}
