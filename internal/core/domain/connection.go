// Package domain contains the core domain models for sqlprompt.
package domain

import (
	"fmt"
	"net"
	"strconv"
)

// DefaultPort is the server port used when -P is not given
const DefaultPort = 3306

// PasswordMode records how the password flag appeared on the command line
type PasswordMode int

const (
	// PasswordAbsent means the flag was not given; no password is sent
	PasswordAbsent PasswordMode = iota
	// PasswordPrompt means the flag was given without a value
	PasswordPrompt
	// PasswordGiven means the flag carried a value
	PasswordGiven
)

// String returns the string representation of the password mode
func (m PasswordMode) String() string {
	switch m {
	case PasswordAbsent:
		return "Absent"
	case PasswordPrompt:
		return "Prompt"
	case PasswordGiven:
		return "Given"
	default:
		return "Unknown"
	}
}

// ConnectionParameters holds everything needed to open a session.
// It is built once by the argument resolver and never modified afterwards.
type ConnectionParameters struct {
	Host        string // Server hostname or IP
	Port        int    // Port number (default 3306)
	User        string // Username
	Password    string // Password, meaningful only when HasPassword is set
	HasPassword bool   // False when no password should be sent at all
	Database    string // Default schema, empty for none
}

// NewConnectionParameters creates connection parameters with defaults
func NewConnectionParameters() ConnectionParameters {
	return ConnectionParameters{Port: DefaultPort}
}

// Address returns the host:port pair to dial
func (p ConnectionParameters) Address() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}

// Validate checks if the parameters are usable
func (p ConnectionParameters) Validate() error {
	if p.Host == "" {
		return fmt.Errorf("host is required")
	}

	if p.User == "" {
		return fmt.Errorf("user is required")
	}

	if p.Port <= 0 || p.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	return nil
}

// SafeString returns a description of the target with the password masked
func (p ConnectionParameters) SafeString() string {
	password := "none"
	if p.HasPassword {
		password = "***"
	}
	database := p.Database
	if database == "" {
		database = "(none)"
	}
	return fmt.Sprintf("Server=%s; Database=%s; User=%s; Password=%s",
		p.Address(), database, p.User, password)
}
