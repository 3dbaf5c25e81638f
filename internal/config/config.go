package config

import (
	"log/slog"
	"strings"
)

// Config represents the application configuration.
type Config struct {
	Client      Client      `mapstructure:"client" yaml:"client"`
	Preferences Preferences `mapstructure:"preferences" yaml:"preferences"`
}

// Client holds connection defaults used when the matching flag is not given.
// Passwords are deliberately not part of it.
type Client struct {
	Host     string `mapstructure:"host" yaml:"host"`
	User     string `mapstructure:"user" yaml:"user"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Database string `mapstructure:"database" yaml:"database"`
}

// Preferences holds user preferences.
type Preferences struct {
	HistoryFile string `mapstructure:"history_file" yaml:"history_file"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
}

// Level returns the configured log level, warn when unset or invalid.
func (p Preferences) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(p.LogLevel))); err != nil {
		return slog.LevelWarn
	}
	return level
}
