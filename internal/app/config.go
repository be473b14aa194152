package app

import (
	"errors"
	"os"
	"path/filepath"
)

// dbFileName is the database file kept in the user's home directory.
const dbFileName = ".tike.db"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DBPath string

	LogFormat string // "text" or "json"
	LogLevel  string // "debug", "info", "warn", "error"
}

// NewConfig validates a Config and fills in logging defaults. The default
// level is warn so that task listings are not interleaved with log lines.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("DBPath is a required configuration field and cannot be empty")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return &cfg, nil
}

// DefaultDBPath returns the database location under the user's home
// directory. os.UserHomeDir covers both HOME and USERPROFILE.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dbFileName), nil
}
