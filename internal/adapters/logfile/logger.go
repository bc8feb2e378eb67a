// Package logfile implements ports.Logger on top of an append-only
// log file, so editor invocations can be inspected after the fact.
package logfile

import (
	"log"
	"os"
	"path/filepath"

	"dwim/internal/ports"
)

// Logger writes timestamped lines to a file.
type Logger struct {
	l *log.Logger
	f *os.File
}

var _ ports.Logger = (*Logger)(nil)

// Open creates a logger appending to path, creating parent directories
// as needed. An empty path selects DefaultPath().
func Open(path string) (*Logger, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &Logger{
		l: log.New(f, "", log.LstdFlags),
		f: f,
	}, nil
}

// Log writes one line.
func (lg *Logger) Log(msg string) {
	lg.l.Println(msg)
}

// Close closes the underlying file.
func (lg *Logger) Close() error {
	return lg.f.Close()
}

// DefaultPath returns the log file location under the XDG state
// directory, falling back to /tmp.
func DefaultPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "dwim.log")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "dwim", "dwim.log")
}

type nop struct{}

func (nop) Log(string) {}

// Nop returns a logger that discards everything.
func Nop() ports.Logger {
	return nop{}
}
