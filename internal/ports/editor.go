package ports

import "os/exec"

// Editor defines the capability of opening a file at a line in an
// external text editor.
type Editor interface {
	// Name returns the backend name used in configuration (e.g. "sublime").
	Name() string

	// Args returns the argument vector passed to the executable for the
	// given target, excluding the executable itself.
	Args(path string, line int) []string

	// VisitFile opens the file at the given 1-based line, blocking until
	// the editor process exits.
	VisitFile(path string, line int) error

	// Command returns an exec.Cmd for opening the target.
	// This is useful for integrating with bubbletea's ExecProcess.
	Command(path string, line int) (*exec.Cmd, error)
}
