package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrProcessFailed = errors.New("process failed")
	ErrNoTargets     = errors.New("no targets found")
	ErrUnknownEditor = errors.New("unknown editor")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ProcessError represents an external process exiting non-zero.
// Command is the space-joined command line, Code the exit status.
type ProcessError struct {
	Command string
	Code    int
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
}

func (e *ProcessError) Is(target error) bool {
	return target == ErrProcessFailed
}

// UnknownEditorError reports a backend name the registry does not know.
type UnknownEditorError struct {
	Name  string
	Known []string
}

func (e *UnknownEditorError) Error() string {
	return fmt.Sprintf("unknown editor %q (known: %v)", e.Name, e.Known)
}

func (e *UnknownEditorError) Is(target error) bool {
	return target == ErrUnknownEditor
}
