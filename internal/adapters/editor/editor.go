// Package editor implements ports.Editor backends that shell out to the
// command-line executables of text editors.
package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"dwim/internal/application"
	"dwim/internal/ports"
)

// NormalizeSourcePath rewrites a compiled-bytecode path to its source
// counterpart (.pyc -> .py). All other paths pass through unchanged.
func NormalizeSourcePath(path string) string {
	if strings.HasSuffix(path, ".pyc") {
		return strings.TrimSuffix(path, ".pyc") + ".py"
	}
	return path
}

// run logs the assembled command, executes it synchronously and maps a
// non-zero exit status to *application.ProcessError.
func run(log ports.Logger, executable string, args []string) error {
	line := strings.Join(append([]string{executable}, args...), " ")
	log.Log(line)

	cmd := exec.Command(executable, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &application.ProcessError{Command: line, Code: exitErr.ExitCode()}
		}
		return err
	}
	return nil
}

// command builds an exec.Cmd for a backend without running it.
func command(executable string, args []string) *exec.Cmd {
	cmd := exec.Command(executable, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
