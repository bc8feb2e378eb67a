package editor

import (
	"os/exec"

	"dwim/internal/domain"
	"dwim/internal/ports"
)

// Sublime opens files with Sublime Text's subl executable, which takes
// a single path:line positional argument.
type Sublime struct {
	executable string
	log        ports.Logger
}

var _ ports.Editor = (*Sublime)(nil)

// NewSublime creates a Sublime backend for the given executable path.
func NewSublime(executable string, log ports.Logger) *Sublime {
	return &Sublime{executable: executable, log: log}
}

func (s *Sublime) Name() string {
	return "sublime"
}

func (s *Sublime) Args(path string, line int) []string {
	path = NormalizeSourcePath(path)
	return []string{domain.Target{Path: path, Line: line}.Arg()}
}

func (s *Sublime) VisitFile(path string, line int) error {
	return run(s.log, s.executable, s.Args(path, line))
}

func (s *Sublime) Command(path string, line int) (*exec.Cmd, error) {
	return command(s.executable, s.Args(path, line)), nil
}
