package editor

import (
	"fmt"
	"os/exec"

	"dwim/internal/ports"
)

// Emacs opens files with emacs or emacsclient, which take the line as
// a +N argument before the path.
type Emacs struct {
	executable string
	log        ports.Logger
}

var _ ports.Editor = (*Emacs)(nil)

// NewEmacs creates an Emacs backend for the given executable path.
func NewEmacs(executable string, log ports.Logger) *Emacs {
	return &Emacs{executable: executable, log: log}
}

func (e *Emacs) Name() string {
	return "emacs"
}

func (e *Emacs) Args(path string, line int) []string {
	return []string{fmt.Sprintf("+%d", line), NormalizeSourcePath(path)}
}

func (e *Emacs) VisitFile(path string, line int) error {
	return run(e.log, e.executable, e.Args(path, line))
}

func (e *Emacs) Command(path string, line int) (*exec.Cmd, error) {
	return command(e.executable, e.Args(path, line)), nil
}
