package editor

import (
	"fmt"
	"os/exec"

	"dwim/internal/ports"
)

// Vim opens files with vim-compatible editors (vim, nvim, vi), which
// take the line as a +N argument before the path.
type Vim struct {
	name       string
	executable string
	log        ports.Logger
}

var _ ports.Editor = (*Vim)(nil)

// NewVim creates a vim backend. name distinguishes the vim-family
// variants registered under different configuration names.
func NewVim(name, executable string, log ports.Logger) *Vim {
	return &Vim{name: name, executable: executable, log: log}
}

func (v *Vim) Name() string {
	return v.name
}

func (v *Vim) Args(path string, line int) []string {
	return []string{fmt.Sprintf("+%d", line), NormalizeSourcePath(path)}
}

func (v *Vim) VisitFile(path string, line int) error {
	return run(v.log, v.executable, v.Args(path, line))
}

func (v *Vim) Command(path string, line int) (*exec.Cmd, error) {
	return command(v.executable, v.Args(path, line)), nil
}
