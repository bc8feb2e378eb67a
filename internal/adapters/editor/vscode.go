package editor

import (
	"os/exec"

	"dwim/internal/domain"
	"dwim/internal/ports"
)

// VSCode opens files with Visual Studio Code, which takes a
// --goto path:line argument.
type VSCode struct {
	executable string
	log        ports.Logger
}

var _ ports.Editor = (*VSCode)(nil)

// NewVSCode creates a VS Code backend for the given executable path.
func NewVSCode(executable string, log ports.Logger) *VSCode {
	return &VSCode{executable: executable, log: log}
}

func (v *VSCode) Name() string {
	return "vscode"
}

func (v *VSCode) Args(path string, line int) []string {
	path = NormalizeSourcePath(path)
	return []string{"--goto", domain.Target{Path: path, Line: line}.Arg()}
}

func (v *VSCode) VisitFile(path string, line int) error {
	return run(v.log, v.executable, v.Args(path, line))
}

func (v *VSCode) Command(path string, line int) (*exec.Cmd, error) {
	return command(v.executable, v.Args(path, line)), nil
}
