package editor

import (
	"sort"

	"dwim/internal/application"
	"dwim/internal/ports"
)

// defaultExecutables maps backend names to the executable used when the
// configuration does not override it.
var defaultExecutables = map[string]string{
	"sublime": "subl",
	"vim":     "vim",
	"nvim":    "nvim",
	"vscode":  "code",
	"emacs":   "emacsclient",
}

// New returns the backend registered under name. executable overrides
// the backend's default executable when non-empty.
func New(name, executable string, log ports.Logger) (ports.Editor, error) {
	def, ok := defaultExecutables[name]
	if !ok {
		return nil, &application.UnknownEditorError{Name: name, Known: Names()}
	}
	if executable == "" {
		executable = def
	}

	switch name {
	case "sublime":
		return NewSublime(executable, log), nil
	case "vim", "nvim":
		return NewVim(name, executable, log), nil
	case "vscode":
		return NewVSCode(executable, log), nil
	case "emacs":
		return NewEmacs(executable, log), nil
	}
	// Unreachable: defaultExecutables and the switch cover the same names.
	return nil, &application.UnknownEditorError{Name: name, Known: Names()}
}

// Names returns all registered backend names, sorted.
func Names() []string {
	names := make([]string, 0, len(defaultExecutables))
	for name := range defaultExecutables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select builds the backend for name, falling back to the first
// fallback whose executable is on PATH when the primary's is not.
// When nothing is available the primary is returned anyway and the
// exec failure surfaces at open time.
func Select(name, executable string, fallbacks []string, log ports.Logger) (ports.Editor, error) {
	if executable != "" || Available(name, "") {
		return New(name, executable, log)
	}
	for _, fb := range fallbacks {
		if Available(fb, "") {
			return New(fb, "", log)
		}
	}
	return New(name, "", log)
}

// Available reports whether the backend's executable is on PATH.
// executable overrides the default, as in New.
func Available(name, executable string) bool {
	if executable == "" {
		executable = defaultExecutables[name]
	}
	if executable == "" {
		return false
	}
	return commandExists(executable)
}
