package extract

import (
	"os"
	"path/filepath"

	"dwim/internal/domain"
)

// ResolveOptions controls how raw candidates are anchored to the
// filesystem.
type ResolveOptions struct {
	// BaseDir anchors relative paths. Empty means the current directory.
	BaseDir string

	// MustExist drops candidates whose path does not stat as a regular
	// file.
	MustExist bool
}

// Resolve expands ~ and anchors relative candidate paths, optionally
// filtering out paths that do not exist.
func Resolve(targets []domain.Target, opts ResolveOptions) []domain.Target {
	var resolved []domain.Target
	for _, t := range targets {
		path := expandHome(t.Path)
		if !filepath.IsAbs(path) && opts.BaseDir != "" {
			path = filepath.Join(opts.BaseDir, path)
		}
		path = filepath.Clean(path)

		if opts.MustExist {
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
		}
		resolved = append(resolved, domain.Target{Path: path, Line: t.Line})
	}
	return resolved
}

func expandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
