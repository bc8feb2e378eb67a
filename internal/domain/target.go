package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Target is a (path, line) pair pointing into a source file.
// Line is 1-based.
type Target struct {
	Path string
	Line int
}

// Arg renders the target in the canonical path:line form used by
// editor command lines.
func (t Target) Arg() string {
	return fmt.Sprintf("%s:%d", t.Path, t.Line)
}

func (t Target) String() string {
	return t.Arg()
}

// ParseTarget parses the canonical path:line form. The line part is
// optional and defaults to 1. Windows drive letters (C:\...) are not
// treated as line separators.
func ParseTarget(s string) (Target, error) {
	if s == "" {
		return Target{}, fmt.Errorf("empty target")
	}

	idx := strings.LastIndex(s, ":")
	if idx <= 0 || idx == len(s)-1 {
		return Target{Path: s, Line: 1}, nil
	}

	line, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		// Trailing segment is not a number; treat the whole string as a path.
		return Target{Path: s, Line: 1}, nil
	}
	if line < 1 {
		return Target{}, fmt.Errorf("invalid line number %d in %q", line, s)
	}

	return Target{Path: s[:idx], Line: line}, nil
}
