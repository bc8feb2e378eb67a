// Package extract scans terminal text for file:line references.
package extract

import (
	"regexp"
	"strconv"

	"dwim/internal/domain"
)

// The three reference shapes that show up in terminal scrollback:
// compiler/grep style path:line, Python tracebacks, and MSVC-style
// path(line).
var (
	colonRef     = regexp.MustCompile(`(?m)((?:[A-Za-z]:)?[~\w./\\-]*[\w-]\.\w+):(\d+)`)
	tracebackRef = regexp.MustCompile(`File "([^"]+)", line (\d+)`)
	parenRef     = regexp.MustCompile(`((?:[A-Za-z]:)?[~\w./\\-]*[\w-]\.\w+)\((\d+)\)`)
)

// Candidates scans text for file:line references, in order of
// appearance, with duplicates removed. Lines that parse to zero are
// skipped.
func Candidates(text string) []domain.Target {
	type match struct {
		target domain.Target
		pos    int
	}
	var matches []match

	collect := func(re *regexp.Regexp, pathIdx, lineIdx int) {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			path := text[m[2*pathIdx] : m[2*pathIdx+1]]
			line, err := strconv.Atoi(text[m[2*lineIdx] : m[2*lineIdx+1]])
			if err != nil || line < 1 {
				continue
			}
			matches = append(matches, match{
				target: domain.Target{Path: path, Line: line},
				pos:    m[0],
			})
		}
	}

	collect(tracebackRef, 1, 2)
	collect(colonRef, 1, 2)
	collect(parenRef, 1, 2)

	// Order by position in the text.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j-1].pos > matches[j].pos; j-- {
			matches[j-1], matches[j] = matches[j], matches[j-1]
		}
	}

	seen := make(map[domain.Target]bool)
	var targets []domain.Target
	for _, m := range matches {
		if seen[m.target] {
			continue
		}
		seen[m.target] = true
		targets = append(targets, m.target)
	}
	return targets
}
