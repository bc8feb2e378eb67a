package commands

import (
	"context"

	"dwim/internal/application"
	"dwim/internal/domain"
	"dwim/internal/extract"
)

// ScanCommand extracts file:line targets from terminal text
type ScanCommand struct {
	Text      string
	BaseDir   string
	MustExist bool
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(text, baseDir string, mustExist bool) *ScanCommand {
	return &ScanCommand{
		Text:      text,
		BaseDir:   baseDir,
		MustExist: mustExist,
	}
}

// Execute runs the scan command. It returns application.ErrNoTargets
// when the text contains no usable reference.
func (c *ScanCommand) Execute(ctx context.Context) ([]domain.Target, error) {
	candidates := extract.Candidates(c.Text)
	targets := extract.Resolve(candidates, extract.ResolveOptions{
		BaseDir:   c.BaseDir,
		MustExist: c.MustExist,
	})

	if len(targets) == 0 {
		return nil, application.ErrNoTargets
	}
	return targets, nil
}
