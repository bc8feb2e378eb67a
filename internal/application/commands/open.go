package commands

import (
	"context"
	"fmt"

	"dwim/internal/application"
	"dwim/internal/domain"
	"dwim/internal/ports"
)

// OpenResult contains the result of opening a target
type OpenResult struct {
	Target  domain.Target
	Editor  string
	Message string
}

// OpenCommand opens one target in the configured editor
type OpenCommand struct {
	editor  ports.Editor
	history ports.HistoryStore // optional
	Target  domain.Target
}

// NewOpenCommand creates a new OpenCommand. history may be nil when
// recording is disabled.
func NewOpenCommand(editor ports.Editor, history ports.HistoryStore, target domain.Target) *OpenCommand {
	return &OpenCommand{
		editor:  editor,
		history: history,
		Target:  target,
	}
}

// Validate checks if the open operation is valid
func (c *OpenCommand) Validate() error {
	if c.Target.Path == "" {
		return &application.ValidationError{
			Field:   "path",
			Message: "path is required",
		}
	}

	if c.Target.Line < 1 {
		return &application.ValidationError{
			Field:   "line",
			Message: fmt.Sprintf("line must be positive, got %d", c.Target.Line),
		}
	}

	return nil
}

// Execute runs the open command
func (c *OpenCommand) Execute(ctx context.Context) (*OpenResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.editor.VisitFile(c.Target.Path, c.Target.Line); err != nil {
		return nil, err
	}

	if c.history != nil {
		// A failed history write should not mask a successful open.
		_ = c.history.Record(c.Target, c.editor.Name())
	}

	return &OpenResult{
		Target:  c.Target,
		Editor:  c.editor.Name(),
		Message: fmt.Sprintf("Opened %s in %s", c.Target, c.editor.Name()),
	}, nil
}
