package commands

import (
	"context"

	"dwim/internal/application"
	"dwim/internal/ports"
)

// RecentCommand lists recently opened targets
type RecentCommand struct {
	history ports.HistoryStore
	Limit   int
}

// NewRecentCommand creates a new RecentCommand
func NewRecentCommand(history ports.HistoryStore, limit int) *RecentCommand {
	return &RecentCommand{history: history, Limit: limit}
}

// Validate checks if the list operation is valid
func (c *RecentCommand) Validate() error {
	if c.Limit < 1 {
		return &application.ValidationError{
			Field:   "limit",
			Message: "limit must be positive",
		}
	}
	return nil
}

// Execute runs the recent command
func (c *RecentCommand) Execute(ctx context.Context) ([]ports.Visit, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.history.Recent(c.Limit)
}

// ClearHistoryCommand removes all recorded visits
type ClearHistoryCommand struct {
	history ports.HistoryStore
}

// NewClearHistoryCommand creates a new ClearHistoryCommand
func NewClearHistoryCommand(history ports.HistoryStore) *ClearHistoryCommand {
	return &ClearHistoryCommand{history: history}
}

// Execute runs the clear command
func (c *ClearHistoryCommand) Execute(ctx context.Context) error {
	return c.history.Clear()
}
