package ports

import (
	"time"

	"dwim/internal/domain"
)

// Visit is one recorded editor open.
type Visit struct {
	Target   domain.Target
	Editor   string
	OpenedAt time.Time
}

// HistoryStore persists the targets that were opened.
type HistoryStore interface {
	// Record stores one visit.
	Record(target domain.Target, editor string) error

	// Recent returns up to limit visits, newest first.
	Recent(limit int) ([]Visit, error)

	// Clear removes all recorded visits.
	Clear() error

	Close() error
}
