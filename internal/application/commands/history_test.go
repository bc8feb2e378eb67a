package commands

import (
	"context"
	"testing"

	"dwim/internal/domain"
	"dwim/internal/ports"
)

func TestRecentCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{name: "positive limit", limit: 10},
		{name: "zero limit", limit: 0, wantErr: true},
		{name: "negative limit", limit: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRecentCommand(&fakeHistory{}, tt.limit).Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRecentCommand_Execute(t *testing.T) {
	hist := &fakeHistory{recorded: []ports.Visit{
		{Target: domain.Target{Path: "/a/b.py", Line: 42}, Editor: "sublime"},
		{Target: domain.Target{Path: "/a/c.go", Line: 7}, Editor: "vim"},
	}}

	visits, err := NewRecentCommand(hist, 1).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(visits) != 1 {
		t.Fatalf("expected 1 visit, got %d", len(visits))
	}
}

func TestClearHistoryCommand_Execute(t *testing.T) {
	hist := &fakeHistory{recorded: []ports.Visit{
		{Target: domain.Target{Path: "/a/b.py", Line: 1}, Editor: "sublime"},
	}}

	if err := NewClearHistoryCommand(hist).Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hist.recorded) != 0 {
		t.Errorf("expected empty history, got %v", hist.recorded)
	}
}
