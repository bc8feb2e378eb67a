package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dwim/internal/domain"
)

func testCandidates() []domain.Target {
	return []domain.Target{
		{Path: "/srv/app/models.py", Line: 80},
		{Path: "/srv/app/views.py", Line: 12},
		{Path: "/srv/lib/util.go", Line: 3},
	}
}

func TestPickerNavigation(t *testing.T) {
	m := NewPickerModel(testCandidates())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if target, _ := m.Selected(); target.Path != "/srv/app/views.py" {
		t.Errorf("after down, selected = %v", target)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if target, _ := m.Selected(); target.Path != "/srv/app/models.py" {
		t.Errorf("after up, selected = %v", target)
	}

	// Cursor stops at the top.
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if target, _ := m.Selected(); target.Path != "/srv/app/models.py" {
		t.Errorf("cursor moved past top: %v", target)
	}
}

func TestPickerSelect(t *testing.T) {
	m := NewPickerModel(testCandidates())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from select")
	}

	msg := cmd()
	sel, ok := msg.(PickSelectMsg)
	if !ok {
		t.Fatalf("expected PickSelectMsg, got %T", msg)
	}
	if sel.Target.Path != "/srv/app/models.py" || sel.Target.Line != 80 {
		t.Errorf("selected = %v", sel.Target)
	}
}

func TestPickerCancel(t *testing.T) {
	m := NewPickerModel(testCandidates())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command from cancel")
	}
	if _, ok := cmd().(PickCancelMsg); !ok {
		t.Error("expected PickCancelMsg")
	}
}

func TestPickerFilter(t *testing.T) {
	m := NewPickerModel(testCandidates())

	for _, r := range "util" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	target, ok := m.Selected()
	if !ok {
		t.Fatal("expected a selection after filtering")
	}
	if target.Path != "/srv/lib/util.go" {
		t.Errorf("selected = %v, want util.go", target)
	}
}

func TestPickerEmptySelect(t *testing.T) {
	m := NewPickerModel(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command when there is nothing to select")
	}
}

func TestPickerView(t *testing.T) {
	m := NewPickerModel(testCandidates())

	view := m.View()
	if !strings.Contains(view, "models.py") {
		t.Errorf("view missing candidate: %q", view)
	}
	if !strings.Contains(view, "3 targets") {
		t.Errorf("view missing count: %q", view)
	}
}
