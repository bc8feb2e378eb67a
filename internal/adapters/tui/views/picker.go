package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dwim/internal/adapters/tui/styles"
	"dwim/internal/domain"
)

// PickerKeyMap defines key bindings for the picker view
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Copy   key.Binding
	Cancel key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// PickSelectMsg is sent when a candidate is chosen for opening
type PickSelectMsg struct {
	Target domain.Target
}

// PickCancelMsg is sent when the picker is dismissed
type PickCancelMsg struct{}

// PickerModel is the model for the candidate picker view
type PickerModel struct {
	candidates []domain.Target
	filtered   []domain.Target
	input      textinput.Model
	cursor     int
	width      int
	height     int
}

// NewPickerModel creates a picker over the given candidates
func NewPickerModel(candidates []domain.Target) *PickerModel {
	input := textinput.New()
	input.Placeholder = "Filter..."
	input.Focus()

	return &PickerModel{
		candidates: candidates,
		filtered:   candidates,
		input:      input,
	}
}

// Init initializes the picker view
func (m *PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the candidate under the cursor, if any.
func (m *PickerModel) Selected() (domain.Target, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return domain.Target{}, false
	}
	return m.filtered[m.cursor], true
}

// Update handles messages for the picker view
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Cancel):
			return m, func() tea.Msg {
				return PickCancelMsg{}
			}

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Copy):
			if target, ok := m.Selected(); ok {
				clipboard.WriteAll(target.Arg())
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Select):
			if target, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return PickSelectMsg{Target: target}
				}
			}
			return m, nil
		}
	}

	// Update input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter(m.input.Value())

	return m, cmd
}

func (m *PickerModel) applyFilter(query string) {
	if query == "" {
		m.filtered = m.candidates
	} else {
		var filtered []domain.Target
		for _, c := range m.candidates {
			if strings.Contains(c.Path, query) {
				filtered = append(filtered, c)
			}
		}
		m.filtered = filtered
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the picker view
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Open in editor"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedText.Render("No matching targets"))
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d targets", len(m.filtered))))
		b.WriteString("\n\n")

		// Show max 10 candidates
		maxRows := 10
		if len(m.filtered) < maxRows {
			maxRows = len(m.filtered)
		}

		for i := 0; i < maxRows; i++ {
			b.WriteString(m.renderRow(m.filtered[i], i == m.cursor))
			b.WriteString("\n")
		}

		if len(m.filtered) > maxRows {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.filtered)-maxRows)))
		}
	}

	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("open"),
		styles.HelpKey.Render("ctrl+y"),
		styles.HelpDesc.Render("copy"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}

func (m *PickerModel) renderRow(target domain.Target, selected bool) string {
	text := fmt.Sprintf("%s%s", target.Path, styles.LineNumber.Render(fmt.Sprintf(":%d", target.Line)))
	if selected {
		return styles.RowSelected.Render(target.Arg())
	}
	return text
}

// SetSize updates the view dimensions
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
