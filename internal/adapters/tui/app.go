package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dwim/internal/adapters/tui/views"
	"dwim/internal/domain"
	"dwim/internal/ports"
)

// App is the candidate picker application model
type App struct {
	editor  ports.Editor
	history ports.HistoryStore // optional

	picker *views.PickerModel

	err error

	width  int
	height int
}

// NewApp creates a picker over the given candidates. history may be
// nil when recording is disabled.
func NewApp(editor ports.Editor, history ports.HistoryStore, candidates []domain.Target) *App {
	return &App{
		editor:  editor,
		history: history,
		picker:  views.NewPickerModel(candidates),
	}
}

// Err returns the error from the last editor invocation, if any.
func (a *App) Err() error {
	return a.err
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.PickCancelMsg:
		return a, tea.Quit

	case views.PickSelectMsg:
		return a, a.openEditor(msg.Target)

	case editorFinishedMsg:
		a.err = msg.err
		if msg.err == nil && a.history != nil {
			a.history.Record(msg.target, a.editor.Name())
		}
		return a, tea.Quit
	}

	// Delegate to the picker
	_, cmd := a.picker.Update(msg)
	return a, cmd
}

type editorFinishedMsg struct {
	target domain.Target
	err    error
}

func (a *App) openEditor(target domain.Target) tea.Cmd {
	cmd, err := a.editor.Command(target.Path, target.Line)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{target: target, err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{target: target, err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	return a.picker.View()
}
