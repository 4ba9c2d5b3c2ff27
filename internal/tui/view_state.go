package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewState identifies the active screen of the browse TUI.
type ViewState int

const (
	// ViewStateList shows the paginated table.
	ViewStateList ViewState = iota
	// ViewStateConfirmDelete shows the delete confirmation modal.
	ViewStateConfirmDelete
	// ViewStateQuitting means the program is exiting.
	ViewStateQuitting
)

// Key bindings shared across models.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keySort     = "s"
	keyReverse  = "r"
	keyEdit     = "e"
	keyDelete   = "d"
	keyNext     = "n"
	keyPrev     = "p"
	keyYes      = "y"
	keyNo       = "n"
	keyRight    = "right"
	keyLeft     = "left"
	keyPgUp     = "pgup"
	keyPgDown   = "pgdown"
)

// Default display dimensions before the first WindowSizeMsg arrives.
const (
	defaultHeight = 30
	minHeight     = 5
)

// LoadingState wraps the spinner shown while a page fetch is in flight. The
// table body placeholder carries the "Loading..." text, so the spinner line
// renders only the animation.
type LoadingState struct {
	spinner spinner.Model
}

// NewLoadingState creates a LoadingState.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	return &LoadingState{spinner: s}
}

// Init returns the spinner tick command.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner animation.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner animation.
func (l *LoadingState) View() string {
	return l.spinner.View()
}
