package tui

import tea "github.com/charmbracelet/bubbletea"

// ConfirmChoice is the outcome of a confirmation modal.
type ConfirmChoice int

const (
	// ConfirmPending means the user has not answered yet.
	ConfirmPending ConfirmChoice = iota
	// ConfirmAccepted means the user explicitly confirmed.
	ConfirmAccepted
	// ConfirmCancelled means the user cancelled or dismissed the modal.
	ConfirmCancelled
)

// ConfirmModel is a modal dialog guarding destructive actions. The guarded
// action must only fire on ConfirmAccepted; cancelling or dismissing leaves
// state unchanged.
type ConfirmModel struct {
	prompt string
	choice ConfirmChoice
}

// NewConfirm creates a pending confirmation modal with the given prompt.
func NewConfirm(prompt string) ConfirmModel {
	return ConfirmModel{prompt: prompt, choice: ConfirmPending}
}

// Update resolves the modal from a key press: "y" accepts, "n" and escape
// cancel. Other keys leave the modal pending.
func (m ConfirmModel) Update(msg tea.KeyMsg) ConfirmModel {
	switch msg.String() {
	case keyYes:
		m.choice = ConfirmAccepted
	case keyNo, keyEsc:
		m.choice = ConfirmCancelled
	}
	return m
}

// Choice returns the modal outcome.
func (m ConfirmModel) Choice() ConfirmChoice {
	return m.choice
}

// Resolved reports whether the user has answered.
func (m ConfirmModel) Resolved() bool {
	return m.choice != ConfirmPending
}

// View renders the boxed modal.
func (m ConfirmModel) View() string {
	content := WarningStyle.Render(m.prompt) + "\n\n" +
		HelpStyle.Render("[y] Confirm  [n/esc] Cancel")
	return BoxStyle.Render(content)
}
