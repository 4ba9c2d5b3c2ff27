package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestConfirmModel(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		m := NewConfirm("Delete auction 42?")
		assert.False(t, m.Resolved())
		assert.Equal(t, ConfirmPending, m.Choice())
	})

	t.Run("y accepts", func(t *testing.T) {
		m := NewConfirm("Delete auction 42?")
		m = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
		assert.True(t, m.Resolved())
		assert.Equal(t, ConfirmAccepted, m.Choice())
	})

	t.Run("n cancels", func(t *testing.T) {
		m := NewConfirm("Delete auction 42?")
		m = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
		assert.Equal(t, ConfirmCancelled, m.Choice())
	})

	t.Run("escape dismisses", func(t *testing.T) {
		m := NewConfirm("Delete auction 42?")
		m = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.Equal(t, ConfirmCancelled, m.Choice())
	})

	t.Run("unrelated keys leave the modal pending", func(t *testing.T) {
		m := NewConfirm("Delete auction 42?")
		m = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
		assert.False(t, m.Resolved())
	})

	t.Run("view shows prompt and choices", func(t *testing.T) {
		m := NewConfirm("Delete auction 42?")
		view := m.View()
		assert.Contains(t, view, "Delete auction 42?")
		assert.Contains(t, view, "[y] Confirm")
	})
}
