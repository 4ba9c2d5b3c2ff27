package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    int
	Name  string
	Price float64
}

func itemColumns() []Column[item] {
	return []Column[item]{
		{
			ID: "name", Title: "Name", Width: 10,
			Cell: func(i item) string { return i.Name },
			Less: func(a, b item) bool { return a.Name < b.Name },
		},
		{
			ID: "price", Title: "Price", Width: 8,
			Cell: func(i item) string { return fmt.Sprintf("%.2f", i.Price) },
			Less: func(a, b item) bool { return a.Price < b.Price },
		},
	}
}

func TestNewColumnSet(t *testing.T) {
	t.Run("returns base columns when no actions configured", func(t *testing.T) {
		cols, err := NewColumnSet(itemColumns(), Actions[item]{})
		require.NoError(t, err)
		assert.Len(t, cols, 2)
	})

	t.Run("appends action column when delete handler present", func(t *testing.T) {
		cols, err := NewColumnSet(itemColumns(), Actions[item]{
			OnDelete: func(item) {},
		})
		require.NoError(t, err)
		require.Len(t, cols, 3)
		assert.Equal(t, ActionColumnID, cols[2].ID, "action column must be trailing")
		assert.Equal(t, "[d]elete", cols[2].Cell(item{}))
	})

	t.Run("appends action column when edit handler present", func(t *testing.T) {
		cols, err := NewColumnSet(itemColumns(), Actions[item]{
			OnEdit: func(item) {},
		})
		require.NoError(t, err)
		require.Len(t, cols, 3)
		assert.Equal(t, "[e]dit", cols[2].Cell(item{}))
	})

	t.Run("labels both actions when both handlers present", func(t *testing.T) {
		cols, err := NewColumnSet(itemColumns(), Actions[item]{
			OnEdit:   func(item) {},
			OnDelete: func(item) {},
		})
		require.NoError(t, err)
		assert.Equal(t, "[e]dit [d]elete", cols[2].Cell(item{}))
	})

	t.Run("rejects duplicate column ids", func(t *testing.T) {
		cols := itemColumns()
		cols[1].ID = cols[0].ID
		_, err := NewColumnSet(cols, Actions[item]{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate column id")
	})

	t.Run("rejects empty column id", func(t *testing.T) {
		cols := itemColumns()
		cols[0].ID = ""
		_, err := NewColumnSet(cols, Actions[item]{})
		require.Error(t, err)
	})
}

func TestActionsEditRow(t *testing.T) {
	t.Run("route takes precedence over edit callback", func(t *testing.T) {
		var navigated string
		callbackInvoked := false

		actions := Actions[item]{
			Key:       func(i item) string { return "42" },
			EditRoute: "/items/edit",
			Navigate:  func(target string) { navigated = target },
			OnEdit:    func(item) { callbackInvoked = true },
		}

		actions.EditRow(item{ID: 42})

		assert.Equal(t, "/items/edit/42", navigated)
		assert.False(t, callbackInvoked, "edit callback must not fire when a route is configured")
	})

	t.Run("falls back to edit callback without route", func(t *testing.T) {
		var edited *item
		actions := Actions[item]{
			OnEdit: func(i item) { edited = &i },
		}

		actions.EditRow(item{ID: 7, Name: "lot"})

		require.NotNil(t, edited)
		assert.Equal(t, 7, edited.ID)
	})

	t.Run("route without navigate capability uses callback", func(t *testing.T) {
		invoked := false
		actions := Actions[item]{
			EditRoute: "/items/edit",
			OnEdit:    func(item) { invoked = true },
		}

		actions.EditRow(item{})
		assert.True(t, invoked)
	})
}

func TestSortState(t *testing.T) {
	t.Run("toggle promotes new column ascending", func(t *testing.T) {
		var s SortState
		s.Toggle("price")

		primary, ok := s.Primary()
		require.True(t, ok)
		assert.Equal(t, "price", primary.ColumnID)
		assert.Equal(t, SortAsc, primary.Direction)
	})

	t.Run("toggle flips direction for the primary column", func(t *testing.T) {
		var s SortState
		s.Toggle("price")
		s.Toggle("price")

		primary, _ := s.Primary()
		assert.Equal(t, SortDesc, primary.Direction)

		s.Toggle("price")
		primary, _ = s.Primary()
		assert.Equal(t, SortAsc, primary.Direction)
	})

	t.Run("prior keys remain as tie breakers", func(t *testing.T) {
		var s SortState
		s.Toggle("price")
		s.Toggle("name")

		entries := s.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "name", entries[0].ColumnID)
		assert.Equal(t, "price", entries[1].ColumnID)
	})
}

func TestApplySort(t *testing.T) {
	rows := []item{
		{ID: 1, Name: "b", Price: 3},
		{ID: 2, Name: "a", Price: 1},
		{ID: 3, Name: "c", Price: 2},
	}

	t.Run("sorts ascending by column", func(t *testing.T) {
		var s SortState
		s.Toggle("price")

		sorted := ApplySort(rows, itemColumns(), s)
		require.Len(t, sorted, 3)
		assert.Equal(t, []int{2, 3, 1}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	})

	t.Run("sorts descending after second toggle", func(t *testing.T) {
		var s SortState
		s.Toggle("price")
		s.Toggle("price")

		sorted := ApplySort(rows, itemColumns(), s)
		assert.Equal(t, []int{1, 3, 2}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		var s SortState
		s.Toggle("name")

		_ = ApplySort(rows, itemColumns(), s)
		assert.Equal(t, 1, rows[0].ID)
	})

	t.Run("skips entries for unsortable columns", func(t *testing.T) {
		var s SortState
		s.Toggle("unknown")

		sorted := ApplySort(rows, itemColumns(), s)
		assert.Equal(t, rows, sorted)
	})
}
