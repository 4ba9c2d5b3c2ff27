package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Column describes how to label and render one table column for rows of
// type T.
type Column[T any] struct {
	// ID uniquely identifies the column within a column set.
	ID string

	// Title is the display header.
	Title string

	// Width is the rendered cell width in characters.
	Width int

	// Cell renders the column's value for a row.
	Cell func(row T) string

	// Less orders two rows by this column. A nil Less marks the column as
	// not sortable.
	Less func(a, b T) bool

	// Style optionally overrides the cell style for this column.
	Style *lipgloss.Style
}

// ActionColumnID is the identifier of the synthetic trailing action column.
const ActionColumnID = "actions"

// actionColumnWidth fits "[e]dit [d]elete" with padding.
const actionColumnWidth = 16

// Actions bundles the optional row action handlers. The action column is
// appended to a column set only when at least one handler is configured.
type Actions[T any] struct {
	// Key extracts the row identifier used to build navigation targets.
	Key func(row T) string

	// OnEdit is invoked with the full row when no edit route is configured.
	OnEdit func(row T)

	// OnDelete is invoked with the full row after explicit confirmation.
	OnDelete func(row T)

	// EditRoute is a route template; editing navigates to
	// "<EditRoute>/<key>" when both EditRoute and Navigate are set.
	EditRoute string

	// Navigate is the injected navigation capability.
	Navigate func(target string)
}

// Active reports whether any action handler is configured.
func (a Actions[T]) Active() bool {
	return a.OnEdit != nil || a.OnDelete != nil || a.editRouteActive()
}

// CanEdit reports whether the edit action can fire for rows.
func (a Actions[T]) CanEdit() bool {
	return a.OnEdit != nil || a.editRouteActive()
}

// CanDelete reports whether the delete action can fire for rows.
func (a Actions[T]) CanDelete() bool {
	return a.OnDelete != nil
}

func (a Actions[T]) editRouteActive() bool {
	return a.EditRoute != "" && a.Navigate != nil
}

// EditRow dispatches the edit action for a row. The route takes precedence:
// when an edit route and navigate capability are configured, the edit
// callback is never invoked, even if supplied.
func (a Actions[T]) EditRow(row T) {
	if a.editRouteActive() {
		key := ""
		if a.Key != nil {
			key = a.Key(row)
		}
		a.Navigate(a.EditRoute + "/" + key)
		return
	}
	if a.OnEdit != nil {
		a.OnEdit(row)
	}
}

// NewColumnSet validates base column IDs and appends the action column when
// any handler is configured. The action column is always trailing, never
// prepended.
func NewColumnSet[T any](base []Column[T], actions Actions[T]) ([]Column[T], error) {
	seen := make(map[string]struct{}, len(base)+1)
	for _, col := range base {
		if col.ID == "" {
			return nil, fmt.Errorf("column %q has an empty id", col.Title)
		}
		if _, dup := seen[col.ID]; dup {
			return nil, fmt.Errorf("duplicate column id %q", col.ID)
		}
		seen[col.ID] = struct{}{}
	}

	if !actions.Active() {
		return base, nil
	}
	if _, dup := seen[ActionColumnID]; dup {
		return nil, fmt.Errorf("duplicate column id %q", ActionColumnID)
	}

	label := actionLabel(actions.CanEdit(), actions.CanDelete())
	cols := make([]Column[T], 0, len(base)+1)
	cols = append(cols, base...)
	cols = append(cols, Column[T]{
		ID:    ActionColumnID,
		Title: "Actions",
		Width: actionColumnWidth,
		Cell:  func(T) string { return label },
	})
	return cols, nil
}

func actionLabel(canEdit, canDelete bool) string {
	switch {
	case canEdit && canDelete:
		return "[e]dit [d]elete"
	case canEdit:
		return "[e]dit"
	default:
		return "[d]elete"
	}
}

// SortDirection is the order applied to a sorted column.
type SortDirection int

const (
	// SortAsc sorts ascending.
	SortAsc SortDirection = iota
	// SortDesc sorts descending.
	SortDesc
)

// SortEntry pairs a column id with a direction.
type SortEntry struct {
	ColumnID  string
	Direction SortDirection
}

// SortState is an ordered sequence of sort entries. The head entry is the
// primary sort key. The state is purely client-side: it reorders only the
// currently loaded page and never triggers a refetch.
type SortState struct {
	entries []SortEntry
}

// Toggle flips the direction when columnID is already the primary key, and
// otherwise promotes columnID to the primary key sorted ascending. Prior
// keys remain as tie breakers.
func (s *SortState) Toggle(columnID string) {
	if len(s.entries) > 0 && s.entries[0].ColumnID == columnID {
		if s.entries[0].Direction == SortAsc {
			s.entries[0].Direction = SortDesc
		} else {
			s.entries[0].Direction = SortAsc
		}
		return
	}

	next := []SortEntry{{ColumnID: columnID, Direction: SortAsc}}
	for _, e := range s.entries {
		if e.ColumnID != columnID {
			next = append(next, e)
		}
	}
	s.entries = next
}

// Entries returns a copy of the sort entries, primary key first.
func (s *SortState) Entries() []SortEntry {
	out := make([]SortEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Primary returns the primary sort entry, if any.
func (s *SortState) Primary() (SortEntry, bool) {
	if len(s.entries) == 0 {
		return SortEntry{}, false
	}
	return s.entries[0], true
}

// ApplySort returns rows reordered by state using the columns' Less
// functions. Entries referencing unknown or unsortable columns are skipped.
// The input slice is not mutated.
func ApplySort[T any](rows []T, columns []Column[T], state SortState) []T {
	entries := state.Entries()
	if len(entries) == 0 || len(rows) < 2 {
		out := make([]T, len(rows))
		copy(out, rows)
		return out
	}

	less := make(map[string]func(a, b T) bool, len(columns))
	for _, col := range columns {
		if col.Less != nil {
			less[col.ID] = col.Less
		}
	}

	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		for _, e := range entries {
			cmp, ok := less[e.ColumnID]
			if !ok {
				continue
			}
			a, b := out[i], out[j]
			if e.Direction == SortDesc {
				a, b = b, a
			}
			switch {
			case cmp(a, b):
				return true
			case cmp(b, a):
				return false
			}
		}
		return false
	})
	return out
}
