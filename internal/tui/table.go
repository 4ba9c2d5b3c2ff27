package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// searchInputCharLimit bounds the search input length.
const searchInputCharLimit = 64

// searchInputWidth is the rendered width of the search input.
const searchInputWidth = 32

// TableConfig configures a Table renderer. The renderer is stateless with
// respect to data: rows are supplied by the caller and replaced wholesale.
type TableConfig[T any] struct {
	// Columns are the base column descriptors. An action column is appended
	// when Actions has any handler configured.
	Columns []Column[T]

	// Actions are the optional row action handlers.
	Actions Actions[T]

	// Page is the current 1-indexed page.
	Page int

	// PageCount is the externally supplied total page count.
	PageCount int

	// OnPageChange is invoked with page±1 from the pager controls. The
	// renderer only guards via the disabled states; it performs no further
	// bounds clamping.
	OnPageChange func(page int)

	// OnSearch, when set, causes a search input to render above the table.
	// It is invoked with the raw input value on every keystroke.
	OnSearch func(value string)

	// Height is the body height in rows; defaults when zero.
	Height int
}

// Table renders a page of rows under a column set, with loading and empty
// body states, a pager, and an optional search input.
type Table[T any] struct {
	cfg     TableConfig[T]
	columns []Column[T]
	rows    []T
	model   table.Model
	search  textinput.Model
	loading bool
}

// NewTable builds a Table from cfg. It fails when column IDs collide.
func NewTable[T any](cfg TableConfig[T]) (*Table[T], error) {
	columns, err := NewColumnSet(cfg.Columns, cfg.Actions)
	if err != nil {
		return nil, err
	}

	if cfg.Height <= 0 {
		cfg.Height = defaultHeight - minHeight
	}

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = searchInputCharLimit
	ti.Width = searchInputWidth

	t := &Table[T]{
		cfg:     cfg,
		columns: columns,
		search:  ti,
	}
	t.model = t.buildModel(nil)
	return t, nil
}

// SetRows replaces the displayed row set.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = rows
	t.model = t.buildModel(rows)
}

// Rows returns the currently displayed rows.
func (t *Table[T]) Rows() []T {
	return t.rows
}

// Columns returns the composite column set, including any action column.
func (t *Table[T]) Columns() []Column[T] {
	return t.columns
}

// SetHeight resizes the table body, clamped to a usable minimum.
func (t *Table[T]) SetHeight(h int) {
	if h < minHeight {
		h = minHeight
	}
	t.cfg.Height = h
	t.model.SetHeight(h)
}

// Height returns the configured body height.
func (t *Table[T]) Height() int {
	return t.cfg.Height
}

// SetLoading toggles the loading body state.
func (t *Table[T]) SetLoading(v bool) {
	t.loading = v
}

// Loading reports whether the loading body state is active.
func (t *Table[T]) Loading() bool {
	return t.loading
}

// SetPage updates the pager's current page.
func (t *Table[T]) SetPage(page int) {
	t.cfg.Page = page
}

// Page returns the pager's current page.
func (t *Table[T]) Page() int {
	return t.cfg.Page
}

// PageCount returns the externally supplied total page count.
func (t *Table[T]) PageCount() int {
	return t.cfg.PageCount
}

// CanPrev reports whether the Previous control is enabled.
func (t *Table[T]) CanPrev() bool {
	return t.cfg.Page > 1
}

// CanNext reports whether the Next control is enabled.
func (t *Table[T]) CanNext() bool {
	return t.cfg.Page < t.cfg.PageCount
}

// PrevPage invokes the page-change callback with the previous page when the
// control is enabled.
func (t *Table[T]) PrevPage() {
	if t.CanPrev() && t.cfg.OnPageChange != nil {
		t.cfg.OnPageChange(t.cfg.Page - 1)
	}
}

// NextPage invokes the page-change callback with the next page when the
// control is enabled.
func (t *Table[T]) NextPage() {
	if t.CanNext() && t.cfg.OnPageChange != nil {
		t.cfg.OnPageChange(t.cfg.Page + 1)
	}
}

// SelectedRow returns the row under the cursor.
func (t *Table[T]) SelectedRow() (T, bool) {
	var zero T
	cursor := t.model.Cursor()
	if cursor < 0 || cursor >= len(t.rows) {
		return zero, false
	}
	return t.rows[cursor], true
}

// SearchEnabled reports whether the search input is rendered.
func (t *Table[T]) SearchEnabled() bool {
	return t.cfg.OnSearch != nil
}

// SearchFocused reports whether keystrokes are routed to the search input.
func (t *Table[T]) SearchFocused() bool {
	return t.search.Focused()
}

// SearchValue returns the raw search input value.
func (t *Table[T]) SearchValue() string {
	return t.search.Value()
}

// FocusSearch focuses the search input and returns the blink command.
func (t *Table[T]) FocusSearch() tea.Cmd {
	t.search.Focus()
	return textinput.Blink
}

// BlurSearch removes focus from the search input.
func (t *Table[T]) BlurSearch() {
	t.search.Blur()
}

// UpdateSearch routes a message to the search input. The search callback is
// invoked with the raw value on every keystroke, without debouncing.
func (t *Table[T]) UpdateSearch(msg tea.Msg) tea.Cmd {
	before := t.search.Value()
	var cmd tea.Cmd
	t.search, cmd = t.search.Update(msg)
	if t.cfg.OnSearch != nil && t.search.Value() != before {
		t.cfg.OnSearch(t.search.Value())
	}
	return cmd
}

// Update forwards navigation messages to the underlying table model.
func (t *Table[T]) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return cmd
}

// View renders the search input (when enabled), the table body in one of
// its three mutually exclusive states, and the pager.
func (t *Table[T]) View() string {
	var b strings.Builder

	if t.SearchEnabled() {
		b.WriteString("Search: " + t.search.View() + "\n\n")
	}

	switch {
	case t.loading:
		b.WriteString(t.renderPlaceholder("Loading..."))
	case len(t.rows) == 0:
		b.WriteString(t.renderPlaceholder("No results."))
	default:
		b.WriteString(t.model.View())
	}

	b.WriteString("\n")
	b.WriteString(RenderPager(t.cfg.Page, t.cfg.PageCount))
	return b.String()
}

// buildModel constructs the underlying bubbles table for the given rows.
func (t *Table[T]) buildModel(rows []T) table.Model {
	columns := make([]table.Column, len(t.columns))
	for i, col := range t.columns {
		columns[i] = table.Column{Title: col.Title, Width: col.Width}
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		cells := make(table.Row, len(t.columns))
		for j, col := range t.columns {
			cell := col.Cell(row)
			if col.Style != nil {
				cell = col.Style.Render(cell)
			}
			cells[j] = cell
		}
		tableRows[i] = cells
	}

	height := t.cfg.Height
	if len(tableRows) > 0 && len(tableRows) < height {
		height = len(tableRows) + 1
	}

	m := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	m.SetStyles(s)

	return m
}

// renderPlaceholder renders the header row followed by a single placeholder
// line spanning the full table width.
func (t *Table[T]) renderPlaceholder(msg string) string {
	titles := make([]string, len(t.columns))
	total := 0
	for i, col := range t.columns {
		titles[i] = fmt.Sprintf("%-*s", col.Width, col.Title)
		total += col.Width + 1
	}
	header := TableHeaderStyle.Render(strings.Join(titles, " "))
	placeholder := InfoStyle.Width(total).Align(lipgloss.Center).Render(msg)
	return header + "\n" + placeholder
}

// RenderPlainTable writes an unstyled fixed-width table to w for piped and
// non-terminal output. An empty row set renders the "No results."
// placeholder under the header.
func RenderPlainTable[T any](w io.Writer, columns []Column[T], rows []T) error {
	return renderStaticTable(w, columns, rows, false)
}

// RenderStyledTable writes the same fixed-width table with the interactive
// table's header and placeholder styling, for terminal output outside the
// full TUI.
func RenderStyledTable[T any](w io.Writer, columns []Column[T], rows []T) error {
	return renderStaticTable(w, columns, rows, true)
}

func renderStaticTable[T any](w io.Writer, columns []Column[T], rows []T, styled bool) error {
	titles := make([]string, len(columns))
	for i, col := range columns {
		titles[i] = fmt.Sprintf("%-*s", col.Width, col.Title)
	}
	header := strings.TrimRight(strings.Join(titles, "  "), " ")
	if styled {
		header = TableHeaderStyle.Render(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	if len(rows) == 0 {
		placeholder := "No results."
		if styled {
			placeholder = InfoStyle.Render(placeholder)
		}
		_, err := fmt.Fprintln(w, placeholder)
		return err
	}

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = fmt.Sprintf("%-*s", col.Width, col.Cell(row))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}
