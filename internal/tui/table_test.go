package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, cfg TableConfig[item]) *Table[item] {
	t.Helper()
	if cfg.Columns == nil {
		cfg.Columns = itemColumns()
	}
	tbl, err := NewTable(cfg)
	require.NoError(t, err)
	return tbl
}

func TestTableBodyStates(t *testing.T) {
	t.Run("loading renders single placeholder regardless of rows", func(t *testing.T) {
		tbl := newTestTable(t, TableConfig[item]{Page: 1, PageCount: 3})
		tbl.SetRows([]item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
		tbl.SetLoading(true)

		view := tbl.View()
		assert.Equal(t, 1, strings.Count(view, "Loading..."))
		assert.NotContains(t, view, "No results.")
	})

	t.Run("empty renders no-results placeholder", func(t *testing.T) {
		tbl := newTestTable(t, TableConfig[item]{Page: 1, PageCount: 3})
		tbl.SetRows(nil)

		view := tbl.View()
		assert.Contains(t, view, "No results.")
		assert.NotContains(t, view, "Loading...")
	})

	t.Run("populated renders one row per record", func(t *testing.T) {
		tbl := newTestTable(t, TableConfig[item]{Page: 1, PageCount: 3})
		rows := []item{{ID: 1, Name: "alpha"}, {ID: 2, Name: "beta"}, {ID: 3, Name: "gamma"}}
		tbl.SetRows(rows)

		view := tbl.View()
		assert.NotContains(t, view, "Loading...")
		assert.NotContains(t, view, "No results.")
		for _, r := range rows {
			assert.Contains(t, view, r.Name)
		}
		assert.Len(t, tbl.Rows(), 3)
	})
}

func TestTablePager(t *testing.T) {
	t.Run("previous disabled only on first page", func(t *testing.T) {
		tbl := newTestTable(t, TableConfig[item]{Page: 1, PageCount: 10})
		assert.False(t, tbl.CanPrev())
		assert.True(t, tbl.CanNext())

		tbl.SetPage(2)
		assert.True(t, tbl.CanPrev())
	})

	t.Run("next disabled only on last page", func(t *testing.T) {
		tbl := newTestTable(t, TableConfig[item]{Page: 10, PageCount: 10})
		assert.True(t, tbl.CanPrev())
		assert.False(t, tbl.CanNext())
	})

	t.Run("page change callback receives adjacent pages", func(t *testing.T) {
		var got []int
		tbl := newTestTable(t, TableConfig[item]{
			Page:         5,
			PageCount:    10,
			OnPageChange: func(p int) { got = append(got, p) },
		})

		tbl.NextPage()
		tbl.PrevPage()
		assert.Equal(t, []int{6, 4}, got)
	})

	t.Run("disabled controls do not fire", func(t *testing.T) {
		fired := false
		tbl := newTestTable(t, TableConfig[item]{
			Page:         1,
			PageCount:    1,
			OnPageChange: func(int) { fired = true },
		})

		tbl.PrevPage()
		tbl.NextPage()
		assert.False(t, fired)
	})

	t.Run("view shows page position", func(t *testing.T) {
		tbl := newTestTable(t, TableConfig[item]{Page: 3, PageCount: 10})
		tbl.SetRows([]item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})

		assert.Contains(t, tbl.View(), "Page 3 of 10")
	})
}

func TestTableSearch(t *testing.T) {
	t.Run("search input hidden without callback", func(t *testing.T) {
		tbl := newTestTable(t, TableConfig[item]{Page: 1, PageCount: 1})
		assert.False(t, tbl.SearchEnabled())
		assert.NotContains(t, tbl.View(), "Search:")
	})

	t.Run("callback fires on every keystroke with raw value", func(t *testing.T) {
		var values []string
		tbl := newTestTable(t, TableConfig[item]{
			Page:      1,
			PageCount: 1,
			OnSearch:  func(v string) { values = append(values, v) },
		})
		require.True(t, tbl.SearchEnabled())
		assert.Contains(t, tbl.View(), "Search:")

		tbl.FocusSearch()
		tbl.UpdateSearch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
		tbl.UpdateSearch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

		assert.Equal(t, []string{"h", "ha"}, values)
	})
}

func TestRenderPager(t *testing.T) {
	out := RenderPager(3, 10)
	assert.Contains(t, out, "Page 3 of 10")
	assert.Contains(t, out, "Previous")
	assert.Contains(t, out, "Next")
}

func TestRenderPlainTable(t *testing.T) {
	t.Run("renders header and rows", func(t *testing.T) {
		var buf bytes.Buffer
		rows := []item{{ID: 1, Name: "alpha"}, {ID: 2, Name: "beta"}}

		err := RenderPlainTable(&buf, itemColumns(), rows)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "Name")
		assert.Contains(t, lines[1], "alpha")
		assert.Contains(t, lines[2], "beta")
	})

	t.Run("renders placeholder for empty row set", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderPlainTable(&buf, itemColumns(), nil)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "No results.")
	})
}

func TestRenderStyledTable(t *testing.T) {
	t.Run("renders header and rows", func(t *testing.T) {
		var buf bytes.Buffer
		rows := []item{{ID: 1, Name: "alpha"}, {ID: 2, Name: "beta"}}

		err := RenderStyledTable(&buf, itemColumns(), rows)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "Name")
		assert.Contains(t, out, "alpha")
		assert.Contains(t, out, "beta")
	})

	t.Run("renders placeholder for empty row set", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderStyledTable(&buf, itemColumns(), nil)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "No results.")
	})
}

func TestTableSetHeight(t *testing.T) {
	tbl := newTestTable(t, TableConfig[item]{Page: 1, PageCount: 1})

	tbl.SetHeight(20)
	assert.Equal(t, 20, tbl.Height())

	tbl.SetHeight(1)
	assert.Equal(t, minHeight, tbl.Height(), "height must clamp to a usable minimum")
}
