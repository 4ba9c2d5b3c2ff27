package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkivimagi/auctionview/internal/auction"
	"github.com/mkivimagi/auctionview/internal/logging"
)

// FetchFunc fetches one zero-indexed page of auction records.
type FetchFunc func(ctx context.Context, page, size int) ([]auction.Record, error)

// pageLoadedMsg is sent when a page fetch completes. seq identifies the
// fetch so responses for superseded requests can be discarded.
type pageLoadedMsg struct {
	seq     uint64
	page    int
	records []auction.Record
	err     error
}

// BrowseConfig configures the browse screen.
type BrowseConfig struct {
	// Columns are the base column descriptors for auction records.
	Columns []Column[auction.Record]

	// Actions are the optional row action handlers.
	Actions Actions[auction.Record]

	// Page is the initial 1-indexed page.
	Page int

	// PageCount is the total page count shown by the pager. The endpoint
	// returns no pagination metadata, so this comes from configuration.
	PageCount int

	// PageSize is the fixed number of records per page.
	PageSize int

	// EnableSearch renders the search input above the table.
	EnableSearch bool
}

// BrowseModel is the Bubble Tea model for the paginated auction table. It
// owns the current page and loading state, triggers one fetch per page
// change, and replaces the row set wholesale on success.
type BrowseModel struct {
	ctx   context.Context
	fetch FetchFunc

	state ViewState
	table *Table[auction.Record]

	page      int
	pageCount int
	pageSize  int

	// fetchSeq tags each fetch; responses carrying an older seq are stale
	// and discarded so a late response never overwrites a newer page.
	fetchSeq uint64

	// pendingPage holds a page-change request made through the renderer's
	// callback until the update loop turns it into a fetch command.
	pendingPage int

	// allRows is the current page as fetched, before filter and sort.
	allRows []auction.Record

	sort        SortState
	sortIdx     int
	sortColumns []Column[auction.Record]

	confirm       ConfirmModel
	pendingDelete *auction.Record
	actions       Actions[auction.Record]

	loadingState *LoadingState
}

// browseChromeHeight is the rows consumed around the table body: the header,
// search input, pager, spinner, and help line.
const browseChromeHeight = 8

// NewBrowseModel creates the browse screen. It fails when the column set is
// invalid.
func NewBrowseModel(ctx context.Context, fetch FetchFunc, cfg BrowseConfig) (*BrowseModel, error) {
	m := &BrowseModel{
		ctx:          ctx,
		fetch:        fetch,
		state:        ViewStateList,
		page:         cfg.Page,
		pageCount:    cfg.PageCount,
		pageSize:     cfg.PageSize,
		actions:      cfg.Actions,
		loadingState: NewLoadingState(),
	}
	if m.page < 1 {
		m.page = 1
	}

	for _, col := range cfg.Columns {
		if col.Less != nil {
			m.sortColumns = append(m.sortColumns, col)
		}
	}

	tableCfg := TableConfig[auction.Record]{
		Columns:      cfg.Columns,
		Actions:      cfg.Actions,
		Page:         m.page,
		PageCount:    cfg.PageCount,
		OnPageChange: func(page int) { m.pendingPage = page },
	}
	if cfg.EnableSearch {
		tableCfg.OnSearch = func(string) { m.refreshRows() }
	}

	t, err := NewTable(tableCfg)
	if err != nil {
		return nil, err
	}
	m.table = t

	return m, nil
}

// Init starts the spinner and issues the first page fetch.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.loadingState.Init(), m.fetchCmd())
}

// Update handles messages and updates the model state.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - browseChromeHeight)
		return m, nil

	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.table.Loading() {
		return m, m.loadingState.Update(msg)
	}
	return m, nil
}

func (m *BrowseModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == ViewStateConfirmDelete {
		return m.handleConfirmKey(msg)
	}

	if m.table.SearchFocused() {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit

	case keyNext, keyRight, keyPgDown:
		m.table.NextPage()
		return m, m.takePendingPage()

	case keyPrev, keyLeft, keyPgUp:
		m.table.PrevPage()
		return m, m.takePendingPage()

	case keySlash:
		if m.table.SearchEnabled() {
			return m, m.table.FocusSearch()
		}
		return m, nil

	case keySort:
		m.cycleSort()
		return m, nil

	case keyReverse:
		m.reverseSort()
		return m, nil

	case keyEdit:
		if row, ok := m.table.SelectedRow(); ok && m.actions.CanEdit() {
			m.actions.EditRow(row)
		}
		return m, nil

	case keyDelete:
		if row, ok := m.table.SelectedRow(); ok && m.actions.CanDelete() {
			m.pendingDelete = &row
			m.confirm = NewConfirm(fmt.Sprintf("Delete auction %s (%s)?", row.Key(), row.Auctioneer))
			m.state = ViewStateConfirmDelete
		}
		return m, nil

	default:
		return m, m.table.Update(msg)
	}
}

func (m *BrowseModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc:
		m.table.BlurSearch()
		return m, nil
	}
	cmd := m.table.UpdateSearch(msg)
	return m, cmd
}

func (m *BrowseModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirm = m.confirm.Update(msg)
	if !m.confirm.Resolved() {
		return m, nil
	}

	if m.confirm.Choice() == ConfirmAccepted && m.pendingDelete != nil && m.actions.OnDelete != nil {
		logging.FromContext(m.ctx).Info().
			Int64("id", m.pendingDelete.ID).
			Msg("delete confirmed")
		m.actions.OnDelete(*m.pendingDelete)
	}

	m.pendingDelete = nil
	m.state = ViewStateList
	return m, nil
}

// takePendingPage converts a pager callback invocation into a fetch command.
func (m *BrowseModel) takePendingPage() tea.Cmd {
	if m.pendingPage == 0 || m.pendingPage == m.page {
		m.pendingPage = 0
		return nil
	}
	m.page = m.pendingPage
	m.pendingPage = 0
	m.table.SetPage(m.page)
	return m.fetchCmd()
}

// fetchCmd issues a fetch for the current page. The loading flag is raised
// before the request and cleared when its response (or a failure) arrives.
func (m *BrowseModel) fetchCmd() tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	page := m.page
	size := m.pageSize
	fetch := m.fetch

	m.table.SetLoading(true)

	ctx := logging.ContextWithTraceID(m.ctx, logging.NewTraceID())

	return tea.Batch(m.loadingState.Init(), func() tea.Msg {
		// The wire contract is zero-indexed.
		records, err := fetch(ctx, page-1, size)
		return pageLoadedMsg{seq: seq, page: page, records: records, err: err}
	})
}

func (m *BrowseModel) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)

	if msg.seq != m.fetchSeq {
		// A newer fetch superseded this one; its response will clear the
		// loading state.
		log.Debug().Int("page", msg.page).Msg("discarding stale page response")
		return m, nil
	}

	m.table.SetLoading(false)

	if msg.err != nil {
		// Keep whatever was displayed before the request began.
		log.Error().Err(msg.err).Int("page", msg.page).Msg("page fetch failed")
		return m, nil
	}

	m.allRows = msg.records
	m.refreshRows()
	return m, nil
}

// refreshRows reapplies the search filter and sort state to the fetched
// page and replaces the rendered rows.
func (m *BrowseModel) refreshRows() {
	rows := m.allRows
	if query := strings.ToLower(m.table.SearchValue()); query != "" {
		filtered := make([]auction.Record, 0, len(rows))
		for _, r := range rows {
			if strings.Contains(strings.ToLower(r.Auctioneer), query) ||
				strings.Contains(strings.ToLower(r.Type), query) ||
				strings.Contains(r.Date, query) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	rows = ApplySort(rows, m.table.Columns(), m.sort)
	m.table.SetRows(rows)
}

// cycleSort advances the primary sort key to the next sortable column.
// The reorder is page-local: pagination is server-driven, so sorting never
// triggers a refetch.
func (m *BrowseModel) cycleSort() {
	if len(m.sortColumns) == 0 {
		return
	}
	col := m.sortColumns[m.sortIdx%len(m.sortColumns)]
	m.sortIdx++
	m.sort.Toggle(col.ID)
	m.refreshRows()
}

// reverseSort flips the direction of the primary sort key.
func (m *BrowseModel) reverseSort() {
	primary, ok := m.sort.Primary()
	if !ok {
		return
	}
	m.sort.Toggle(primary.ColumnID)
	m.refreshRows()
}

// View renders the current screen.
func (m *BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""

	case ViewStateConfirmDelete:
		return m.confirm.View()

	case ViewStateList:
		return m.renderListView()

	default:
		return ""
	}
}

func (m *BrowseModel) renderListView() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("AUCTION RESULTS"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.table.Loading() {
		b.WriteString(m.loadingState.View())
		b.WriteString("\n")
	}

	b.WriteString(m.helpLine())
	return b.String()
}

func (m *BrowseModel) helpLine() string {
	parts := []string{"[p/←] Prev", "[n/→] Next"}
	if m.table.SearchEnabled() {
		parts = append(parts, "[/] Search")
	}
	if len(m.sortColumns) > 0 {
		parts = append(parts, "[s] Sort", "[r] Reverse")
	}
	if m.actions.CanEdit() {
		parts = append(parts, "[e] Edit")
	}
	if m.actions.CanDelete() {
		parts = append(parts, "[d] Delete")
	}
	parts = append(parts, "[q] Quit")
	return HelpStyle.Render(strings.Join(parts, "  "))
}

// Page returns the current 1-indexed page, for tests and status rendering.
func (m *BrowseModel) Page() int {
	return m.page
}

// Loading reports whether a fetch is in flight.
func (m *BrowseModel) Loading() bool {
	return m.table.Loading()
}

// Rows returns the rendered rows after filter and sort.
func (m *BrowseModel) Rows() []auction.Record {
	return m.table.Rows()
}
