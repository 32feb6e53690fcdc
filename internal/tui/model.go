// Package tui implements the interactive inventory editor: a filterable,
// sortable table with an add/edit form and delete confirmation, mirroring
// the command-line verbs in a single event loop. Every mutation is saved
// through the store before the view is re-derived.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/billswift/stockroom/internal/form"
	"github.com/billswift/stockroom/internal/query"
	"github.com/billswift/stockroom/internal/render"
	"github.com/billswift/stockroom/pkg/types"
)

// mode is the interaction state of the editor.
type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirmDelete
)

// sortCycle maps the number keys to sortable columns.
var sortCycle = []string{types.SortByName, types.SortBySupplier, types.SortByStock, types.SortByValue}

// stockCycle is the order the stock-state filter cycles through.
var stockCycle = []string{types.StockAny, types.StockLow, types.StockOut}

// Model is the bubbletea model for the inventory editor.
type Model struct {
	store    types.Store
	cfg      types.Config
	currency *render.CurrencyFormatter

	items   []types.Item
	view    []types.Item
	filters types.Filters
	sortKey string
	sortDir string
	compact bool

	table   table.Model
	search  textinput.Model
	typing  bool // search input focused
	mode    mode
	form    formModel
	pending types.Item // item awaiting delete confirmation
	status  string

	width  int
	height int
}

// New builds the editor model. The store must already be open; the initial
// collection is loaded (and seeded if absent) before the first frame.
func New(store types.Store, cfg types.Config) (Model, error) {
	cfg = cfg.WithDefaults()
	cf, err := render.NewCurrencyFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return Model{}, err
	}
	items, err := store.Load()
	if err != nil {
		return Model{}, fmt.Errorf("load collection: %w", err)
	}

	search := textinput.New()
	search.Placeholder = "name or supplier..."
	search.CharLimit = 64
	search.Width = 32

	t := table.New(
		table.WithColumns(columns(false)),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	m := Model{
		store:    store,
		cfg:      cfg,
		currency: cf,
		items:    items,
		sortKey:  types.SortByName,
		sortDir:  types.SortAsc,
		table:    t,
		search:   search,
	}
	m.refresh()
	return m, nil
}

// columns returns the table layout; compact mode narrows the text columns.
func columns(compact bool) []table.Column {
	nameW, supplierW := 34, 22
	if compact {
		nameW, supplierW = 24, 16
	}
	return []table.Column{
		{Title: "Name", Width: nameW},
		{Title: "Supplier", Width: supplierW},
		{Title: "Stock", Width: 6},
		{Title: "Value", Width: 12},
		{Title: "State", Width: 6},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

// updateBrowse handles keys in the table view.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		switch msg.String() {
		case "enter", "esc":
			m.typing = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.filters.Query = m.search.Value()
			m.refresh()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.typing = true
		m.status = ""
		return m, m.search.Focus()
	case "tab":
		m.filters.Stock = next(stockCycle, m.filters.Stock)
		m.refresh()
		return m, nil
	case "p":
		m.cycleSupplier()
		m.refresh()
		return m, nil
	case "c":
		m.compact = !m.compact
		m.table.SetColumns(columns(m.compact))
		m.refresh()
		return m, nil
	case "1", "2", "3", "4":
		idx, _ := strconv.Atoi(msg.String())
		m.sortKey, m.sortDir = query.NextSort(m.sortKey, m.sortDir, sortCycle[idx-1])
		m.refresh()
		return m, nil
	case "a":
		m.mode = modeForm
		m.form = newFormModel(types.Item{}, false)
		m.status = ""
		return m, m.form.focusCmd()
	case "e":
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeForm
		m.form = newFormModel(it, true)
		m.status = ""
		return m, m.form.focusCmd()
	case "d":
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.pending = it
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateConfirm handles the delete confirmation prompt. Only an explicit
// "y" deletes; anything else cancels.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "y" {
		items, removed := form.Remove(m.items, m.pending.ID)
		if removed {
			if err := m.persist(items); err == nil {
				m.status = fmt.Sprintf("Deleted %q.", m.pending.Name)
			}
		}
	} else {
		m.status = "Delete cancelled."
	}
	m.mode = modeBrowse
	m.pending = types.Item{}
	m.refresh()
	return m, nil
}

// updateForm feeds keys to the add/edit form until it submits or cancels.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done, submit, cmd := m.form.update(msg)
	if !done {
		return m, cmd
	}
	m.mode = modeBrowse
	if submit == nil {
		m.status = "Edit cancelled."
		return m, nil
	}

	it, err := form.Parse(*submit)
	if err != nil {
		// Validation failure: report and abandon, nothing persisted.
		m.status = err.Error()
		return m, nil
	}
	items, replaced := form.Upsert(m.items, it)
	if err := m.persist(items); err == nil {
		if replaced {
			m.status = fmt.Sprintf("Updated %q.", it.Name)
		} else {
			m.status = fmt.Sprintf("Added %q.", it.Name)
		}
	}
	m.refresh()
	return m, nil
}

// persist saves the collection and adopts it on success. On failure the
// in-memory collection is left as it was and the error is surfaced.
func (m *Model) persist(items []types.Item) error {
	if err := m.store.Save(items); err != nil {
		m.status = fmt.Sprintf("Save failed: %v", err)
		return err
	}
	m.items = items
	return nil
}

// selected returns the item under the table cursor.
func (m Model) selected() (types.Item, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.view) {
		return types.Item{}, false
	}
	return m.view[i], true
}

// cycleSupplier advances the supplier filter through the distinct suppliers
// present, with "all" between the last and the first.
func (m *Model) cycleSupplier() {
	options := query.Suppliers(m.items)
	m.filters.Supplier = next(append([]string{""}, options...), m.filters.Supplier)
}

// next returns the element after cur in the cycle, wrapping around. An
// unknown cur restarts the cycle.
func next(cycle []string, cur string) string {
	for i, v := range cycle {
		if v == cur {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// refresh re-derives the view from the collection and filter state. The
// supplier selection is dropped if its supplier no longer exists.
func (m *Model) refresh() {
	m.filters.Supplier = query.SelectSupplier(query.Suppliers(m.items), m.filters.Supplier)
	m.view = query.View(m.items, m.filters, m.sortKey, m.sortDir, m.cfg.LowStockThreshold)

	rows := make([]table.Row, len(m.view))
	for i, it := range m.view {
		rows[i] = table.Row{
			it.Name,
			it.Supplier,
			strconv.Itoa(it.Stock),
			m.currency.Format(it.Value),
			render.RowState(it.Stock, m.cfg.LowStockThreshold),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}
