package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tablekit/internal/database/repository"
	"github.com/jask/tablekit/internal/service"
)

const pageSizeStep = 5

// App is the people table viewer.
type App struct {
	ctx    context.Context
	dir    *service.Directory
	logger *slog.Logger
	keys   keyMap

	search    textinput.Model
	searching bool
	showHelp  bool
	status    string

	width  int
	height int

	// onPageSize is called after the page size changes, e.g. to persist it.
	onPageSize func(int) error
}

type peopleMsg []repository.Person

type errMsg struct{ error }

// Option configures an App.
type Option func(*App)

// WithPageSizeHook registers fn to run whenever the user changes the page size.
func WithPageSizeHook(fn func(int) error) Option {
	return func(a *App) { a.onPageSize = fn }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

func New(ctx context.Context, dir *service.Directory, opts ...Option) *App {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"
	search.CharLimit = 120

	a := &App{
		ctx:    ctx,
		dir:    dir,
		logger: slog.Default(),
		keys:   newKeyMap(),
		search: search,
		width:  100,
		height: 30,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) reload() tea.Cmd {
	return func() tea.Msg {
		people, err := a.dir.Fetch(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return peopleMsg(people)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.search.Width = max(10, m.Width-4)
	case peopleMsg:
		a.dir.Apply([]repository.Person(m))
		a.status = fmt.Sprintf("loaded %d people", len(m))
	case errMsg:
		a.logger.Warn("command failed", "err", m.error)
		a.status = "error: " + m.Error()
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Interrupt) {
			return a, tea.Quit
		}
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Accept):
		a.searching = false
		a.search.Blur()
		return a, nil
	case key.Matches(m, a.keys.Cancel):
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		a.dir.Table.SetQuery("")
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.dir.Table.SetQuery(a.search.Value())
	return a, cmd
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	tbl := a.dir.Table
	if a.showHelp {
		// any key closes help
		a.showHelp = false
		return a, nil
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Help):
		a.showHelp = true
	case key.Matches(m, a.keys.Search):
		a.searching = true
		return a, a.search.Focus()
	case key.Matches(m, a.keys.Cancel):
		a.search.SetValue("")
		tbl.SetQuery("")
	case key.Matches(m, a.keys.NextPage):
		tbl.NextPage()
	case key.Matches(m, a.keys.PrevPage):
		tbl.PrevPage()
	case key.Matches(m, a.keys.FirstPage):
		tbl.FirstPage()
	case key.Matches(m, a.keys.LastPage):
		tbl.LastPage()
	case key.Matches(m, a.keys.SortNext):
		a.sortNextColumn()
	case key.Matches(m, a.keys.SortFlip):
		if s := tbl.Sort(); s.Active() {
			tbl.ToggleSort(s.ColumnID)
		}
	case key.Matches(m, a.keys.SortClear):
		tbl.ClearSort()
	case key.Matches(m, a.keys.SortByCol):
		n, _ := strconv.Atoi(m.String())
		if cols := tbl.Columns(); n >= 1 && n <= cols.Len() {
			tbl.ToggleSort(cols.At(n - 1).ID)
		}
	case key.Matches(m, a.keys.Bigger):
		return a, a.setPageSize(tbl.ItemsPerPage() + pageSizeStep)
	case key.Matches(m, a.keys.Smaller):
		return a, a.setPageSize(max(1, tbl.ItemsPerPage()-pageSizeStep))
	case key.Matches(m, a.keys.Reload):
		a.status = "reloading..."
		return a, a.reload()
	}
	return a, nil
}

// sortNextColumn cycles the sort through the columns in display order.
func (a *App) sortNextColumn() {
	tbl := a.dir.Table
	ids := tbl.Columns().IDs()
	if len(ids) == 0 {
		return
	}
	next := ids[0]
	for i, id := range ids {
		if id == tbl.Sort().ColumnID {
			next = ids[(i+1)%len(ids)]
			break
		}
	}
	tbl.ToggleSort(next)
}

func (a *App) setPageSize(n int) tea.Cmd {
	a.dir.Table.SetItemsPerPage(n)
	a.status = fmt.Sprintf("rows per page: %d", a.dir.Table.ItemsPerPage())
	if a.onPageSize == nil {
		return nil
	}
	size := a.dir.Table.ItemsPerPage()
	hook := a.onPageSize
	return func() tea.Msg {
		if err := hook(size); err != nil {
			return errMsg{fmt.Errorf("save page size: %w", err)}
		}
		return nil
	}
}
