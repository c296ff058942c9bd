package datatable

import (
	"io"
	"log/slog"
)

const (
	DefaultItemsPerPage = 20
	DefaultPageRange    = 2
)

// Result is one derivation: the visible page of the filtered and sorted
// records plus the metadata a paginator needs.
type Result[R any] struct {
	Records     []R
	TotalPages  int
	CurrentPage int
	TotalCount  int
	// Start and End locate Records within the filtered, sorted sequence.
	Start int
	End   int
}

// Derive runs filter, sort and paginate over records.
func Derive[R any](records []R, cols Columns[R], query string, sort SortConfig, p Pagination) Result[R] {
	seq := Sort(Filter(records, query, cols), sort, cols)
	return paginate(seq, p)
}

func paginate[R any](seq []R, p Pagination) Result[R] {
	b := Slice(len(seq), p.ItemsPerPage, p.CurrentPage)
	return Result[R]{
		Records:     seq[b.Start:b.End:b.End],
		TotalPages:  b.TotalPages,
		CurrentPage: b.Page,
		TotalCount:  len(seq),
		Start:       b.Start,
		End:         b.End,
	}
}

type settings struct {
	perPage   int
	pageRange int
	sort      SortConfig
	logger    *slog.Logger
}

// Option configures a Table.
type Option func(*settings)

// WithItemsPerPage sets the page size. Values below 1 are clamped to 1.
func WithItemsPerPage(n int) Option { return func(s *settings) { s.perPage = max(1, n) } }

// WithPageRange sets how many sibling pages the window shows around the
// current page.
func WithPageRange(n int) Option { return func(s *settings) { s.pageRange = max(0, n) } }

// WithSort sets the initial sort.
func WithSort(cfg SortConfig) Option { return func(s *settings) { s.sort = cfg } }

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option { return func(s *settings) { s.logger = l } }

// Table holds the caller-mutable inputs of a data table (query, sort, page,
// page size) and derives the visible result from them. It caches the
// filtered and sorted sequence so that paging does not re-filter.
//
// A Table is not safe for concurrent use.
type Table[R any] struct {
	records   []R
	cols      Columns[R]
	query     string
	sort      SortConfig
	page      int
	perPage   int
	pageRange int
	logger    *slog.Logger

	memo struct {
		valid bool
		query string
		sort  SortConfig
		seq   []R
	}
}

// New returns a table over records. Records are treated as immutable; use
// SetRecords to replace them.
func New[R any](records []R, cols Columns[R], opts ...Option) *Table[R] {
	s := settings{perPage: DefaultItemsPerPage, pageRange: DefaultPageRange}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Table[R]{
		records:   records,
		cols:      cols,
		sort:      s.sort,
		page:      1,
		perPage:   s.perPage,
		pageRange: s.pageRange,
		logger:    s.logger,
	}
}

func (t *Table[R]) Columns() Columns[R] { return t.cols }
func (t *Table[R]) Records() []R        { return t.records }
func (t *Table[R]) Query() string       { return t.query }
func (t *Table[R]) Sort() SortConfig    { return t.sort }
func (t *Table[R]) ItemsPerPage() int   { return t.perPage }
func (t *Table[R]) PageRange() int      { return t.pageRange }

// RequestedPage returns the page as last set by the caller, before clamping.
func (t *Table[R]) RequestedPage() int { return t.page }

// SetRecords swaps in a new record collection.
func (t *Table[R]) SetRecords(records []R) {
	t.records = records
	t.memo.valid = false
}

// SetQuery changes the search query. A new query returns to the first page.
func (t *Table[R]) SetQuery(q string) {
	if q == t.query {
		return
	}
	t.query = q
	t.page = 1
}

// SetSort changes the active sort.
func (t *Table[R]) SetSort(cfg SortConfig) { t.sort = cfg }

// ToggleSort activates column id, flipping direction if it is already active.
func (t *Table[R]) ToggleSort(id string) { t.sort = t.sort.Toggle(id) }

// ClearSort restores filter order.
func (t *Table[R]) ClearSort() { t.sort = SortConfig{} }

// SetPage requests a page. Out-of-range pages are clamped when deriving.
func (t *Table[R]) SetPage(page int) { t.page = page }

// SetItemsPerPage changes the page size, keeping the first visible record on
// the new page.
func (t *Table[R]) SetItemsPerPage(n int) {
	n = max(1, n)
	if n == t.perPage {
		return
	}
	first := t.Result().Start
	t.perPage = n
	t.page = first/n + 1
}

// SetPageRange changes the number of sibling pages in the window.
func (t *Table[R]) SetPageRange(n int) { t.pageRange = max(0, n) }

// NextPage, PrevPage, FirstPage and LastPage move relative to the clamped
// current page.
func (t *Table[R]) NextPage()  { t.page = t.Navigator().Next().Page }
func (t *Table[R]) PrevPage()  { t.page = t.Navigator().Prev().Page }
func (t *Table[R]) FirstPage() { t.page = 1 }
func (t *Table[R]) LastPage()  { t.page = t.Navigator().Last().Page }

// Result derives the visible page from the current inputs.
func (t *Table[R]) Result() Result[R] {
	res := paginate(t.sequence(), Pagination{ItemsPerPage: t.perPage, CurrentPage: t.page})
	if res.CurrentPage != t.page {
		t.logger.Debug("page clamped", "requested", t.page, "page", res.CurrentPage, "total_pages", res.TotalPages)
	}
	return res
}

// Window returns the paginator window for the current result.
func (t *Table[R]) Window() []PageItem { return t.Navigator().Items() }

// Navigator returns the page navigator positioned on the current result.
func (t *Table[R]) Navigator() Navigator {
	res := t.Result()
	return NewNavigator(res.CurrentPage, res.TotalPages, t.pageRange)
}

func (t *Table[R]) sequence() []R {
	if t.memo.valid && t.memo.query == t.query && t.memo.sort == t.sort {
		return t.memo.seq
	}
	if t.sort.Active() {
		if _, ok := t.cols.Lookup(t.sort.ColumnID); !ok {
			attrs := []any{"column", t.sort.ColumnID}
			if s, ok := t.cols.Suggest(t.sort.ColumnID); ok {
				attrs = append(attrs, "suggest", s)
			}
			t.logger.Debug("unknown sort column, keeping filter order", attrs...)
		}
	}
	seq := Sort(Filter(t.records, t.query, t.cols), t.sort, t.cols)
	t.memo.valid = true
	t.memo.query = t.query
	t.memo.sort = t.sort
	t.memo.seq = seq
	return seq
}
