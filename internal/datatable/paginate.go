package datatable

// Pagination is the caller's requested page and page size.
type Pagination struct {
	ItemsPerPage int
	CurrentPage  int
}

// Bounds is the visible slice of one page: records [Start, End) of the
// sequence, on the clamped Page out of TotalPages.
type Bounds struct {
	Start      int
	End        int
	Page       int
	TotalPages int
}

// Len returns the number of records on the page.
func (b Bounds) Len() int { return b.End - b.Start }

// TotalPages returns max(1, ceil(count/perPage)), with perPage clamped to 1.
func TotalPages(count, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	if count <= 0 {
		return 1
	}
	return (count + perPage - 1) / perPage
}

// Slice computes the bounds of page within a sequence of count records.
// perPage below 1 is treated as 1 and page is clamped into [1, TotalPages].
func Slice(count, perPage, page int) Bounds {
	if perPage < 1 {
		perPage = 1
	}
	if count < 0 {
		count = 0
	}
	total := TotalPages(count, perPage)
	page = clamp(page, 1, total)
	start := (page - 1) * perPage
	return Bounds{
		Start:      start,
		End:        min(start+perPage, count),
		Page:       page,
		TotalPages: total,
	}
}

// PageItem is one entry of a page window: a page number or an ellipsis.
type PageItem struct {
	Page     int
	Ellipsis bool
}

// Window returns the page numbers shown in a paginator: both edges, every
// page within pageRange of current, and a single ellipsis for each gap.
func Window(current, total, pageRange int) []PageItem {
	if total < 1 {
		total = 1
	}
	if pageRange < 0 {
		pageRange = 0
	}
	current = clamp(current, 1, total)
	if total == 1 {
		return []PageItem{{Page: 1}}
	}

	lo := max(1, current-pageRange)
	hi := min(total, current+pageRange)

	items := make([]PageItem, 0, hi-lo+5)
	items = append(items, PageItem{Page: 1})
	if lo > 2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	for p := max(lo, 2); p <= min(hi, total-1); p++ {
		items = append(items, PageItem{Page: p})
	}
	if hi < total-1 {
		items = append(items, PageItem{Ellipsis: true})
	}
	return append(items, PageItem{Page: total})
}

// Navigator is the state of a page navigator control. Every move clamps into
// [1, TotalPages].
type Navigator struct {
	Page       int
	TotalPages int
	PageRange  int
}

// NewNavigator returns a navigator with page and total normalized.
func NewNavigator(page, totalPages, pageRange int) Navigator {
	n := Navigator{TotalPages: max(1, totalPages), PageRange: max(0, pageRange)}
	n.Page = clamp(page, 1, n.TotalPages)
	return n
}

func (n Navigator) HasPrev() bool { return n.Page > 1 }
func (n Navigator) HasNext() bool { return n.Page < n.TotalPages }

// ShowEdges reports whether the window can hide pages, which is when
// first/last jump buttons are worth drawing.
func (n Navigator) ShowEdges() bool { return n.TotalPages > 2*n.PageRange+1 }

func (n Navigator) Prev() Navigator  { return n.Goto(n.Page - 1) }
func (n Navigator) Next() Navigator  { return n.Goto(n.Page + 1) }
func (n Navigator) First() Navigator { return n.Goto(1) }
func (n Navigator) Last() Navigator  { return n.Goto(n.TotalPages) }

// Goto moves to page, clamped.
func (n Navigator) Goto(page int) Navigator {
	return NewNavigator(page, n.TotalPages, n.PageRange)
}

// Items returns the page window for the navigator's position.
func (n Navigator) Items() []PageItem {
	return Window(n.Page, n.TotalPages, n.PageRange)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
