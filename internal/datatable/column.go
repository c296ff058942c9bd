package datatable

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// ErrDuplicateColumn is returned when two columns share an id.
var ErrDuplicateColumn = errors.New("duplicate column id")

// Column describes one projection of a record type R.
type Column[R any] struct {
	ID    string
	Title string

	// Accessor extracts the column value. It must be pure: the engine calls
	// it once per search test and once per record per sort pass.
	Accessor func(R) any

	// Unsearchable excludes the column from free-text search.
	Unsearchable bool

	// Compare overrides the natural order of the column's values.
	Compare func(a, b any) int

	// Format overrides the display string used for search and rendering.
	Format func(any) string

	// Render is an optional custom cell renderer. Nil means default text.
	Render func(R) string
}

// Value returns the column value for r.
func (c Column[R]) Value(r R) any {
	if c.Accessor == nil {
		return nil
	}
	return c.Accessor(r)
}

// Text returns the display string of the column value for r.
func (c Column[R]) Text(r R) string {
	v := c.Value(r)
	if c.Format != nil {
		return c.Format(v)
	}
	return Text(v)
}

func (c Column[R]) compare(a, b any) int {
	if c.Compare != nil {
		return c.Compare(a, b)
	}
	return Compare(a, b)
}

// CellText resolves the string drawn for a cell: the custom renderer when
// the column carries one, otherwise the column's display text.
func CellText[R any](c Column[R], r R) string {
	if c.Render != nil {
		return c.Render(r)
	}
	return c.Text(r)
}

// Columns is an ordered set of columns with unique ids.
type Columns[R any] struct {
	cols  []Column[R]
	index map[string]int
}

// NewColumns validates cols and returns the column set. Duplicate ids are a
// configuration error.
func NewColumns[R any](cols ...Column[R]) (Columns[R], error) {
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if prev, ok := index[c.ID]; ok {
			return Columns[R]{}, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateColumn, c.ID, prev, i)
		}
		index[c.ID] = i
	}
	out := make([]Column[R], len(cols))
	copy(out, cols)
	return Columns[R]{cols: out, index: index}, nil
}

// MustColumns is like NewColumns but panics on error.
func MustColumns[R any](cols ...Column[R]) Columns[R] {
	c, err := NewColumns(cols...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of columns.
func (cs Columns[R]) Len() int { return len(cs.cols) }

// All returns the columns in display order. The returned slice must not be modified.
func (cs Columns[R]) All() []Column[R] { return cs.cols }

// At returns the i-th column.
func (cs Columns[R]) At(i int) Column[R] { return cs.cols[i] }

// IDs returns the column ids in display order.
func (cs Columns[R]) IDs() []string {
	ids := make([]string, len(cs.cols))
	for i, c := range cs.cols {
		ids[i] = c.ID
	}
	return ids
}

// Lookup finds a column by id.
func (cs Columns[R]) Lookup(id string) (Column[R], bool) {
	i, ok := cs.index[id]
	if !ok {
		return Column[R]{}, false
	}
	return cs.cols[i], true
}

// Suggest returns the known column id closest to id, if any is close enough
// to be a plausible typo.
func (cs Columns[R]) Suggest(id string) (string, bool) {
	if id == "" || len(cs.cols) == 0 {
		return "", false
	}
	limit := (len(id) + 1) / 2
	best, bestDist := "", limit+1
	for _, c := range cs.cols {
		d := levenshtein.ComputeDistance(id, c.ID)
		if d < bestDist {
			best, bestDist = c.ID, d
		}
	}
	if bestDist > limit {
		return "", false
	}
	return best, true
}
