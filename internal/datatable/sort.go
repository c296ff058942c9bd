package datatable

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection accepts "asc"/"ascending" and "desc"/"descending",
// case-insensitively. The empty string is ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort direction %q", s)
}

// SortConfig selects the active sort. An empty ColumnID means no sort.
type SortConfig struct {
	ColumnID  string
	Direction Direction
}

// Active reports whether a sort column is selected.
func (s SortConfig) Active() bool { return s.ColumnID != "" }

// Toggle returns the config after activating column id: the same column
// flips direction, a different column sorts ascending.
func (s SortConfig) Toggle(id string) SortConfig {
	if s.ColumnID == id {
		return SortConfig{ColumnID: id, Direction: s.Direction.Flip()}
	}
	return SortConfig{ColumnID: id, Direction: Ascending}
}

func (s SortConfig) String() string {
	if !s.Active() {
		return "none"
	}
	return s.ColumnID + " " + s.Direction.String()
}

// Sort returns records stably ordered by the configured column. An empty or
// unknown column returns records unchanged. The input slice is never
// reordered in place.
func Sort[R any](records []R, cfg SortConfig, cols Columns[R]) []R {
	if !cfg.Active() {
		return records
	}
	col, ok := cols.Lookup(cfg.ColumnID)
	if !ok {
		return records
	}

	type keyed struct {
		rec R
		key any
	}
	items := make([]keyed, len(records))
	for i, r := range records {
		items[i] = keyed{rec: r, key: col.Value(r)}
	}

	desc := cfg.Direction == Descending
	slices.SortStableFunc(items, func(a, b keyed) int {
		c := col.compare(a.key, b.key)
		if desc {
			// Reverse the comparator, not the output, so ties keep input order.
			return cmp.Compare(0, c)
		}
		return c
	})

	out := make([]R, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}
