package datatable

import "strings"

// Filter returns the records whose searchable columns contain query as a
// case-insensitive substring, in input order. An empty query returns records
// itself.
func Filter[R any](records []R, query string, cols Columns[R]) []R {
	if query == "" {
		return records
	}
	q := strings.ToLower(query)
	searchable := make([]Column[R], 0, cols.Len())
	for _, c := range cols.All() {
		if !c.Unsearchable {
			searchable = append(searchable, c)
		}
	}

	out := make([]R, 0)
	for _, r := range records {
		if matches(r, q, searchable) {
			out = append(out, r)
		}
	}
	return out
}

// matches expects q already lowered.
func matches[R any](r R, q string, searchable []Column[R]) bool {
	for _, c := range searchable {
		if strings.Contains(strings.ToLower(c.Text(r)), q) {
			return true
		}
	}
	return false
}
