package datatable

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type person struct {
	id   int
	name string
	age  int
	note string
}

func peopleColumns(t *testing.T) Columns[person] {
	t.Helper()
	cols, err := NewColumns(
		Column[person]{ID: "id", Title: "ID", Accessor: func(p person) any { return p.id }, Unsearchable: true},
		Column[person]{ID: "name", Title: "Name", Accessor: func(p person) any { return p.name }},
		Column[person]{ID: "age", Title: "Age", Accessor: func(p person) any { return p.age }},
	)
	require.NoError(t, err)
	return cols
}

func samplePeople() []person {
	return []person{
		{id: 1, name: "Bob", age: 30},
		{id: 2, name: "Amy", age: 25},
		{id: 3, name: "Cid", age: 25},
	}
}

func ids(ps []person) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.id
	}
	return out
}

func TestNewColumnsRejectsDuplicateIDs(t *testing.T) {
	_, err := NewColumns(
		Column[person]{ID: "name"},
		Column[person]{ID: "age"},
		Column[person]{ID: "name"},
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateColumn))
	require.Contains(t, err.Error(), `"name"`)

	require.Panics(t, func() {
		MustColumns(Column[person]{ID: "x"}, Column[person]{ID: "x"})
	})
}

func TestColumnsLookupAndSuggest(t *testing.T) {
	cols := peopleColumns(t)
	require.Equal(t, []string{"id", "name", "age"}, cols.IDs())
	require.Equal(t, 3, cols.Len())

	c, ok := cols.Lookup("age")
	require.True(t, ok)
	require.Equal(t, "Age", c.Title)

	_, ok = cols.Lookup("missing")
	require.False(t, ok)

	s, ok := cols.Suggest("nmae")
	require.True(t, ok)
	require.Equal(t, "name", s)

	_, ok = cols.Suggest("zzzzzzzz")
	require.False(t, ok)
}

func TestCellTextPrefersRenderer(t *testing.T) {
	col := Column[person]{ID: "age", Accessor: func(p person) any { return p.age }}
	require.Equal(t, "30", CellText(col, person{age: 30}))

	col.Format = func(v any) string { return fmt.Sprintf("%d yrs", v) }
	require.Equal(t, "30 yrs", CellText(col, person{age: 30}))

	col.Render = func(p person) string { return "<" + p.name + ">" }
	require.Equal(t, "<Bob>", CellText(col, person{name: "Bob", age: 30}))

	var empty Column[person]
	require.Nil(t, empty.Value(person{}))
	require.Equal(t, "", empty.Text(person{}))
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	records := samplePeople()
	got := Filter(records, "", peopleColumns(t))
	require.Equal(t, records, got)
	require.Same(t, &records[0], &got[0])
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	cols := peopleColumns(t)
	records := samplePeople()

	require.Equal(t, []int{1}, ids(Filter(records, "b", cols)))
	require.Equal(t, []int{1}, ids(Filter(records, "BO", cols)))
	require.Equal(t, []int{2, 3}, ids(Filter(records, "25", cols)))
	require.Equal(t, []int{2}, ids(Filter(records, "aM", cols)))
}

func TestFilterSkipsUnsearchableColumns(t *testing.T) {
	cols := peopleColumns(t)
	// "1" only appears in the unsearchable id column.
	require.Empty(t, Filter(samplePeople(), "1", cols))
}

func TestFilterNoMatchIsEmpty(t *testing.T) {
	got := Filter(samplePeople(), "zzz", peopleColumns(t))
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFilterMonotonicity(t *testing.T) {
	cols := peopleColumns(t)
	records := []person{
		{id: 1, name: "Anna"}, {id: 2, name: "Annabel"}, {id: 3, name: "Bran"},
		{id: 4, name: "Ann"}, {id: 5, name: "Joanne"},
	}
	query := "annab"
	prev := Filter(records, "", cols)
	for i := 1; i <= len(query); i++ {
		cur := Filter(records, query[:i], cols)
		for _, p := range cur {
			require.Contains(t, prev, p, "query %q", query[:i])
		}
		prev = cur
	}
}

func TestSortStableOnTies(t *testing.T) {
	cols := peopleColumns(t)
	records := samplePeople()

	asc := Sort(records, SortConfig{ColumnID: "age"}, cols)
	require.Equal(t, []int{2, 3, 1}, ids(asc))

	desc := Sort(records, SortConfig{ColumnID: "age", Direction: Descending}, cols)
	// Ties keep input order even when descending.
	require.Equal(t, []int{1, 2, 3}, ids(desc))

	// The input is untouched.
	require.Equal(t, []int{1, 2, 3}, ids(records))
}

func TestSortUnknownOrEmptyColumnIsIdentity(t *testing.T) {
	cols := peopleColumns(t)
	records := samplePeople()
	require.Equal(t, records, Sort(records, SortConfig{}, cols))
	require.Equal(t, records, Sort(records, SortConfig{ColumnID: "nope", Direction: Descending}, cols))
}

func TestSortRoundTripReverses(t *testing.T) {
	cols := peopleColumns(t)
	records := []person{
		{id: 1, name: "Eve"}, {id: 2, name: "Dan"}, {id: 3, name: "Amy"},
		{id: 4, name: "Cid"}, {id: 5, name: "Bob"},
	}
	asc := Sort(records, SortConfig{ColumnID: "name"}, cols)
	desc := Sort(asc, SortConfig{ColumnID: "name", Direction: Descending}, cols)

	reversed := slices.Clone(asc)
	slices.Reverse(reversed)
	require.Equal(t, reversed, desc)
}

func TestSortPreservesGroupingAcrossResorts(t *testing.T) {
	cols := peopleColumns(t)
	records := []person{
		{id: 1, name: "Cid", age: 40}, {id: 2, name: "Amy", age: 30},
		{id: 3, name: "Bob", age: 40}, {id: 4, name: "Amy", age: 20},
	}
	byName := Sort(records, SortConfig{ColumnID: "name"}, cols)
	require.Equal(t, []int{2, 4, 3, 1}, ids(byName))

	byAge := Sort(byName, SortConfig{ColumnID: "age"}, cols)
	// Within each age, name order from the previous sort survives.
	require.Equal(t, []int{4, 2, 3, 1}, ids(byAge))
}

func TestSortUsesColumnComparator(t *testing.T) {
	cols := MustColumns(Column[person]{
		ID:       "name",
		Accessor: func(p person) any { return p.name },
		Compare: func(a, b any) int {
			return len(a.(string)) - len(b.(string))
		},
	})
	records := []person{{id: 1, name: "Alexander"}, {id: 2, name: "Al"}, {id: 3, name: "Bea"}}
	require.Equal(t, []int{2, 3, 1}, ids(Sort(records, SortConfig{ColumnID: "name"}, cols)))
	require.Equal(t, []int{1, 3, 2}, ids(Sort(records, SortConfig{ColumnID: "name", Direction: Descending}, cols)))
}

func TestSortConfigToggle(t *testing.T) {
	var s SortConfig
	require.False(t, s.Active())
	require.Equal(t, "none", s.String())

	s = s.Toggle("name")
	require.Equal(t, SortConfig{ColumnID: "name", Direction: Ascending}, s)
	s = s.Toggle("name")
	require.Equal(t, SortConfig{ColumnID: "name", Direction: Descending}, s)
	require.Equal(t, "name desc", s.String())
	s = s.Toggle("age")
	require.Equal(t, SortConfig{ColumnID: "age", Direction: Ascending}, s)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "", want: Ascending},
		{in: "asc", want: Ascending},
		{in: " Ascending ", want: Ascending},
		{in: "DESC", want: Descending},
		{in: "descending", want: Descending},
		{in: "sideways", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

type (
	cents  int64
	level  uint8
	ratio  float32
	label  string
	toggle bool
)

func TestCompareNaturalOrder(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		a, b any
		want int
	}{
		{a: nil, b: nil, want: 0},
		{a: nil, b: 0, want: -1},
		{a: false, b: true, want: -1},
		{a: 2, b: 10, want: -1},
		{a: int64(-1), b: uint(0), want: -1},
		{a: uint64(5), b: int8(5), want: 0},
		{a: 2.5, b: 2, want: 1},
		{a: float32(1.5), b: 1.5, want: 0},
		{a: time.Second, b: time.Minute, want: -1},
		{a: day, b: day.AddDate(0, 0, 1), want: -1},
		{a: "b", b: "a", want: 1},
		{a: 99, b: "1", want: -1},
		{a: "z", b: []int{1}, want: -1},
		{a: cents(9), b: cents(10), want: -1},
		{a: cents(100), b: 99, want: 1},
		{a: level(3), b: cents(-1), want: 1},
		{a: ratio(0.5), b: cents(1), want: -1},
		{a: label("b"), b: "a", want: 1},
		{a: label("a"), b: cents(1), want: 1},
		{a: toggle(true), b: false, want: 1},
		{a: int64(1<<53 + 1), b: float64(1 << 53), want: 1},
		{a: float64(1 << 53), b: int64(1<<53 + 1), want: -1},
		{a: uint64(math.MaxUint64), b: math.Inf(1), want: -1},
		{a: int64(math.MinInt64), b: math.Inf(-1), want: 1},
		{a: -3, b: -3.5, want: 1},
		{a: uint(3), b: 3.25, want: -1},
		{a: 7, b: 7.0, want: 0},
		{a: math.NaN(), b: int64(math.MinInt64), want: -1},
		{a: math.NaN(), b: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Compare(tt.a, tt.b), "Compare(%v, %v)", tt.a, tt.b)
	}
}

func TestSortNamedNumbersNumerically(t *testing.T) {
	type row struct{ v cents }
	cols := MustColumns(Column[row]{ID: "v", Accessor: func(r row) any { return r.v }})
	got := Sort([]row{{9}, {10}, {100}, {-5}}, SortConfig{ColumnID: "v"}, cols)
	require.Equal(t, []row{{-5}, {9}, {10}, {100}}, got)
}

func TestCompareIntFloatIsTransitive(t *testing.T) {
	vals := []any{int64(1<<53 + 1), float64(1 << 53), int64(1 << 53), uint64(1<<53 + 2), 9007199254740993.0}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					require.LessOrEqual(t, Compare(a, c), 0, "%v <= %v <= %v", a, b, c)
				}
			}
			require.Equal(t, Compare(a, b), -Compare(b, a), "antisymmetry %v %v", a, b)
		}
	}
}

func TestTextDefaults(t *testing.T) {
	require.Equal(t, "", Text(nil))
	require.Equal(t, "x", Text("x"))
	require.Equal(t, "42", Text(42))
	require.Equal(t, "2025-03-01", Text(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "2025-03-01T10:30:00Z", Text(time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)))
	require.Equal(t, "1m0s", Text(time.Minute))
	require.Equal(t, "", Text(time.Time{}))
}
