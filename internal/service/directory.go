package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jask/tablekit/internal/database/repository"
	"github.com/jask/tablekit/internal/datatable"
)

// PeopleColumns is the column set of the people table. Names sort
// case-insensitively; the id column is hidden from search.
func PeopleColumns() datatable.Columns[repository.Person] {
	return datatable.MustColumns(
		datatable.Column[repository.Person]{
			ID: "name", Title: "Name",
			Accessor: func(p repository.Person) any { return p.Name },
			Compare:  foldCompare,
		},
		datatable.Column[repository.Person]{
			ID: "email", Title: "Email",
			Accessor: func(p repository.Person) any { return p.Email },
			Compare:  foldCompare,
		},
		datatable.Column[repository.Person]{
			ID: "city", Title: "City",
			Accessor: func(p repository.Person) any { return p.City },
		},
		datatable.Column[repository.Person]{
			ID: "age", Title: "Age",
			Accessor: func(p repository.Person) any { return p.Age },
		},
		datatable.Column[repository.Person]{
			ID: "joined", Title: "Joined",
			Accessor: func(p repository.Person) any { return p.JoinedAt },
			Format: func(v any) string {
				t, _ := v.(time.Time)
				if t.IsZero() {
					return ""
				}
				return t.Format(time.DateOnly)
			},
		},
		datatable.Column[repository.Person]{
			ID: "id", Title: "ID",
			Accessor:     func(p repository.Person) any { return p.ID },
			Unsearchable: true,
			Render:       func(p repository.Person) string { return shortID(p.ID) },
		},
	)
}

func foldCompare(a, b any) int {
	x, _ := a.(string)
	y, _ := b.(string)
	return strings.Compare(strings.ToLower(x), strings.ToLower(y))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Directory owns the people table: it loads records from the store and
// keeps the table's query, sort and page state.
type Directory struct {
	People *repository.PeopleRepo
	Table  *datatable.Table[repository.Person]

	logger *slog.Logger
}

// NewDirectory loads every person and builds the table over them.
func NewDirectory(ctx context.Context, people *repository.PeopleRepo, logger *slog.Logger, opts ...datatable.Option) (*Directory, error) {
	if logger == nil {
		logger = slog.Default()
	}
	records, err := people.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load people: %w", err)
	}
	opts = append([]datatable.Option{datatable.WithLogger(logger)}, opts...)
	d := &Directory{
		People: people,
		Table:  datatable.New(records, PeopleColumns(), opts...),
		logger: logger,
	}
	logger.Debug("directory loaded", "people", len(records))
	return d, nil
}

// Fetch reads the current people from the store without touching the table,
// so it can run off the UI goroutine. Pass the result to Apply.
func (d *Directory) Fetch(ctx context.Context) ([]repository.Person, error) {
	records, err := d.People.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload people: %w", err)
	}
	return records, nil
}

// Apply swaps records into the table, keeping its query, sort and requested page.
func (d *Directory) Apply(records []repository.Person) {
	d.Table.SetRecords(records)
	d.logger.Debug("directory reloaded", "people", len(records))
}

// Reload is Fetch followed by Apply.
func (d *Directory) Reload(ctx context.Context) error {
	records, err := d.Fetch(ctx)
	if err != nil {
		return err
	}
	d.Apply(records)
	return nil
}
