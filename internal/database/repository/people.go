package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jask/tablekit/internal/database"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// PeopleRepo handles people.
type PeopleRepo struct {
	db *sql.DB
}

func NewPeopleRepo(db *sql.DB) *PeopleRepo { return &PeopleRepo{db: db} }

const personColumns = `id, name, email, city, age, joined_at, created_at`

func (r *PeopleRepo) Insert(ctx context.Context, p Person) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO people(id, name, email, city, age, joined_at, created_at)
	VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, p.ID, p.Name, p.Email, p.City, p.Age, p.JoinedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert person %s: %w", p.ID, err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Upsert inserts p or updates the existing row with the same id. An update
// keeps the row's original position in List.
func (r *PeopleRepo) Upsert(ctx context.Context, p Person) error {
	return upsert(ctx, r.db, p)
}

// UpsertAll upserts people in one transaction.
func (r *PeopleRepo) UpsertAll(ctx context.Context, people []Person) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, p := range people {
			if err := upsert(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(ctx context.Context, ex execer, p Person) error {
	_, err := ex.ExecContext(ctx, `
	INSERT INTO people(id, name, email, city, age, joined_at, created_at)
	VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 email=excluded.email,
	 city=excluded.city,
	 age=excluded.age,
	 joined_at=excluded.joined_at;
	`, p.ID, p.Name, p.Email, p.City, p.Age, p.JoinedAt.UTC())
	if err != nil {
		return fmt.Errorf("upsert person %s: %w", p.ID, err)
	}
	return nil
}

func (r *PeopleRepo) Get(ctx context.Context, id string) (Person, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM people WHERE id = ?`, id)
	p, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Person{}, fmt.Errorf("person %s: %w", id, ErrNotFound)
	}
	return p, err
}

// List returns every person in insertion order. That order is the table's
// unsorted order, so it must stay stable across calls.
func (r *PeopleRepo) List(ctx context.Context) ([]Person, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+personColumns+` FROM people ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PeopleRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM people`).Scan(&n)
	return n, err
}

func (r *PeopleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("person %s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(s scanner) (Person, error) {
	var p Person
	if err := s.Scan(&p.ID, &p.Name, &p.Email, &p.City, &p.Age, &p.JoinedAt, &p.CreatedAt); err != nil {
		return Person{}, err
	}
	return p, nil
}
