package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/tablekit/internal/database/repository"
)

// IngestService imports people from CSV.
type IngestService struct {
	People *repository.PeopleRepo
}

type IngestResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// ImportCSV reads rows of name, email, city, age, joined (YYYY-MM-DD).
// A header row starting with "name" is skipped. Ids are derived from the
// lowercased email, so re-importing the same file skips existing people.
func (s *IngestService) ImportCSV(ctx context.Context, r io.Reader) (IngestResult, error) {
	res := IngestResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
				continue
			}
			return res, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if line == 1 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name") {
			continue
		}
		if len(rec) < 5 {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: expected 5 columns (name, email, city, age, joined)", line))
			continue
		}
		p, err := parsePerson(rec)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if _, err := s.People.Get(ctx, p.ID); err == nil {
			res.Skipped++
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return res, err
		}
		if err := s.People.Insert(ctx, p); err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d insert: %w", line, err))
			continue
		}
		res.Imported++
	}
	return res, nil
}

func parsePerson(rec []string) (repository.Person, error) {
	name := strings.TrimSpace(rec[0])
	if name == "" {
		return repository.Person{}, errors.New("name required")
	}
	email := strings.TrimSpace(rec[1])
	age, err := strconv.Atoi(strings.TrimSpace(rec[3]))
	if err != nil {
		return repository.Person{}, fmt.Errorf("age: %w", err)
	}
	if age < 0 {
		return repository.Person{}, fmt.Errorf("age: negative value %d", age)
	}
	joined, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(rec[4]), time.UTC)
	if err != nil {
		return repository.Person{}, fmt.Errorf("joined: %w", err)
	}
	return repository.Person{
		ID:       personID(name, email),
		Name:     name,
		Email:    email,
		City:     strings.TrimSpace(rec[2]),
		Age:      age,
		JoinedAt: joined,
	}, nil
}

func personID(name, email string) string {
	key := strings.ToLower(email)
	if key == "" {
		key = "name:" + strings.ToLower(name)
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("person:"+key)).String()
}
