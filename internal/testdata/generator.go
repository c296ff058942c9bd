package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/tablekit/internal/database/repository"
)

var (
	firstNames = []string{"Amy", "Bob", "Cid", "Dana", "Eli", "Fay", "Gus", "Hana", "Ivo", "Jun", "Kai", "Lea", "Mo", "Nia", "Oli", "Pia"}
	lastNames  = []string{"Smith", "Okafor", "Nguyen", "Berg", "Silva", "Kowalski", "Tanaka", "Haddad", "Moreau", "Walsh"}
	cities     = []string{"Melbourne", "Oslo", "Lagos", "Lima", "Osaka", "Porto", "Denver", "Tunis"}
)

// Generate returns n sample people. The same seed yields the same people,
// including their ids.
func Generate(n int, seed int64) []repository.Person {
	rng := rand.New(rand.NewSource(seed))
	epoch := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	out := make([]repository.Person, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		out = append(out, repository.Person{
			ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("person:%d:%d", seed, i))).String(),
			Name:     first + " " + last,
			Email:    fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			City:     cities[rng.Intn(len(cities))],
			Age:      18 + rng.Intn(60),
			JoinedAt: epoch.AddDate(0, 0, rng.Intn(5*365)),
		})
	}
	return out
}

// Seed inserts n generated people into repo in one transaction.
func Seed(ctx context.Context, repo *repository.PeopleRepo, n int, seed int64) error {
	return repo.UpsertAll(ctx, Generate(n, seed))
}
