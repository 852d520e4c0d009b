//go:build integration

package testutils

import (
	"context"
	"fmt"
	"time"

	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/uptrace/bun"
)

// TestDataGenerator provides methods to create test data for integration tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
}

// NewTestDataGenerator creates a new test data generator with optional seed.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s))}
}

// CreateUsers inserts count users with unique usernames.
func (g *TestDataGenerator) CreateUsers(ctx context.Context, db bun.IDB, repo userdb.Repository, count int) ([]*userdb.User, error) {
	users := make([]*userdb.User, 0, count)
	for i := 0; i < count; i++ {
		u := &userdb.User{
			Username: fmt.Sprintf("%s_%d", g.faker.Username(), i),
			Email:    g.faker.Email(),
		}
		if err := repo.Create(ctx, db, u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// BotNames returns count distinct bot usernames.
func (g *TestDataGenerator) BotNames(count int) []string {
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		names = append(names, fmt.Sprintf("%s-bot-%d", g.faker.FirstName(), i))
	}
	return names
}

// CompetitionTitle returns a random competition title.
func (g *TestDataGenerator) CompetitionTitle() string {
	return g.faker.Company() + " League"
}
