package botdb

import (
	"context"

	"github.com/uptrace/bun"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	ListByCompetitionFn   func(ctx context.Context, db bun.IDB, competitionID int64) ([]*Bot, error)
	GetByIDsFn            func(ctx context.Context, db bun.IDB, ids []int64) ([]*Bot, error)
	CreateManyFn          func(ctx context.Context, db bun.IDB, bots []*Bot) error
	DeleteByCompetitionFn func(ctx context.Context, db bun.IDB, competitionID int64) error
}

func (f *FakeRepository) ListByCompetition(ctx context.Context, db bun.IDB, competitionID int64) ([]*Bot, error) {
	if f.ListByCompetitionFn != nil {
		return f.ListByCompetitionFn(ctx, db, competitionID)
	}
	return []*Bot{}, nil
}

func (f *FakeRepository) GetByIDs(ctx context.Context, db bun.IDB, ids []int64) ([]*Bot, error) {
	if f.GetByIDsFn != nil {
		return f.GetByIDsFn(ctx, db, ids)
	}
	return []*Bot{}, nil
}

func (f *FakeRepository) CreateMany(ctx context.Context, db bun.IDB, bots []*Bot) error {
	if f.CreateManyFn != nil {
		return f.CreateManyFn(ctx, db, bots)
	}
	return nil
}

func (f *FakeRepository) DeleteByCompetition(ctx context.Context, db bun.IDB, competitionID int64) error {
	if f.DeleteByCompetitionFn != nil {
		return f.DeleteByCompetitionFn(ctx, db, competitionID)
	}
	return nil
}

// Seed installs read lookups over a fixed roster.
func (f *FakeRepository) Seed(bots ...*Bot) *FakeRepository {
	f.ListByCompetitionFn = func(ctx context.Context, db bun.IDB, competitionID int64) ([]*Bot, error) {
		out := []*Bot{}
		for _, b := range bots {
			if b.CompetitionID == competitionID {
				out = append(out, b)
			}
		}
		return out, nil
	}
	f.GetByIDsFn = func(ctx context.Context, db bun.IDB, ids []int64) ([]*Bot, error) {
		out := []*Bot{}
		for _, id := range ids {
			for _, b := range bots {
				if b.ID == id {
					out = append(out, b)
				}
			}
		}
		return out, nil
	}
	return f
}

var _ Repository = (*FakeRepository)(nil)
