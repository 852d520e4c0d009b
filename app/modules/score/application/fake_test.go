package scoreservice

import (
	"context"

	scoredb "github.com/Black-And-White-Club/matchday/app/modules/score/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Score Repo
// ------------------------

type FakeScoreRepo struct {
	trace []string

	ReplaceFunc              func(ctx context.Context, db bun.IDB, matchID int64, scores []*scoredb.Score) error
	ListForMatchFunc         func(ctx context.Context, db bun.IDB, matchID int64) ([]*scoredb.Score, error)
	ListForMatchesFunc       func(ctx context.Context, db bun.IDB, matchIDs []int64) ([]*scoredb.Score, error)
	DeleteForMatchFunc       func(ctx context.Context, db bun.IDB, matchID int64) error
	DeleteForCompetitionFunc func(ctx context.Context, db bun.IDB, competitionID int64) error
}

func NewFakeScoreRepo() *FakeScoreRepo {
	return &FakeScoreRepo{trace: []string{}}
}

func (f *FakeScoreRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoreRepo) Replace(ctx context.Context, db bun.IDB, matchID int64, scores []*scoredb.Score) error {
	f.record("Replace")
	if f.ReplaceFunc != nil {
		return f.ReplaceFunc(ctx, db, matchID, scores)
	}
	return nil
}

func (f *FakeScoreRepo) ListForMatch(ctx context.Context, db bun.IDB, matchID int64) ([]*scoredb.Score, error) {
	f.record("ListForMatch")
	if f.ListForMatchFunc != nil {
		return f.ListForMatchFunc(ctx, db, matchID)
	}
	return nil, nil
}

func (f *FakeScoreRepo) ListForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) ([]*scoredb.Score, error) {
	f.record("ListForMatches")
	if f.ListForMatchesFunc != nil {
		return f.ListForMatchesFunc(ctx, db, matchIDs)
	}
	return nil, nil
}

func (f *FakeScoreRepo) DeleteForMatch(ctx context.Context, db bun.IDB, matchID int64) error {
	f.record("DeleteForMatch")
	if f.DeleteForMatchFunc != nil {
		return f.DeleteForMatchFunc(ctx, db, matchID)
	}
	return nil
}

func (f *FakeScoreRepo) DeleteForCompetition(ctx context.Context, db bun.IDB, competitionID int64) error {
	f.record("DeleteForCompetition")
	if f.DeleteForCompetitionFunc != nil {
		return f.DeleteForCompetitionFunc(ctx, db, competitionID)
	}
	return nil
}

func (f *FakeScoreRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ scoredb.Repository = (*FakeScoreRepo)(nil)
