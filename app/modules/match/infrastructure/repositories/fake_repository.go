package matchdb

import (
	"context"

	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/uptrace/bun"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	trace []string

	CreateFn                          func(ctx context.Context, db bun.IDB, match *Match) error
	GetByIDFn                         func(ctx context.Context, db bun.IDB, id int64) (*Match, error)
	LockByIDFn                        func(ctx context.Context, db bun.IDB, id int64) (*Match, error)
	ListByCompetitionFn               func(ctx context.Context, db bun.IDB, competitionID int64) ([]*Match, error)
	ListByCompetitionAndStatusFn      func(ctx context.Context, db bun.IDB, competitionID int64, status matchdomain.Status) ([]*Match, error)
	CountByCompetitionFn              func(ctx context.Context, db bun.IDB, competitionID int64) (int, error)
	UpdateStateFn                     func(ctx context.Context, db bun.IDB, match *Match) error
	DeleteFn                          func(ctx context.Context, db bun.IDB, id int64) error
	DeleteByCompetitionFn             func(ctx context.Context, db bun.IDB, competitionID int64) error
	AddParticipantsFn                 func(ctx context.Context, db bun.IDB, matchID int64, refs []participant.Ref) error
	ListParticipantsFn                func(ctx context.Context, db bun.IDB, matchID int64) ([]participant.Ref, error)
	ListParticipantsForMatchesFn      func(ctx context.Context, db bun.IDB, matchIDs []int64) (map[int64][]participant.Ref, error)
	DeleteParticipantsFn              func(ctx context.Context, db bun.IDB, matchID int64) error
	DeleteParticipantsByCompetitionFn func(ctx context.Context, db bun.IDB, competitionID int64) error
}

func (f *FakeRepository) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the repository calls made so far, in order.
func (f *FakeRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRepository) Create(ctx context.Context, db bun.IDB, match *Match) error {
	f.record("Create")
	if f.CreateFn != nil {
		return f.CreateFn(ctx, db, match)
	}
	return nil
}

func (f *FakeRepository) GetByID(ctx context.Context, db bun.IDB, id int64) (*Match, error) {
	f.record("GetByID")
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, db, id)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) LockByID(ctx context.Context, db bun.IDB, id int64) (*Match, error) {
	f.record("LockByID")
	if f.LockByIDFn != nil {
		return f.LockByIDFn(ctx, db, id)
	}
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, db, id)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) ListByCompetition(ctx context.Context, db bun.IDB, competitionID int64) ([]*Match, error) {
	f.record("ListByCompetition")
	if f.ListByCompetitionFn != nil {
		return f.ListByCompetitionFn(ctx, db, competitionID)
	}
	return []*Match{}, nil
}

func (f *FakeRepository) ListByCompetitionAndStatus(ctx context.Context, db bun.IDB, competitionID int64, status matchdomain.Status) ([]*Match, error) {
	f.record("ListByCompetitionAndStatus")
	if f.ListByCompetitionAndStatusFn != nil {
		return f.ListByCompetitionAndStatusFn(ctx, db, competitionID, status)
	}
	return []*Match{}, nil
}

func (f *FakeRepository) CountByCompetition(ctx context.Context, db bun.IDB, competitionID int64) (int, error) {
	f.record("CountByCompetition")
	if f.CountByCompetitionFn != nil {
		return f.CountByCompetitionFn(ctx, db, competitionID)
	}
	return 0, nil
}

func (f *FakeRepository) UpdateState(ctx context.Context, db bun.IDB, match *Match) error {
	f.record("UpdateState")
	if f.UpdateStateFn != nil {
		return f.UpdateStateFn(ctx, db, match)
	}
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, id int64) error {
	f.record("Delete")
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, id)
	}
	return nil
}

func (f *FakeRepository) DeleteByCompetition(ctx context.Context, db bun.IDB, competitionID int64) error {
	f.record("DeleteByCompetition")
	if f.DeleteByCompetitionFn != nil {
		return f.DeleteByCompetitionFn(ctx, db, competitionID)
	}
	return nil
}

func (f *FakeRepository) AddParticipants(ctx context.Context, db bun.IDB, matchID int64, refs []participant.Ref) error {
	f.record("AddParticipants")
	if f.AddParticipantsFn != nil {
		return f.AddParticipantsFn(ctx, db, matchID, refs)
	}
	return nil
}

func (f *FakeRepository) ListParticipants(ctx context.Context, db bun.IDB, matchID int64) ([]participant.Ref, error) {
	f.record("ListParticipants")
	if f.ListParticipantsFn != nil {
		return f.ListParticipantsFn(ctx, db, matchID)
	}
	return []participant.Ref{}, nil
}

func (f *FakeRepository) ListParticipantsForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) (map[int64][]participant.Ref, error) {
	f.record("ListParticipantsForMatches")
	if f.ListParticipantsForMatchesFn != nil {
		return f.ListParticipantsForMatchesFn(ctx, db, matchIDs)
	}
	return map[int64][]participant.Ref{}, nil
}

func (f *FakeRepository) DeleteParticipants(ctx context.Context, db bun.IDB, matchID int64) error {
	f.record("DeleteParticipants")
	if f.DeleteParticipantsFn != nil {
		return f.DeleteParticipantsFn(ctx, db, matchID)
	}
	return nil
}

func (f *FakeRepository) DeleteParticipantsByCompetition(ctx context.Context, db bun.IDB, competitionID int64) error {
	f.record("DeleteParticipantsByCompetition")
	if f.DeleteParticipantsByCompetitionFn != nil {
		return f.DeleteParticipantsByCompetitionFn(ctx, db, competitionID)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)
