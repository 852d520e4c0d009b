package competitiondb

import (
	"context"

	"github.com/uptrace/bun"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	CreateFn             func(ctx context.Context, db bun.IDB, competition *Competition) error
	GetByIDFn            func(ctx context.Context, db bun.IDB, id int64) (*Competition, error)
	LockByIDFn           func(ctx context.Context, db bun.IDB, id int64) (*Competition, error)
	ListForUserFn        func(ctx context.Context, db bun.IDB, userID int64) ([]*Competition, error)
	ListCreatedByFn      func(ctx context.Context, db bun.IDB, userID int64) ([]*Competition, error)
	TouchFn              func(ctx context.Context, db bun.IDB, id int64) error
	DeleteFn             func(ctx context.Context, db bun.IDB, id int64) error
	ListParticipantIDsFn func(ctx context.Context, db bun.IDB, competitionID int64) ([]int64, error)
	IsParticipantFn      func(ctx context.Context, db bun.IDB, competitionID, userID int64) (bool, error)
	AddParticipantsFn    func(ctx context.Context, db bun.IDB, competitionID int64, userIDs []int64) error
	RemoveParticipantFn  func(ctx context.Context, db bun.IDB, competitionID, userID int64) error
	DeleteParticipantsFn func(ctx context.Context, db bun.IDB, competitionID int64) error
}

func (f *FakeRepository) Create(ctx context.Context, db bun.IDB, competition *Competition) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, db, competition)
	}
	return nil
}

func (f *FakeRepository) GetByID(ctx context.Context, db bun.IDB, id int64) (*Competition, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, db, id)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) LockByID(ctx context.Context, db bun.IDB, id int64) (*Competition, error) {
	if f.LockByIDFn != nil {
		return f.LockByIDFn(ctx, db, id)
	}
	return f.GetByID(ctx, db, id)
}

func (f *FakeRepository) ListForUser(ctx context.Context, db bun.IDB, userID int64) ([]*Competition, error) {
	if f.ListForUserFn != nil {
		return f.ListForUserFn(ctx, db, userID)
	}
	return []*Competition{}, nil
}

func (f *FakeRepository) ListCreatedBy(ctx context.Context, db bun.IDB, userID int64) ([]*Competition, error) {
	if f.ListCreatedByFn != nil {
		return f.ListCreatedByFn(ctx, db, userID)
	}
	return []*Competition{}, nil
}

func (f *FakeRepository) Touch(ctx context.Context, db bun.IDB, id int64) error {
	if f.TouchFn != nil {
		return f.TouchFn(ctx, db, id)
	}
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, id)
	}
	return nil
}

func (f *FakeRepository) ListParticipantIDs(ctx context.Context, db bun.IDB, competitionID int64) ([]int64, error) {
	if f.ListParticipantIDsFn != nil {
		return f.ListParticipantIDsFn(ctx, db, competitionID)
	}
	return []int64{}, nil
}

func (f *FakeRepository) IsParticipant(ctx context.Context, db bun.IDB, competitionID, userID int64) (bool, error) {
	if f.IsParticipantFn != nil {
		return f.IsParticipantFn(ctx, db, competitionID, userID)
	}
	ids, err := f.ListParticipantIDs(ctx, db, competitionID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeRepository) AddParticipants(ctx context.Context, db bun.IDB, competitionID int64, userIDs []int64) error {
	if f.AddParticipantsFn != nil {
		return f.AddParticipantsFn(ctx, db, competitionID, userIDs)
	}
	return nil
}

func (f *FakeRepository) RemoveParticipant(ctx context.Context, db bun.IDB, competitionID, userID int64) error {
	if f.RemoveParticipantFn != nil {
		return f.RemoveParticipantFn(ctx, db, competitionID, userID)
	}
	return nil
}

func (f *FakeRepository) DeleteParticipants(ctx context.Context, db bun.IDB, competitionID int64) error {
	if f.DeleteParticipantsFn != nil {
		return f.DeleteParticipantsFn(ctx, db, competitionID)
	}
	return nil
}

// Seed installs read lookups over one competition and its member ids. The member
// slice is read on every call so tests may mutate it.
func (f *FakeRepository) Seed(competition *Competition, members *[]int64) *FakeRepository {
	f.GetByIDFn = func(ctx context.Context, db bun.IDB, id int64) (*Competition, error) {
		if id == competition.ID {
			return competition, nil
		}
		return nil, ErrNotFound
	}
	f.ListParticipantIDsFn = func(ctx context.Context, db bun.IDB, competitionID int64) ([]int64, error) {
		if competitionID != competition.ID {
			return []int64{}, nil
		}
		out := make([]int64, len(*members))
		copy(out, *members)
		return out, nil
	}
	return f
}

var _ Repository = (*FakeRepository)(nil)
