package userdb

import (
	"context"

	"github.com/uptrace/bun"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	GetByIDFn       func(ctx context.Context, db bun.IDB, id int64) (*User, error)
	GetByUsernameFn func(ctx context.Context, db bun.IDB, username string) (*User, error)
	GetByIDsFn      func(ctx context.Context, db bun.IDB, ids []int64) ([]*User, error)
	CreateFn        func(ctx context.Context, db bun.IDB, user *User) error
}

func (f *FakeRepository) GetByID(ctx context.Context, db bun.IDB, id int64) (*User, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, db, id)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) GetByUsername(ctx context.Context, db bun.IDB, username string) (*User, error) {
	if f.GetByUsernameFn != nil {
		return f.GetByUsernameFn(ctx, db, username)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) GetByIDs(ctx context.Context, db bun.IDB, ids []int64) ([]*User, error) {
	if f.GetByIDsFn != nil {
		return f.GetByIDsFn(ctx, db, ids)
	}
	return []*User{}, nil
}

func (f *FakeRepository) Create(ctx context.Context, db bun.IDB, user *User) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, db, user)
	}
	return nil
}

// Seed installs lookups over a fixed set of users.
func (f *FakeRepository) Seed(users ...*User) *FakeRepository {
	byID := make(map[int64]*User, len(users))
	byName := make(map[string]*User, len(users))
	for _, u := range users {
		byID[u.ID] = u
		byName[u.Username] = u
	}
	f.GetByIDFn = func(ctx context.Context, db bun.IDB, id int64) (*User, error) {
		if u, ok := byID[id]; ok {
			return u, nil
		}
		return nil, ErrNotFound
	}
	f.GetByUsernameFn = func(ctx context.Context, db bun.IDB, username string) (*User, error) {
		if u, ok := byName[username]; ok {
			return u, nil
		}
		return nil, ErrNotFound
	}
	f.GetByIDsFn = func(ctx context.Context, db bun.IDB, ids []int64) ([]*User, error) {
		out := []*User{}
		for _, id := range ids {
			if u, ok := byID[id]; ok {
				out = append(out, u)
			}
		}
		return out, nil
	}
	return f
}

var _ Repository = (*FakeRepository)(nil)
