package userdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for user lookups.
type Repository interface {
	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, db bun.IDB, id int64) (*User, error)

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, db bun.IDB, username string) (*User, error)

	// GetByIDs retrieves every user whose id is in ids. Missing ids are skipped.
	GetByIDs(ctx context.Context, db bun.IDB, ids []int64) ([]*User, error)

	// Create inserts a user and sets its id.
	Create(ctx context.Context, db bun.IDB, user *User) error
}
