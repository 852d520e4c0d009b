package competitiondb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for competition and membership persistence.
type Repository interface {
	// Create inserts a competition and sets its id.
	Create(ctx context.Context, db bun.IDB, competition *Competition) error

	// GetByID retrieves a competition by id.
	GetByID(ctx context.Context, db bun.IDB, id int64) (*Competition, error)

	// LockByID retrieves a competition and holds a row lock on it until the transaction ends.
	LockByID(ctx context.Context, db bun.IDB, id int64) (*Competition, error)

	// ListForUser returns competitions the user created or participates in.
	ListForUser(ctx context.Context, db bun.IDB, userID int64) ([]*Competition, error)

	// ListCreatedBy returns competitions the user created.
	ListCreatedBy(ctx context.Context, db bun.IDB, userID int64) ([]*Competition, error)

	// Touch bumps updated_at.
	Touch(ctx context.Context, db bun.IDB, id int64) error

	// Delete removes the competition row.
	Delete(ctx context.Context, db bun.IDB, id int64) error

	// ListParticipantIDs returns the member user ids ordered by id.
	ListParticipantIDs(ctx context.Context, db bun.IDB, competitionID int64) ([]int64, error)

	// IsParticipant reports whether userID is a member.
	IsParticipant(ctx context.Context, db bun.IDB, competitionID, userID int64) (bool, error)

	// AddParticipants adds memberships, ignoring users already present.
	AddParticipants(ctx context.Context, db bun.IDB, competitionID int64, userIDs []int64) error

	// RemoveParticipant removes one membership.
	RemoveParticipant(ctx context.Context, db bun.IDB, competitionID, userID int64) error

	// DeleteParticipants removes every membership of a competition.
	DeleteParticipants(ctx context.Context, db bun.IDB, competitionID int64) error
}
