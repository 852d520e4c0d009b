package scoredb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for match score persistence.
type Repository interface {
	// Replace deletes every score of matchID and inserts scores in its place.
	Replace(ctx context.Context, db bun.IDB, matchID int64, scores []*Score) error

	// ListForMatch returns the scores of one match.
	ListForMatch(ctx context.Context, db bun.IDB, matchID int64) ([]*Score, error)

	// ListForMatches returns the scores of every match in matchIDs.
	ListForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) ([]*Score, error)

	// DeleteForMatch removes the scores of one match.
	DeleteForMatch(ctx context.Context, db bun.IDB, matchID int64) error

	// DeleteForCompetition removes the scores of every match in a competition.
	DeleteForCompetition(ctx context.Context, db bun.IDB, competitionID int64) error
}
