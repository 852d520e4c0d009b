package botdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for bot persistence.
type Repository interface {
	ListByCompetition(ctx context.Context, db bun.IDB, competitionID int64) ([]*Bot, error)
	GetByIDs(ctx context.Context, db bun.IDB, ids []int64) ([]*Bot, error)
	CreateMany(ctx context.Context, db bun.IDB, bots []*Bot) error
	DeleteByCompetition(ctx context.Context, db bun.IDB, competitionID int64) error
}
