package botdb

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type Impl struct {
	db bun.IDB
}

// NewRepository creates a new bot repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// ListByCompetition returns the roster ordered by id.
func (r *Impl) ListByCompetition(ctx context.Context, db bun.IDB, competitionID int64) ([]*Bot, error) {
	db = r.resolveDB(db)
	bots := []*Bot{}
	err := db.NewSelect().
		Model(&bots).
		Where("b.competition_id = ?", competitionID).
		OrderExpr("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bots: %w", err)
	}
	return bots, nil
}

// GetByIDs returns the bots whose id is in ids. Unknown ids are skipped.
func (r *Impl) GetByIDs(ctx context.Context, db bun.IDB, ids []int64) ([]*Bot, error) {
	if len(ids) == 0 {
		return []*Bot{}, nil
	}
	db = r.resolveDB(db)
	bots := []*Bot{}
	err := db.NewSelect().
		Model(&bots).
		Where("b.id IN (?)", bun.In(ids)).
		OrderExpr("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get bots by ids: %w", err)
	}
	return bots, nil
}

// CreateMany inserts bots and sets their ids.
func (r *Impl) CreateMany(ctx context.Context, db bun.IDB, bots []*Bot) error {
	if len(bots) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	now := time.Now().UTC()
	for _, b := range bots {
		b.CreatedAt = now
	}
	if _, err := db.NewInsert().Model(&bots).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create bots: %w", err)
	}
	return nil
}

// DeleteByCompetition removes the whole roster of a competition.
func (r *Impl) DeleteByCompetition(ctx context.Context, db bun.IDB, competitionID int64) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*Bot)(nil)).
		Where("competition_id = ?", competitionID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete bots: %w", err)
	}
	return nil
}
