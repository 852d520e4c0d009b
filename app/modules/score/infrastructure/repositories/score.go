package scoredb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new score repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Replace must run inside the caller's transaction so the delete and insert land together.
func (r *Impl) Replace(ctx context.Context, db bun.IDB, matchID int64, scores []*Score) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*Score)(nil)).
		Where("match_id = ?", matchID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear scores for match %d: %w", matchID, err)
	}
	if len(scores) == 0 {
		return nil
	}
	for _, s := range scores {
		s.MatchID = matchID
	}
	if _, err := db.NewInsert().Model(&scores).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert scores for match %d: %w", matchID, err)
	}
	return nil
}

func (r *Impl) ListForMatch(ctx context.Context, db bun.IDB, matchID int64) ([]*Score, error) {
	db = r.resolveDB(db)
	var scores []*Score
	err := db.NewSelect().
		Model(&scores).
		Where("ms.match_id = ?", matchID).
		OrderExpr("ms.participant_kind ASC, ms.participant_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for match %d: %w", matchID, err)
	}
	return scores, nil
}

func (r *Impl) ListForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) ([]*Score, error) {
	if len(matchIDs) == 0 {
		return []*Score{}, nil
	}
	db = r.resolveDB(db)
	var scores []*Score
	err := db.NewSelect().
		Model(&scores).
		Where("ms.match_id IN (?)", bun.In(matchIDs)).
		OrderExpr("ms.match_id ASC, ms.participant_kind ASC, ms.participant_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for matches: %w", err)
	}
	return scores, nil
}

func (r *Impl) DeleteForMatch(ctx context.Context, db bun.IDB, matchID int64) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*Score)(nil)).
		Where("match_id = ?", matchID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete scores for match %d: %w", matchID, err)
	}
	return nil
}

func (r *Impl) DeleteForCompetition(ctx context.Context, db bun.IDB, competitionID int64) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*Score)(nil)).
		Where("match_id IN (SELECT id FROM matches WHERE competition_id = ?)", competitionID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete scores for competition %d: %w", competitionID, err)
	}
	return nil
}
