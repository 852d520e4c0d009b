package competitiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a competition is not found.
var ErrNotFound = errors.New("competition not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new competition repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create inserts a competition.
func (r *Impl) Create(ctx context.Context, db bun.IDB, competition *Competition) error {
	db = r.resolveDB(db)
	now := time.Now().UTC()
	competition.CreatedAt = now
	competition.UpdatedAt = now
	if _, err := db.NewInsert().Model(competition).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create competition: %w", err)
	}
	return nil
}

// GetByID retrieves a competition by id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*Competition, error) {
	return r.get(ctx, r.resolveDB(db), id, false)
}

// LockByID retrieves a competition with SELECT ... FOR UPDATE.
func (r *Impl) LockByID(ctx context.Context, db bun.IDB, id int64) (*Competition, error) {
	return r.get(ctx, r.resolveDB(db), id, true)
}

func (r *Impl) get(ctx context.Context, db bun.IDB, id int64, lock bool) (*Competition, error) {
	competition := new(Competition)
	q := db.NewSelect().
		Model(competition).
		Where("c.id = ?", id)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get competition: %w", err)
	}
	return competition, nil
}

// ListForUser returns competitions the user created or participates in, newest first.
func (r *Impl) ListForUser(ctx context.Context, db bun.IDB, userID int64) ([]*Competition, error) {
	db = r.resolveDB(db)
	var competitions []*Competition
	err := db.NewSelect().
		Model(&competitions).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("c.creator_id = ?", userID).
				WhereOr("EXISTS (SELECT 1 FROM competition_participants AS cp WHERE cp.competition_id = c.id AND cp.user_id = ?)", userID)
		}).
		OrderExpr("c.created_at DESC, c.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions for user: %w", err)
	}
	return competitions, nil
}

// ListCreatedBy returns competitions the user created, newest first.
func (r *Impl) ListCreatedBy(ctx context.Context, db bun.IDB, userID int64) ([]*Competition, error) {
	db = r.resolveDB(db)
	var competitions []*Competition
	err := db.NewSelect().
		Model(&competitions).
		Where("c.creator_id = ?", userID).
		OrderExpr("c.created_at DESC, c.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions created by user: %w", err)
	}
	return competitions, nil
}

// Touch bumps updated_at.
func (r *Impl) Touch(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Competition)(nil)).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch competition: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the competition row. Dependent rows must already be gone.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Competition)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete competition: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ListParticipantIDs returns member user ids ordered by id.
func (r *Impl) ListParticipantIDs(ctx context.Context, db bun.IDB, competitionID int64) ([]int64, error) {
	db = r.resolveDB(db)
	ids := []int64{}
	err := db.NewSelect().
		Model((*Participant)(nil)).
		ColumnExpr("cp.user_id").
		Where("cp.competition_id = ?", competitionID).
		OrderExpr("cp.user_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list competition participants: %w", err)
	}
	return ids, nil
}

// IsParticipant reports whether userID is a member.
func (r *Impl) IsParticipant(ctx context.Context, db bun.IDB, competitionID, userID int64) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Participant)(nil)).
		Where("cp.competition_id = ?", competitionID).
		Where("cp.user_id = ?", userID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check competition membership: %w", err)
	}
	return exists, nil
}

// AddParticipants inserts memberships, skipping users who are already members.
func (r *Impl) AddParticipants(ctx context.Context, db bun.IDB, competitionID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	now := time.Now().UTC()
	rows := make([]*Participant, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, &Participant{CompetitionID: competitionID, UserID: id, JoinedAt: now})
	}
	if _, err := db.NewInsert().
		Model(&rows).
		On("CONFLICT (competition_id, user_id) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to add competition participants: %w", err)
	}
	return nil
}

// RemoveParticipant removes one membership.
func (r *Impl) RemoveParticipant(ctx context.Context, db bun.IDB, competitionID, userID int64) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*Participant)(nil)).
		Where("competition_id = ?", competitionID).
		Where("user_id = ?", userID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove competition participant: %w", err)
	}
	return nil
}

// DeleteParticipants removes every membership of a competition.
func (r *Impl) DeleteParticipants(ctx context.Context, db bun.IDB, competitionID int64) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*Participant)(nil)).
		Where("competition_id = ?", competitionID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete competition participants: %w", err)
	}
	return nil
}
