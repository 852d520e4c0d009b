package matchdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a match is not found.
var ErrNotFound = errors.New("match not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new match repository.
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

// Create inserts a match.
func (r *Impl) Create(ctx context.Context, db bun.IDB, match *Match) error {
	db = r.resolveDB(db)
	now := time.Now().UTC()
	match.CreatedAt = now
	match.UpdatedAt = now
	if _, err := db.NewInsert().Model(match).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

// GetByID retrieves a match by id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*Match, error) {
	return r.get(ctx, r.resolveDB(db), id, false)
}

// LockByID retrieves a match with SELECT ... FOR UPDATE.
func (r *Impl) LockByID(ctx context.Context, db bun.IDB, id int64) (*Match, error) {
	return r.get(ctx, r.resolveDB(db), id, true)
}

func (r *Impl) get(ctx context.Context, db bun.IDB, id int64, lock bool) (*Match, error) {
	match := new(Match)
	q := db.NewSelect().
		Model(match).
		Where("m.id = ?", id)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// ListByCompetition returns a competition's matches ordered by match number.
func (r *Impl) ListByCompetition(ctx context.Context, db bun.IDB, competitionID int64) ([]*Match, error) {
	db = r.resolveDB(db)
	matches := []*Match{}
	err := db.NewSelect().
		Model(&matches).
		Where("m.competition_id = ?", competitionID).
		OrderExpr("m.match_number ASC, m.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// ListByCompetitionAndStatus returns a competition's matches in status, ordered by match number.
func (r *Impl) ListByCompetitionAndStatus(ctx context.Context, db bun.IDB, competitionID int64, status matchdomain.Status) ([]*Match, error) {
	db = r.resolveDB(db)
	matches := []*Match{}
	err := db.NewSelect().
		Model(&matches).
		Where("m.competition_id = ?", competitionID).
		Where("m.status = ?", status).
		OrderExpr("m.match_number ASC, m.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by status: %w", err)
	}
	return matches, nil
}

// CountByCompetition counts a competition's matches.
func (r *Impl) CountByCompetition(ctx context.Context, db bun.IDB, competitionID int64) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().
		Model((*Match)(nil)).
		Where("m.competition_id = ?", competitionID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

// UpdateState persists the lifecycle columns of match.
func (r *Impl) UpdateState(ctx context.Context, db bun.IDB, match *Match) error {
	db = r.resolveDB(db)
	match.UpdatedAt = time.Now().UTC()
	result, err := db.NewUpdate().
		Model(match).
		Column("status", "started_at", "scores_submitted", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update match state: %w", err)
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

// Delete removes a match row.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Match)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
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

// DeleteByCompetition removes every match of a competition.
func (r *Impl) DeleteByCompetition(ctx context.Context, db bun.IDB, competitionID int64) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*Match)(nil)).
		Where("competition_id = ?", competitionID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}
	return nil
}

// AddParticipants stores the participant set of a match.
func (r *Impl) AddParticipants(ctx context.Context, db bun.IDB, matchID int64, refs []participant.Ref) error {
	if len(refs) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	rows := make([]*MatchParticipant, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, &MatchParticipant{MatchID: matchID, ParticipantKind: ref.Kind, ParticipantID: ref.ID})
	}
	if _, err := db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to add match participants: %w", err)
	}
	return nil
}

// ListParticipants returns humans first, then bots, each by id.
func (r *Impl) ListParticipants(ctx context.Context, db bun.IDB, matchID int64) ([]participant.Ref, error) {
	byMatch, err := r.ListParticipantsForMatches(ctx, db, []int64{matchID})
	if err != nil {
		return nil, err
	}
	refs := byMatch[matchID]
	if refs == nil {
		refs = []participant.Ref{}
	}
	return refs, nil
}

// ListParticipantsForMatches returns participants keyed by match id.
func (r *Impl) ListParticipantsForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) (map[int64][]participant.Ref, error) {
	out := make(map[int64][]participant.Ref, len(matchIDs))
	if len(matchIDs) == 0 {
		return out, nil
	}
	db = r.resolveDB(db)
	var rows []*MatchParticipant
	err := db.NewSelect().
		Model(&rows).
		Where("mp.match_id IN (?)", bun.In(matchIDs)).
		OrderExpr("mp.match_id ASC, mp.participant_kind DESC, mp.participant_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list match participants: %w", err)
	}
	for _, row := range rows {
		out[row.MatchID] = append(out[row.MatchID], row.Ref())
	}
	return out, nil
}

// DeleteParticipants removes the participant set of one match.
func (r *Impl) DeleteParticipants(ctx context.Context, db bun.IDB, matchID int64) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*MatchParticipant)(nil)).
		Where("match_id = ?", matchID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match participants: %w", err)
	}
	return nil
}

// DeleteParticipantsByCompetition removes the participant sets of every match in a competition.
func (r *Impl) DeleteParticipantsByCompetition(ctx context.Context, db bun.IDB, competitionID int64) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*MatchParticipant)(nil)).
		Where("match_id IN (SELECT id FROM matches WHERE competition_id = ?)", competitionID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match participants for competition: %w", err)
	}
	return nil
}
