package matchdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

var matchColumns = []string{
	"id", "competition_id", "title", "match_number", "status",
	"started_at", "scores_submitted", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := bun.NewDB(sqlDB, pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func matchRow(id int64, status matchdomain.Status) *sqlmock.Rows {
	created := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	return sqlmock.NewRows(matchColumns).
		AddRow(id, 10, "Friday", 3, string(status), nil, false, created, created)
}

func TestLockByIDSelectsForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT .* FROM "matches" AS "m" WHERE \(m\.id = 5\) FOR UPDATE`).
		WillReturnRows(matchRow(5, matchdomain.StatusInProgress))

	match, err := NewRepository(db).LockByID(context.Background(), nil, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), match.ID)
	assert.Equal(t, int64(10), match.CompetitionID)
	assert.Equal(t, 3, match.MatchNumber)
	assert.Equal(t, matchdomain.StatusInProgress, match.Status)
	assert.Nil(t, match.StartedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDDoesNotLock(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT .* FROM "matches" AS "m" WHERE \(m\.id = 5\)$`).
		WillReturnRows(matchRow(5, matchdomain.StatusPending))

	_, err := NewRepository(db).GetByID(context.Background(), nil, 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockByIDMissingRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM "matches" AS "m" WHERE \(m\.id = 404\) FOR UPDATE`).
		WillReturnError(sql.ErrNoRows)

	_, err := NewRepository(db).LockByID(context.Background(), nil, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByCompetition(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "matches" AS "m" WHERE \(m\.competition_id = 10\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := NewRepository(db).CountByCompetition(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReturnsID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "matches" .*'Friday', 4, 'PENDING'.* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	match := &Match{CompetitionID: 10, Title: "Friday", MatchNumber: 4, Status: matchdomain.StatusPending}
	require.NoError(t, NewRepository(db).Create(context.Background(), nil, match))
	assert.Equal(t, int64(42), match.ID)
	assert.False(t, match.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingMatchIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM "matches" AS "m" WHERE \(id = 5\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewRepository(db).Delete(context.Background(), nil, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddParticipantsInsertsEveryRef(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO "match_participants" .*\(5, 'human', 1\).*\(5, 'bot', 7\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := NewRepository(db).AddParticipants(context.Background(), nil, 5, []participant.Ref{
		participant.Human(1),
		participant.Bot(7),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddParticipantsEmptySkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)

	require.NoError(t, NewRepository(db).AddParticipants(context.Background(), nil, 5, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListParticipantsForMatchesGroupsByMatch(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM "match_participants" AS "mp" WHERE \(mp\.match_id IN \(5, 6\)\)`).
		WillReturnRows(sqlmock.NewRows([]string{"match_id", "participant_kind", "participant_id"}).
			AddRow(5, "human", 1).
			AddRow(5, "bot", 7).
			AddRow(6, "human", 2))

	byMatch, err := NewRepository(db).ListParticipantsForMatches(context.Background(), nil, []int64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, []participant.Ref{participant.Human(1), participant.Bot(7)}, byMatch[5])
	assert.Equal(t, []participant.Ref{participant.Human(2)}, byMatch[6])
	assert.NoError(t, mock.ExpectationsWereMet())
}
