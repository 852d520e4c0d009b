package competitiondb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := bun.NewDB(sqlDB, pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestLockByIDSelectsForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	created := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .* FROM "competitions" AS "c" WHERE \(c\.id = 10\) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "icon", "creator_id", "created_at", "updated_at"}).
			AddRow(10, "Office league", "trophy", 1, created, created))

	competition, err := NewRepository(db).LockByID(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.Equal(t, "Office league", competition.Title)
	assert.Equal(t, int64(1), competition.CreatorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockByIDMissingRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM "competitions" AS "c" WHERE \(c\.id = 404\) FOR UPDATE`).
		WillReturnError(sql.ErrNoRows)

	_, err := NewRepository(db).LockByID(context.Background(), nil, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddParticipantsSkipsExistingMembers(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO "competition_participants" .*\(10, 2, .*\(10, 3, .* ON CONFLICT \(competition_id, user_id\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewRepository(db).AddParticipants(context.Background(), nil, 10, []int64{2, 3}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddParticipantsEmptySkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)

	require.NoError(t, NewRepository(db).AddParticipants(context.Background(), nil, 10, []int64{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListParticipantIDs(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT cp\.user_id FROM "competition_participants" AS "cp" WHERE \(cp\.competition_id = 10\) ORDER BY cp\.user_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1).AddRow(2).AddRow(3))

	ids, err := NewRepository(db).ListParticipantIDs(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingCompetitionIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM "competitions" AS "c" WHERE \(id = 10\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewRepository(db).Delete(context.Background(), nil, 10)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTouchMissingCompetitionIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "competitions" AS "c" SET updated_at = .* WHERE \(id = 10\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewRepository(db).Touch(context.Background(), nil, 10)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
