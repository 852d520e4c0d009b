package standingsservice

import (
	"bytes"
	"context"
	"testing"

	botdb "github.com/Black-And-White-Club/matchday/app/modules/bot/infrastructure/repositories"
	competitiondb "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/repositories"
	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	matchdb "github.com/Black-And-White-Club/matchday/app/modules/match/infrastructure/repositories"
	scoreservice "github.com/Black-And-White-Club/matchday/app/modules/score/application"
	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"
)

type FakeLedger struct {
	entries map[int64][]scoreservice.Entry
	asked   []int64
}

func (f *FakeLedger) ForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) (map[int64][]scoreservice.Entry, error) {
	f.asked = matchIDs
	out := make(map[int64][]scoreservice.Entry, len(matchIDs))
	for _, id := range matchIDs {
		if e, ok := f.entries[id]; ok {
			out[id] = e
		}
	}
	return out, nil
}

var _ Ledger = (*FakeLedger)(nil)

func entry(ref participant.Ref, score int) scoreservice.Entry {
	return scoreservice.Entry{Participant: ref, Score: score, Confirmed: true}
}

// newService seeds competition 10 with members alice (1) and bob (2) and bot 7.
// carol (3) has left but still appears in the ledger of match 51.
func newService(t *testing.T, completed []*matchdb.Match, ledger *FakeLedger) *StandingsService {
	t.Helper()

	members := []int64{1, 2}
	competitions := (&competitiondb.FakeRepository{}).Seed(
		&competitiondb.Competition{ID: 10, Title: "Friday Darts", CreatorID: 1},
		&members,
	)
	users := (&userdb.FakeRepository{}).Seed(
		&userdb.User{ID: 1, Username: "alice"},
		&userdb.User{ID: 2, Username: "bob"},
		&userdb.User{ID: 3, Username: "carol"},
	)
	bots := (&botdb.FakeRepository{}).Seed(&botdb.Bot{ID: 7, CompetitionID: 10, Username: "RoboBob"})
	matches := &matchdb.FakeRepository{
		ListByCompetitionAndStatusFn: func(ctx context.Context, db bun.IDB, competitionID int64, status matchdomain.Status) ([]*matchdb.Match, error) {
			require.Equal(t, matchdomain.StatusCompleted, status)
			return completed, nil
		},
	}

	obs := observability.NewNoop()
	return NewStandingsService(competitions, users, bots, matches, ledger,
		obs.Provider.Logger, obs.Registry.Metrics, obs.Registry.Tracer, nil)
}

func TestGetStandings(t *testing.T) {
	ledger := &FakeLedger{entries: map[int64][]scoreservice.Entry{
		50: {entry(participant.Human(1), 10), entry(participant.Bot(7), 12)},
		51: {entry(participant.Human(2), 8), entry(participant.Human(3), 9)},
		52: {entry(participant.Human(1), 6), entry(participant.Bot(7), 3)},
	}}
	svc := newService(t, []*matchdb.Match{{ID: 50}, {ID: 51}, {ID: 52}}, ledger)

	view, err := svc.GetStandings(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, []int64{50, 51, 52}, ledger.asked)
	assert.Equal(t, "Friday Darts", view.CompetitionTitle)
	assert.Equal(t, 3, view.CompletedMatches)
	assert.Equal(t, []StandingRow{
		{Rank: 1, ParticipantID: 1, Name: "alice", Wins: 1, MatchesPlayed: 2, Losses: 1, PointsScored: 16},
		{Rank: 2, ParticipantID: -7, Name: "RoboBob", IsBot: true, Wins: 1, MatchesPlayed: 2, Losses: 1, PointsScored: 15},
		{Rank: 3, ParticipantID: 2, Name: "bob", MatchesPlayed: 1, Losses: 1, PointsScored: 8},
	}, view.Rows)
}

func TestGetStandingsWithoutMatches(t *testing.T) {
	svc := newService(t, nil, &FakeLedger{})

	view, err := svc.GetStandings(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, view.Rows, 3)
	for _, r := range view.Rows {
		assert.Zero(t, r.Wins+r.MatchesPlayed+r.Draws+r.Losses+r.PointsScored)
	}
	assert.Equal(t, []int64{1, 2, -7}, []int64{view.Rows[0].ParticipantID, view.Rows[1].ParticipantID, view.Rows[2].ParticipantID})
}

func TestGetStandingsUnknownCompetition(t *testing.T) {
	svc := newService(t, nil, &FakeLedger{})

	_, err := svc.GetStandings(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStandingsWorkbook(t *testing.T) {
	ledger := &FakeLedger{entries: map[int64][]scoreservice.Entry{
		50: {entry(participant.Human(2), 4), entry(participant.Bot(7), 1)},
	}}
	svc := newService(t, []*matchdb.Match{{ID: 50}}, ledger)

	data, err := svc.StandingsWorkbook(context.Background(), 10)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(standingsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Rank", "Participant", "Type", "Wins", "Played", "Draws", "Losses", "Points"}, rows[0])
	assert.Equal(t, []string{"1", "bob", "Human", "1", "1", "0", "0", "4"}, rows[1])
	assert.Equal(t, []string{"2", "RoboBob", "Bot", "0", "1", "0", "1", "1"}, rows[2])
}

func TestStandingsChart(t *testing.T) {
	pngMagic := []byte("\x89PNG")

	t.Run("bars when someone has won", func(t *testing.T) {
		ledger := &FakeLedger{entries: map[int64][]scoreservice.Entry{
			50: {entry(participant.Human(1), 3)},
		}}
		svc := newService(t, []*matchdb.Match{{ID: 50}}, ledger)

		data, err := svc.StandingsChart(context.Background(), 10)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic))
	})

	t.Run("placeholder without wins", func(t *testing.T) {
		svc := newService(t, nil, &FakeLedger{})

		data, err := svc.StandingsChart(context.Background(), 10)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic))
	})
}
