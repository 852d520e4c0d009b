package botservice

import (
	"context"
	"testing"

	botdb "github.com/Black-And-White-Club/matchday/app/modules/bot/infrastructure/repositories"
	competitiondb "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type harness struct {
	svc     *BotService
	bots    *botdb.FakeRepository
	roster  []*botdb.Bot
	nextID  int64
	trace   []string
	members []int64
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		nextID:  20,
		members: []int64{1, 2},
		roster: []*botdb.Bot{
			{ID: 7, CompetitionID: 10, Username: "RoboBob"},
		},
	}
	h.bots = &botdb.FakeRepository{
		ListByCompetitionFn: func(ctx context.Context, db bun.IDB, competitionID int64) ([]*botdb.Bot, error) {
			h.trace = append(h.trace, "ListByCompetition")
			return h.roster, nil
		},
		DeleteByCompetitionFn: func(ctx context.Context, db bun.IDB, competitionID int64) error {
			h.trace = append(h.trace, "DeleteByCompetition")
			h.roster = nil
			return nil
		},
		CreateManyFn: func(ctx context.Context, db bun.IDB, bots []*botdb.Bot) error {
			h.trace = append(h.trace, "CreateMany")
			for _, b := range bots {
				b.ID = h.nextID
				h.nextID++
			}
			h.roster = append(h.roster, bots...)
			return nil
		},
	}
	competitions := (&competitiondb.FakeRepository{}).Seed(
		&competitiondb.Competition{ID: 10, Title: "Friday Darts", CreatorID: 1},
		&h.members,
	)
	users := (&userdb.FakeRepository{}).Seed(
		&userdb.User{ID: 1, Username: "alice"},
		&userdb.User{ID: 2, Username: "bob"},
		&userdb.User{ID: 4, Username: "dave"},
	)

	obs := observability.NewNoop()
	h.svc = NewBotService(h.bots, competitions, users, obs.Provider.Logger, obs.Registry.Metrics, obs.Registry.Tracer, nil)
	return h
}

func TestListBots(t *testing.T) {
	h := newHarness(t)

	got, err := h.svc.ListBots(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(-7), got[0].ID)
	assert.Equal(t, int64(7), got[0].BotID)
	assert.Equal(t, "RoboBob", got[0].Username)

	_, err = h.svc.ListBots(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRegenerateBots(t *testing.T) {
	h := newHarness(t)

	got, err := h.svc.RegenerateBots(context.Background(), 10, "bob", RegenerateRequest{
		Usernames: []string{" Alpha ", "Beta", "Gamma"},
		Count:     2,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"DeleteByCompetition", "CreateMany"}, h.trace)
	require.Len(t, got, 2)
	assert.Equal(t, BotInfo{ID: -20, BotID: 20, Username: "Alpha"}, got[0])
	assert.Equal(t, BotInfo{ID: -21, BotID: 21, Username: "Beta"}, got[1])
	assert.Len(t, h.roster, 2)
}

func TestRegenerateBotsFailures(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		req     RegenerateRequest
		wantErr error
	}{
		{name: "non-member", actor: "dave", req: RegenerateRequest{Usernames: []string{"A"}}, wantErr: apperrors.ErrAuthorization},
		{name: "unknown actor", actor: "ghost", req: RegenerateRequest{Usernames: []string{"A"}}, wantErr: apperrors.ErrNotFound},
		{name: "no usernames", actor: "bob", req: RegenerateRequest{}, wantErr: apperrors.ErrValidation},
		{name: "blank username", actor: "bob", req: RegenerateRequest{Usernames: []string{"A", "  "}}, wantErr: apperrors.ErrValidation},
		{name: "duplicate username", actor: "bob", req: RegenerateRequest{Usernames: []string{"A", "B", " A"}}, wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			_, err := h.svc.RegenerateBots(context.Background(), 10, tt.actor, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, h.trace)
			assert.Len(t, h.roster, 1)
		})
	}
}

func TestRegenerateBotsCountTruncatesBeforeValidation(t *testing.T) {
	h := newHarness(t)

	got, err := h.svc.RegenerateBots(context.Background(), 10, "alice", RegenerateRequest{
		Usernames: []string{"A", "B", "A"},
		Count:     2,
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeleteBots(t *testing.T) {
	h := newHarness(t)

	err := h.svc.DeleteBots(context.Background(), 10, "dave")
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
	assert.Len(t, h.roster, 1)

	require.NoError(t, h.svc.DeleteBots(context.Background(), 10, "alice"))
	assert.Empty(t, h.roster)
}
