package scoreservice

import (
	"context"
	"errors"
	"testing"

	scoredb "github.com/Black-And-White-Club/matchday/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func TestLedgerReplace(t *testing.T) {
	tests := []struct {
		name     string
		scores   map[participant.Ref]int
		repoErr  error
		wantRows []scoredb.Score
		wantErr  bool
	}{
		{
			name: "rows are confirmed and ordered by kind then id",
			scores: map[participant.Ref]int{
				participant.Human(9): 3,
				participant.Bot(2):   7,
				participant.Human(1): 5,
			},
			wantRows: []scoredb.Score{
				{MatchID: 4, ParticipantKind: participant.KindBot, ParticipantID: 2, Score: 7, Confirmed: true},
				{MatchID: 4, ParticipantKind: participant.KindHuman, ParticipantID: 1, Score: 5, Confirmed: true},
				{MatchID: 4, ParticipantKind: participant.KindHuman, ParticipantID: 9, Score: 3, Confirmed: true},
			},
		},
		{
			name:     "empty map clears the ledger",
			scores:   map[participant.Ref]int{},
			wantRows: []scoredb.Score{},
		},
		{
			name:    "repository failure is wrapped",
			scores:  map[participant.Ref]int{participant.Human(1): 1},
			repoErr: errors.New("db down"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeScoreRepo()
			var got []scoredb.Score
			repo.ReplaceFunc = func(ctx context.Context, db bun.IDB, matchID int64, scores []*scoredb.Score) error {
				got = []scoredb.Score{}
				for _, s := range scores {
					got = append(got, *s)
				}
				return tt.repoErr
			}

			err := NewLedger(repo, nil).Replace(context.Background(), nil, 4, tt.scores)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "db down")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, got)
			assert.Equal(t, []string{"Replace"}, repo.Trace())
		})
	}
}

func TestLedgerForMatches(t *testing.T) {
	repo := NewFakeScoreRepo()
	repo.ListForMatchesFunc = func(ctx context.Context, db bun.IDB, matchIDs []int64) ([]*scoredb.Score, error) {
		return []*scoredb.Score{
			{MatchID: 1, ParticipantKind: participant.KindHuman, ParticipantID: 5, Score: 10, Confirmed: true},
			{MatchID: 1, ParticipantKind: participant.KindBot, ParticipantID: 5, Score: 8, Confirmed: true},
			{MatchID: 2, ParticipantKind: participant.KindHuman, ParticipantID: 5, Score: 1, Confirmed: true},
		}, nil
	}

	got, err := NewLedger(repo, nil).ForMatches(context.Background(), nil, []int64{1, 2, 3})
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Equal(t, []Entry{
		{Participant: participant.Human(5), Score: 10, Confirmed: true},
		{Participant: participant.Bot(5), Score: 8, Confirmed: true},
	}, got[1])
	assert.Equal(t, []Entry{{Participant: participant.Human(5), Score: 1, Confirmed: true}}, got[2])
	_, present := got[3]
	assert.False(t, present)
}
