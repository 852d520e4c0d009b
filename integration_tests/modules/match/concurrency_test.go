//go:build integration

package match_integration_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	competitionservice "github.com/Black-And-White-Club/matchday/app/modules/competition/application"
	matchservice "github.com/Black-And-White-Club/matchday/app/modules/match/application"
	"github.com/Black-And-White-Club/matchday/integration_tests/testutils"
)

func TestConcurrentCreateMatchNumbersAreDense(t *testing.T) {
	application := setup(t)
	ctx := testEnv.Ctx
	modules := application.Modules

	users, err := testutils.NewTestDataGenerator(11).CreateUsers(ctx, testEnv.DB, testEnv.DBService.UserDB, 2)
	require.NoError(t, err)
	owner, member := users[0], users[1]

	comp, err := modules.CompetitionModule.CompetitionService.CreateCompetition(ctx, owner.Username, competitionservice.CreateCompetitionRequest{
		Title:          "Lunch Ladder",
		ParticipantIDs: []int64{member.ID},
	})
	require.NoError(t, err)

	const n = 8
	matches := modules.MatchModule.MatchService

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []int
		errs    []error
	)
	for i := 0; i < n; i++ {
		actor := owner.Username
		if i%2 == 1 {
			actor = member.Username
		}
		wg.Add(1)
		go func(actor string) {
			defer wg.Done()
			created, err := matches.CreateMatch(ctx, actor, matchservice.CreateMatchRequest{
				CompetitionID:   comp.ID,
				ParticipantRefs: []int64{owner.ID, member.ID},
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			numbers = append(numbers, created.MatchNumber)
		}(actor)
	}
	wg.Wait()

	require.Empty(t, errs)
	want := make([]int, n)
	for i := range want {
		want[i] = i + 1
	}
	sort.Ints(numbers)
	assert.Equal(t, want, numbers)

	listed, err := matches.ListMatches(ctx, comp.ID)
	require.NoError(t, err)
	require.Len(t, listed, n)
	for i, m := range listed {
		assert.Equal(t, i+1, m.MatchNumber)
	}
}

func TestConcurrentSubmitScoresKeepsOneLedger(t *testing.T) {
	application := setup(t)
	ctx := testEnv.Ctx
	modules := application.Modules

	users, err := testutils.NewTestDataGenerator(13).CreateUsers(ctx, testEnv.DB, testEnv.DBService.UserDB, 2)
	require.NoError(t, err)
	owner, member := users[0], users[1]

	comp, err := modules.CompetitionModule.CompetitionService.CreateCompetition(ctx, owner.Username, competitionservice.CreateCompetitionRequest{
		Title:          "Evening Singles",
		ParticipantIDs: []int64{member.ID},
	})
	require.NoError(t, err)

	matches := modules.MatchModule.MatchService
	m, err := matches.CreateMatch(ctx, owner.Username, matchservice.CreateMatchRequest{
		CompetitionID:   comp.ID,
		ParticipantRefs: []int64{owner.ID, member.ID},
	})
	require.NoError(t, err)

	ledgers := []map[int64]int{
		{owner.ID: 21, member.ID: 10},
		{owner.ID: 5, member.ID: 30},
	}
	actors := []string{owner.Username, member.Username}

	var wg sync.WaitGroup
	errs := make([]error, len(ledgers))
	for i := range ledgers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = matches.SubmitScores(ctx, m.ID, actors[i], ledgers[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err, "resubmitting a completed match is allowed")
	}

	final, err := matches.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	got := make(map[int64]int, len(final.Scores))
	for _, s := range final.Scores {
		got[s.Ref] = s.Score
	}
	assert.Condition(t, func() bool {
		return assert.ObjectsAreEqual(ledgers[0], got) || assert.ObjectsAreEqual(ledgers[1], got)
	}, "ledger %v is not one of the submitted maps", got)
}
