package matchservice

import (
	"context"
	"strconv"

	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/Black-And-White-Club/matchday/app/shared/results"
	"github.com/uptrace/bun"
)

// GetMatch returns a match with its participants and ledger.
func (s *MatchService) GetMatch(ctx context.Context, matchID int64) (*MatchInfo, error) {
	getTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*MatchInfo, error], error) {
		match, err := s.loadMatch(ctx, db, matchID, false)
		if err != nil {
			return operations.Classify[*MatchInfo](err)
		}
		info, err := s.describe(ctx, db, match)
		if err != nil {
			return results.OperationResult[*MatchInfo, error]{}, err
		}
		return operations.Succeed(info)
	}
	return operations.Execute(s.runner, ctx, "GetMatch", strconv.FormatInt(matchID, 10), getTx)
}

// ListMatches returns every match of a competition ordered by match number.
func (s *MatchService) ListMatches(ctx context.Context, competitionID int64) ([]*MatchInfo, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*MatchInfo, error], error) {
		return s.listMatchesLogic(ctx, db, competitionID)
	}
	return operations.Execute(s.runner, ctx, "ListMatches", strconv.FormatInt(competitionID, 10), listTx)
}

func (s *MatchService) listMatchesLogic(ctx context.Context, db bun.IDB, competitionID int64) (results.OperationResult[[]*MatchInfo, error], error) {
	if _, err := s.loadCompetition(ctx, db, competitionID, false); err != nil {
		return operations.Classify[[]*MatchInfo](err)
	}

	matches, err := s.matches.ListByCompetition(ctx, db, competitionID)
	if err != nil {
		return results.OperationResult[[]*MatchInfo, error]{}, err
	}
	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}

	participants, err := s.matches.ListParticipantsForMatches(ctx, db, ids)
	if err != nil {
		return results.OperationResult[[]*MatchInfo, error]{}, err
	}
	ledgers, err := s.ledger.ForMatches(ctx, db, ids)
	if err != nil {
		return results.OperationResult[[]*MatchInfo, error]{}, err
	}

	seen := make(map[participant.Ref]struct{})
	var all []participant.Ref
	for _, refs := range participants {
		for _, ref := range refs {
			if _, ok := seen[ref]; !ok {
				seen[ref] = struct{}{}
				all = append(all, ref)
			}
		}
	}
	names, err := s.displayNames(ctx, db, all)
	if err != nil {
		return results.OperationResult[[]*MatchInfo, error]{}, err
	}

	out := make([]*MatchInfo, 0, len(matches))
	for _, m := range matches {
		out = append(out, toMatchInfo(m, participants[m.ID], ledgers[m.ID], names))
	}
	return operations.Succeed(out)
}
