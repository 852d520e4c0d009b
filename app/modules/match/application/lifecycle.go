package matchservice

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	userservice "github.com/Black-And-White-Club/matchday/app/modules/user/application"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/Black-And-White-Club/matchday/app/shared/results"
	"github.com/uptrace/bun"
)

// StartMatch moves a pending match into progress. Only the competition creator may do so.
func (s *MatchService) StartMatch(ctx context.Context, matchID int64, actor string) (*MatchInfo, error) {
	startTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*MatchInfo, error], error) {
		return s.startMatchLogic(ctx, db, matchID, actor)
	}
	return operations.Execute(s.runner, ctx, "StartMatch", strconv.FormatInt(matchID, 10), startTx)
}

func (s *MatchService) startMatchLogic(ctx context.Context, db bun.IDB, matchID int64, actorName string) (results.OperationResult[*MatchInfo, error], error) {
	match, err := s.loadMatch(ctx, db, matchID, true)
	if err != nil {
		return operations.Classify[*MatchInfo](err)
	}

	// Status is checked before the actor so the outcome does not depend on who asks.
	if !matchdomain.CanStart(match.Status) {
		return operations.Fail[*MatchInfo](apperrors.InvalidState("match %d is %s; only PENDING matches can be started", match.ID, match.Status))
	}

	actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
	if err != nil {
		return operations.Classify[*MatchInfo](err)
	}
	competition, err := s.loadCompetition(ctx, db, match.CompetitionID, false)
	if err != nil {
		return operations.Classify[*MatchInfo](err)
	}
	if competition.CreatorID != actor.ID {
		return operations.Fail[*MatchInfo](apperrors.Unauthorized("only the competition creator can start matches"))
	}

	startMatch(match, s.now())
	if err := s.matches.UpdateState(ctx, db, match); err != nil {
		return results.OperationResult[*MatchInfo, error]{}, fmt.Errorf("failed to start match: %w", err)
	}

	info, err := s.describe(ctx, db, match)
	if err != nil {
		return results.OperationResult[*MatchInfo, error]{}, err
	}
	return operations.Succeed(info)
}

// SubmitScores replaces the ledger of a match and marks it completed. Any human
// participant of the match may submit; resubmission replaces the previous ledger.
func (s *MatchService) SubmitScores(ctx context.Context, matchID int64, actor string, scores map[int64]int) (*MatchInfo, error) {
	submitTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*MatchInfo, error], error) {
		return s.submitScoresLogic(ctx, db, matchID, actor, scores)
	}
	return operations.Execute(s.runner, ctx, "SubmitScores", strconv.FormatInt(matchID, 10), submitTx)
}

func (s *MatchService) submitScoresLogic(ctx context.Context, db bun.IDB, matchID int64, actorName string, scores map[int64]int) (results.OperationResult[*MatchInfo, error], error) {
	// The match lock serializes concurrent submissions so no ledger is seen half replaced.
	match, err := s.loadMatch(ctx, db, matchID, true)
	if err != nil {
		return operations.Classify[*MatchInfo](err)
	}
	if !matchdomain.CanSubmitScores(match.Status) {
		return operations.Fail[*MatchInfo](apperrors.InvalidState("match %d is %s; scores can only be submitted once it has started", match.ID, match.Status))
	}

	actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
	if err != nil {
		return operations.Classify[*MatchInfo](err)
	}

	refs, err := s.matches.ListParticipants(ctx, db, match.ID)
	if err != nil {
		return results.OperationResult[*MatchInfo, error]{}, fmt.Errorf("failed to load match participants: %w", err)
	}
	inMatch := make(map[participant.Ref]struct{}, len(refs))
	for _, ref := range refs {
		inMatch[ref] = struct{}{}
	}
	if _, ok := inMatch[participant.Human(actor.ID)]; !ok {
		return operations.Fail[*MatchInfo](apperrors.Unauthorized("only match participants can submit scores"))
	}

	keys := make([]int64, 0, len(scores))
	for key := range scores {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	ledger := make(map[participant.Ref]int, len(scores))
	for _, key := range keys {
		ref, err := participant.Resolve(key)
		if err != nil {
			return operations.Fail[*MatchInfo](err)
		}
		if _, ok := inMatch[ref]; !ok {
			return operations.Fail[*MatchInfo](apperrors.Validation("participant %d is not part of match %d", key, match.ID))
		}
		ledger[ref] = scores[key]
	}

	if err := s.ledger.Replace(ctx, db, match.ID, ledger); err != nil {
		return results.OperationResult[*MatchInfo, error]{}, err
	}

	match.ScoresSubmitted = true
	match.Status = matchdomain.StatusCompleted
	if err := s.matches.UpdateState(ctx, db, match); err != nil {
		return results.OperationResult[*MatchInfo, error]{}, fmt.Errorf("failed to complete match: %w", err)
	}

	info, err := s.describe(ctx, db, match)
	if err != nil {
		return results.OperationResult[*MatchInfo, error]{}, err
	}
	return operations.Succeed(info)
}

// DeleteMatch removes a match and its ledger. Only the competition creator may do so.
func (s *MatchService) DeleteMatch(ctx context.Context, matchID int64, actor string) error {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		return s.deleteMatchLogic(ctx, db, matchID, actor)
	}
	_, err := operations.Execute(s.runner, ctx, "DeleteMatch", strconv.FormatInt(matchID, 10), deleteTx)
	return err
}

func (s *MatchService) deleteMatchLogic(ctx context.Context, db bun.IDB, matchID int64, actorName string) (results.OperationResult[struct{}, error], error) {
	unlocked, err := s.loadMatch(ctx, db, matchID, false)
	if err != nil {
		return operations.Classify[struct{}](err)
	}
	// Competition before match, the order DeleteCompetition locks in. Holding the
	// competition lock also keeps deletes out of a concurrent CreateMatch numbering.
	competition, err := s.loadCompetition(ctx, db, unlocked.CompetitionID, true)
	if err != nil {
		return operations.Classify[struct{}](err)
	}
	match, err := s.loadMatch(ctx, db, matchID, true)
	if err != nil {
		return operations.Classify[struct{}](err)
	}
	actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
	if err != nil {
		return operations.Classify[struct{}](err)
	}
	if competition.CreatorID != actor.ID {
		return operations.Fail[struct{}](apperrors.Unauthorized("only the competition creator can delete matches"))
	}

	if err := s.ledger.DeleteForMatch(ctx, db, match.ID); err != nil {
		return results.OperationResult[struct{}, error]{}, fmt.Errorf("failed to delete match ledger: %w", err)
	}
	if err := s.matches.DeleteParticipants(ctx, db, match.ID); err != nil {
		return results.OperationResult[struct{}, error]{}, err
	}
	if err := s.matches.Delete(ctx, db, match.ID); err != nil {
		return results.OperationResult[struct{}, error]{}, err
	}
	return operations.Succeed(struct{}{})
}
