package competitionservice

import (
	"context"
	"fmt"
	"strconv"

	competitiondb "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/repositories"
	userservice "github.com/Black-And-White-Club/matchday/app/modules/user/application"
	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/Black-And-White-Club/matchday/app/shared/results"
	"github.com/uptrace/bun"
)

// GetCompetition returns a competition with its members.
func (s *CompetitionService) GetCompetition(ctx context.Context, competitionID int64) (*CompetitionInfo, error) {
	getTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*CompetitionInfo, error], error) {
		competition, err := s.loadCompetition(ctx, db, competitionID, false)
		if err != nil {
			return operations.Classify[*CompetitionInfo](err)
		}
		info, err := s.describe(ctx, db, competition)
		if err != nil {
			return results.OperationResult[*CompetitionInfo, error]{}, err
		}
		return operations.Succeed(info)
	}
	return operations.Execute(s.runner, ctx, "GetCompetition", strconv.FormatInt(competitionID, 10), getTx)
}

// ListForUser returns the competitions actor created or participates in.
func (s *CompetitionService) ListForUser(ctx context.Context, actor string) ([]*CompetitionInfo, error) {
	return s.list(ctx, "ListForUser", actor, s.competitions.ListForUser)
}

// ListCreatedBy returns the competitions actor created.
func (s *CompetitionService) ListCreatedBy(ctx context.Context, actor string) ([]*CompetitionInfo, error) {
	return s.list(ctx, "ListCreatedBy", actor, s.competitions.ListCreatedBy)
}

func (s *CompetitionService) list(
	ctx context.Context,
	operationName string,
	actorName string,
	query func(ctx context.Context, db bun.IDB, userID int64) ([]*competitiondb.Competition, error),
) ([]*CompetitionInfo, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*CompetitionInfo, error], error) {
		actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
		if err != nil {
			return operations.Classify[[]*CompetitionInfo](err)
		}
		competitions, err := query(ctx, db, actor.ID)
		if err != nil {
			return results.OperationResult[[]*CompetitionInfo, error]{}, err
		}
		out := make([]*CompetitionInfo, 0, len(competitions))
		for _, c := range competitions {
			info, err := s.describe(ctx, db, c)
			if err != nil {
				return results.OperationResult[[]*CompetitionInfo, error]{}, err
			}
			out = append(out, info)
		}
		return operations.Succeed(out)
	}
	return operations.Execute(s.runner, ctx, operationName, actorName, listTx)
}

// SelectableParticipants lists the members and then the bots of a competition, with
// ids in the signed wire encoding.
func (s *CompetitionService) SelectableParticipants(ctx context.Context, competitionID int64) ([]SelectableParticipant, error) {
	selectTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]SelectableParticipant, error], error) {
		return s.selectableParticipantsLogic(ctx, db, competitionID)
	}
	return operations.Execute(s.runner, ctx, "SelectableParticipants", strconv.FormatInt(competitionID, 10), selectTx)
}

func (s *CompetitionService) selectableParticipantsLogic(ctx context.Context, db bun.IDB, competitionID int64) (results.OperationResult[[]SelectableParticipant, error], error) {
	competition, err := s.loadCompetition(ctx, db, competitionID, false)
	if err != nil {
		return operations.Classify[[]SelectableParticipant](err)
	}
	ids, err := s.competitions.ListParticipantIDs(ctx, db, competition.ID)
	if err != nil {
		return results.OperationResult[[]SelectableParticipant, error]{}, err
	}
	users, err := s.users.GetByIDs(ctx, db, ids)
	if err != nil {
		return results.OperationResult[[]SelectableParticipant, error]{}, fmt.Errorf("failed to load participants: %w", err)
	}
	bots, err := s.bots.ListByCompetition(ctx, db, competition.ID)
	if err != nil {
		return results.OperationResult[[]SelectableParticipant, error]{}, err
	}

	out := make([]SelectableParticipant, 0, len(users)+len(bots))
	for _, u := range users {
		out = append(out, SelectableParticipant{ID: participant.Encode(participant.Human(u.ID)), Username: u.Username})
	}
	for _, b := range bots {
		out = append(out, SelectableParticipant{ID: participant.Encode(participant.Bot(b.ID)), Username: b.Username, IsBot: true})
	}
	return operations.Succeed(out)
}
