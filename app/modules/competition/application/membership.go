package competitionservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	competitiondb "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/repositories"
	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
	userservice "github.com/Black-And-White-Club/matchday/app/modules/user/application"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/observability/attr"
	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/Black-And-White-Club/matchday/app/shared/results"
	"github.com/uptrace/bun"
)

// CreateCompetition creates a competition owned by actor. The creator is always a member.
func (s *CompetitionService) CreateCompetition(ctx context.Context, actor string, req CreateCompetitionRequest) (*CompetitionInfo, error) {
	createTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*CompetitionInfo, error], error) {
		return s.createCompetitionLogic(ctx, db, actor, req)
	}
	return operations.Execute(s.runner, ctx, "CreateCompetition", actor, createTx)
}

func (s *CompetitionService) createCompetitionLogic(ctx context.Context, db bun.IDB, actorName string, req CreateCompetitionRequest) (results.OperationResult[*CompetitionInfo, error], error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return operations.Fail[*CompetitionInfo](apperrors.Validation("competition title is required"))
	}

	actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
	if err != nil {
		return operations.Classify[*CompetitionInfo](err)
	}

	memberIDs := uniqueIDs(append([]int64{actor.ID}, req.ParticipantIDs...))
	if _, err := userservice.RequireAll(ctx, s.users, db, memberIDs); err != nil {
		return operations.Classify[*CompetitionInfo](err)
	}

	competition := &competitiondb.Competition{
		Title:     title,
		Icon:      strings.TrimSpace(req.Icon),
		CreatorID: actor.ID,
	}
	if err := s.competitions.Create(ctx, db, competition); err != nil {
		return results.OperationResult[*CompetitionInfo, error]{}, err
	}
	if err := s.competitions.AddParticipants(ctx, db, competition.ID, memberIDs); err != nil {
		return results.OperationResult[*CompetitionInfo, error]{}, err
	}

	info, err := s.describe(ctx, db, competition)
	if err != nil {
		return results.OperationResult[*CompetitionInfo, error]{}, err
	}
	return operations.Succeed(info)
}

// AddParticipants adds users to a competition. Only existing members may add others;
// users who are already members are left as they are.
func (s *CompetitionService) AddParticipants(ctx context.Context, competitionID int64, userIDs []int64, actor string) (*CompetitionInfo, error) {
	addTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*CompetitionInfo, error], error) {
		return s.addParticipantsLogic(ctx, db, competitionID, userIDs, actor)
	}
	return operations.Execute(s.runner, ctx, "AddParticipants", strconv.FormatInt(competitionID, 10), addTx)
}

func (s *CompetitionService) addParticipantsLogic(ctx context.Context, db bun.IDB, competitionID int64, userIDs []int64, actorName string) (results.OperationResult[*CompetitionInfo, error], error) {
	actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
	if err != nil {
		return operations.Classify[*CompetitionInfo](err)
	}
	competition, err := s.loadCompetition(ctx, db, competitionID, true)
	if err != nil {
		return operations.Classify[*CompetitionInfo](err)
	}

	member, err := s.competitions.IsParticipant(ctx, db, competition.ID, actor.ID)
	if err != nil {
		return results.OperationResult[*CompetitionInfo, error]{}, err
	}
	if !member {
		return operations.Fail[*CompetitionInfo](apperrors.Unauthorized("only participants can add people to this competition"))
	}

	ids := uniqueIDs(userIDs)
	if _, err := userservice.RequireAll(ctx, s.users, db, ids); err != nil {
		return operations.Classify[*CompetitionInfo](err)
	}
	if err := s.competitions.AddParticipants(ctx, db, competition.ID, ids); err != nil {
		return results.OperationResult[*CompetitionInfo, error]{}, err
	}
	if err := s.competitions.Touch(ctx, db, competition.ID); err != nil {
		return results.OperationResult[*CompetitionInfo, error]{}, err
	}

	info, err := s.describe(ctx, db, competition)
	if err != nil {
		return results.OperationResult[*CompetitionInfo, error]{}, err
	}
	return operations.Succeed(info)
}

// leaveOutcome carries what must happen after the leave transaction commits.
type leaveOutcome struct {
	recipients []int64
	message    string
}

// LeaveCompetition removes actor from a competition and tells everyone who was a
// member at that moment. The creator can never leave.
func (s *CompetitionService) LeaveCompetition(ctx context.Context, competitionID int64, actor string) error {
	leaveTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*leaveOutcome, error], error) {
		return s.leaveCompetitionLogic(ctx, db, competitionID, actor)
	}
	outcome, err := operations.Execute(s.runner, ctx, "LeaveCompetition", strconv.FormatInt(competitionID, 10), leaveTx)
	if err != nil {
		return err
	}
	for _, recipient := range outcome.recipients {
		s.notifier.Notify(ctx, recipient, notificationdomain.KindUserLeftCompetition, outcome.message, competitionID)
	}
	return nil
}

func (s *CompetitionService) leaveCompetitionLogic(ctx context.Context, db bun.IDB, competitionID int64, actorName string) (results.OperationResult[*leaveOutcome, error], error) {
	actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
	if err != nil {
		return operations.Classify[*leaveOutcome](err)
	}
	// The lock keeps the snapshot below identical to the set the removal applies to.
	competition, err := s.loadCompetition(ctx, db, competitionID, true)
	if err != nil {
		return operations.Classify[*leaveOutcome](err)
	}
	if competition.CreatorID == actor.ID {
		return operations.Fail[*leaveOutcome](apperrors.Validation("the creator cannot leave the competition; delete it instead"))
	}

	snapshot, err := s.competitions.ListParticipantIDs(ctx, db, competition.ID)
	if err != nil {
		return results.OperationResult[*leaveOutcome, error]{}, err
	}
	recipients := make([]int64, 0, len(snapshot))
	present := false
	for _, id := range snapshot {
		if id == actor.ID {
			present = true
			continue
		}
		recipients = append(recipients, id)
	}
	if !present {
		return operations.Fail[*leaveOutcome](apperrors.Validation("you are not a participant in this competition"))
	}

	if err := s.competitions.RemoveParticipant(ctx, db, competition.ID, actor.ID); err != nil {
		return results.OperationResult[*leaveOutcome, error]{}, err
	}
	if err := s.competitions.Touch(ctx, db, competition.ID); err != nil {
		return results.OperationResult[*leaveOutcome, error]{}, err
	}

	s.runner.Logger.InfoContext(ctx, "Participant left competition",
		attr.ExtractCorrelationID(ctx),
		attr.Int64("competition_id", competition.ID),
		attr.Int64("user_id", actor.ID),
		attr.Int("remaining", len(recipients)),
	)

	return operations.Succeed(&leaveOutcome{
		recipients: recipients,
		message:    notificationdomain.UserLeftMessage(actor.Username, competition.Title),
	})
}

// DeleteCompetition removes a competition with its matches, ledgers, bots and
// memberships. Only the creator may delete it.
func (s *CompetitionService) DeleteCompetition(ctx context.Context, competitionID int64, actor string) error {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		return s.deleteCompetitionLogic(ctx, db, competitionID, actor)
	}
	_, err := operations.Execute(s.runner, ctx, "DeleteCompetition", strconv.FormatInt(competitionID, 10), deleteTx)
	return err
}

func (s *CompetitionService) deleteCompetitionLogic(ctx context.Context, db bun.IDB, competitionID int64, actorName string) (results.OperationResult[struct{}, error], error) {
	actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
	if err != nil {
		return operations.Classify[struct{}](err)
	}
	competition, err := s.loadCompetition(ctx, db, competitionID, true)
	if err != nil {
		return operations.Classify[struct{}](err)
	}
	if competition.CreatorID != actor.ID {
		return operations.Fail[struct{}](apperrors.Unauthorized("only the creator can delete this competition"))
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"ledgers", func() error { return s.ledger.DeleteForCompetition(ctx, db, competition.ID) }},
		{"match participants", func() error { return s.matches.DeleteParticipantsByCompetition(ctx, db, competition.ID) }},
		{"matches", func() error { return s.matches.DeleteByCompetition(ctx, db, competition.ID) }},
		{"bots", func() error { return s.bots.DeleteByCompetition(ctx, db, competition.ID) }},
		{"memberships", func() error { return s.competitions.DeleteParticipants(ctx, db, competition.ID) }},
		{"competition", func() error { return s.competitions.Delete(ctx, db, competition.ID) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return results.OperationResult[struct{}, error]{}, fmt.Errorf("failed to delete %s: %w", step.name, err)
		}
	}
	return operations.Succeed(struct{}{})
}

// uniqueIDs drops duplicates while keeping first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
