package matchservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	matchdb "github.com/Black-And-White-Club/matchday/app/modules/match/infrastructure/repositories"
	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
	userservice "github.com/Black-And-White-Club/matchday/app/modules/user/application"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/observability/attr"
	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/Black-And-White-Club/matchday/app/shared/results"
	"github.com/uptrace/bun"
)

// createOutcome carries what must happen after the creating transaction commits.
type createOutcome struct {
	info       *MatchInfo
	recipients []int64
	message    string
}

// CreateMatch creates a match in a competition and starts it immediately.
func (s *MatchService) CreateMatch(ctx context.Context, actor string, req CreateMatchRequest) (*MatchInfo, error) {
	createTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*createOutcome, error], error) {
		return s.createMatchLogic(ctx, db, actor, req)
	}

	outcome, err := operations.Execute(s.runner, ctx, "CreateMatch", strconv.FormatInt(req.CompetitionID, 10), createTx)
	if err != nil {
		return nil, err
	}

	for _, recipient := range outcome.recipients {
		s.notifier.Notify(ctx, recipient, notificationdomain.KindMatchCreated, outcome.message, outcome.info.ID)
	}
	return outcome.info, nil
}

func (s *MatchService) createMatchLogic(ctx context.Context, db bun.IDB, actorName string, req CreateMatchRequest) (results.OperationResult[*createOutcome, error], error) {
	actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
	if err != nil {
		return operations.Classify[*createOutcome](err)
	}

	// The competition lock serializes match numbering within the competition.
	competition, err := s.loadCompetition(ctx, db, req.CompetitionID, true)
	if err != nil {
		return operations.Classify[*createOutcome](err)
	}

	memberIDs, err := s.competitions.ListParticipantIDs(ctx, db, competition.ID)
	if err != nil {
		return results.OperationResult[*createOutcome, error]{}, fmt.Errorf("failed to load competition participants: %w", err)
	}
	members := make(map[int64]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = struct{}{}
	}
	if _, ok := members[actor.ID]; !ok {
		return operations.Fail[*createOutcome](apperrors.Unauthorized("only competition participants can create matches"))
	}

	refs, err := participant.ResolveAll(req.ParticipantRefs)
	if err != nil {
		return operations.Fail[*createOutcome](err)
	}
	if len(refs) == 0 {
		return operations.Fail[*createOutcome](apperrors.Validation("a match needs at least one participant"))
	}

	names, err := s.validateParticipants(ctx, db, competition.ID, members, refs)
	if err != nil {
		return operations.Classify[*createOutcome](err)
	}

	count, err := s.matches.CountByCompetition(ctx, db, competition.ID)
	if err != nil {
		return results.OperationResult[*createOutcome, error]{}, fmt.Errorf("failed to count matches: %w", err)
	}
	number := count + 1

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = matchdomain.DefaultTitle(number)
	}

	match := &matchdb.Match{
		CompetitionID: competition.ID,
		Title:         title,
		MatchNumber:   number,
		Status:        matchdomain.StatusPending,
	}
	startMatch(match, s.now())

	if err := s.matches.Create(ctx, db, match); err != nil {
		return results.OperationResult[*createOutcome, error]{}, fmt.Errorf("failed to create match: %w", err)
	}
	if err := s.matches.AddParticipants(ctx, db, match.ID, refs); err != nil {
		return results.OperationResult[*createOutcome, error]{}, fmt.Errorf("failed to store match participants: %w", err)
	}

	var recipients []int64
	for _, ref := range refs {
		if participant.IsHuman(ref) && ref.ID != actor.ID {
			recipients = append(recipients, ref.ID)
		}
	}

	s.runner.Logger.InfoContext(ctx, "Match created",
		attr.ExtractCorrelationID(ctx),
		attr.Int64("competition_id", competition.ID),
		attr.Int64("match_id", match.ID),
		attr.Int("match_number", number),
		attr.Int("participants", len(refs)),
	)

	return operations.Succeed(&createOutcome{
		info:       toMatchInfo(match, refs, nil, names),
		recipients: recipients,
		message:    notificationdomain.MatchCreatedMessage(actor.Username, title, competition.Title),
	})
}

// validateParticipants checks every ref in order: humans must exist and be members,
// bots must exist and belong to the competition. It returns their display names.
func (s *MatchService) validateParticipants(ctx context.Context, db bun.IDB, competitionID int64, members map[int64]struct{}, refs []participant.Ref) (map[participant.Ref]string, error) {
	userIDs, botIDs := participant.Split(refs)

	users, err := s.users.GetByIDs(ctx, db, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	bots, err := s.bots.GetByIDs(ctx, db, botIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load bots: %w", err)
	}

	names := make(map[participant.Ref]string, len(refs))
	for _, u := range users {
		names[participant.Human(u.ID)] = u.Username
	}
	botCompetition := make(map[int64]int64, len(bots))
	for _, b := range bots {
		names[participant.Bot(b.ID)] = b.Username
		botCompetition[b.ID] = b.CompetitionID
	}

	for _, ref := range refs {
		if participant.IsBot(ref) {
			owner, ok := botCompetition[ref.ID]
			if !ok {
				return nil, apperrors.NotFound("bot %d not found", ref.ID)
			}
			if owner != competitionID {
				return nil, apperrors.Validation("bot %d is not part of this competition", ref.ID)
			}
			continue
		}
		if _, ok := names[ref]; !ok {
			return nil, apperrors.NotFound("user %d not found", ref.ID)
		}
		if _, ok := members[ref.ID]; !ok {
			return nil, apperrors.Validation("user %d is not a participant of this competition", ref.ID)
		}
	}
	return names, nil
}
