package botservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	botdb "github.com/Black-And-White-Club/matchday/app/modules/bot/infrastructure/repositories"
	competitiondb "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/repositories"
	userservice "github.com/Black-And-White-Club/matchday/app/modules/user/application"
	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/app/shared/observability/attr"
	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/Black-And-White-Club/matchday/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// BotService implements the Service interface.
type BotService struct {
	bots         botdb.Repository
	competitions competitiondb.Repository
	users        userdb.Repository
	runner       *operations.Runner
}

// NewBotService creates a new BotService.
func NewBotService(
	bots botdb.Repository,
	competitions competitiondb.Repository,
	users userdb.Repository,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *BotService {
	return &BotService{
		bots:         bots,
		competitions: competitions,
		users:        users,
		runner:       operations.NewRunner("BotService", logger, tracer, metrics, db),
	}
}

var _ Service = (*BotService)(nil)

// ListBots returns the roster of a competition.
func (s *BotService) ListBots(ctx context.Context, competitionID int64) ([]BotInfo, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]BotInfo, error], error) {
		if _, err := s.loadCompetition(ctx, db, competitionID, false); err != nil {
			return operations.Classify[[]BotInfo](err)
		}
		bots, err := s.bots.ListByCompetition(ctx, db, competitionID)
		if err != nil {
			return results.OperationResult[[]BotInfo, error]{}, err
		}
		return operations.Succeed(toBotInfos(bots))
	}
	return operations.Execute(s.runner, ctx, "ListBots", strconv.FormatInt(competitionID, 10), listTx)
}

// RegenerateBots replaces the roster of a competition. Match history keeps the old
// bot ids; they simply stop resolving to a name.
func (s *BotService) RegenerateBots(ctx context.Context, competitionID int64, actor string, req RegenerateRequest) ([]BotInfo, error) {
	regenerateTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]BotInfo, error], error) {
		return s.regenerateBotsLogic(ctx, db, competitionID, actor, req)
	}
	return operations.Execute(s.runner, ctx, "RegenerateBots", strconv.FormatInt(competitionID, 10), regenerateTx)
}

func (s *BotService) regenerateBotsLogic(ctx context.Context, db bun.IDB, competitionID int64, actorName string, req RegenerateRequest) (results.OperationResult[[]BotInfo, error], error) {
	usernames, err := normalizeUsernames(req.Usernames, req.Count)
	if err != nil {
		return operations.Fail[[]BotInfo](err)
	}
	if err := s.requireParticipant(ctx, db, competitionID, actorName); err != nil {
		return operations.Classify[[]BotInfo](err)
	}

	if err := s.bots.DeleteByCompetition(ctx, db, competitionID); err != nil {
		return results.OperationResult[[]BotInfo, error]{}, err
	}
	bots := make([]*botdb.Bot, 0, len(usernames))
	for _, name := range usernames {
		bots = append(bots, &botdb.Bot{CompetitionID: competitionID, Username: name})
	}
	if err := s.bots.CreateMany(ctx, db, bots); err != nil {
		return results.OperationResult[[]BotInfo, error]{}, err
	}

	s.runner.Logger.InfoContext(ctx, "Bot roster regenerated",
		attr.ExtractCorrelationID(ctx),
		attr.Int64("competition_id", competitionID),
		attr.Int("bots", len(bots)),
	)
	return operations.Succeed(toBotInfos(bots))
}

// DeleteBots removes every bot of a competition.
func (s *BotService) DeleteBots(ctx context.Context, competitionID int64, actor string) error {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		if err := s.requireParticipant(ctx, db, competitionID, actor); err != nil {
			return operations.Classify[struct{}](err)
		}
		if err := s.bots.DeleteByCompetition(ctx, db, competitionID); err != nil {
			return results.OperationResult[struct{}, error]{}, err
		}
		return operations.Succeed(struct{}{})
	}
	_, err := operations.Execute(s.runner, ctx, "DeleteBots", strconv.FormatInt(competitionID, 10), deleteTx)
	return err
}

// requireParticipant locks the competition and checks that actor is a member of it.
func (s *BotService) requireParticipant(ctx context.Context, db bun.IDB, competitionID int64, actorName string) error {
	actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
	if err != nil {
		return err
	}
	if _, err := s.loadCompetition(ctx, db, competitionID, true); err != nil {
		return err
	}
	member, err := s.competitions.IsParticipant(ctx, db, competitionID, actor.ID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !member {
		return apperrors.Unauthorized("only participants can manage the bots of this competition")
	}
	return nil
}

func (s *BotService) loadCompetition(ctx context.Context, db bun.IDB, competitionID int64, lock bool) (*competitiondb.Competition, error) {
	var (
		c   *competitiondb.Competition
		err error
	)
	if lock {
		c, err = s.competitions.LockByID(ctx, db, competitionID)
	} else {
		c, err = s.competitions.GetByID(ctx, db, competitionID)
	}
	if err != nil {
		if errors.Is(err, competitiondb.ErrNotFound) {
			return nil, apperrors.NotFound("competition %d not found", competitionID)
		}
		return nil, fmt.Errorf("failed to load competition: %w", err)
	}
	return c, nil
}

// normalizeUsernames trims names, truncates to count and rejects blanks and duplicates.
func normalizeUsernames(names []string, count int) ([]string, error) {
	if count > 0 && count < len(names) {
		names = names[:count]
	}
	if len(names) == 0 {
		return nil, apperrors.Validation("at least one bot username is required")
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, apperrors.Validation("bot usernames must not be empty")
		}
		if _, dup := seen[name]; dup {
			return nil, apperrors.Validation("bot username %q is used more than once", name)
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}

func toBotInfos(bots []*botdb.Bot) []BotInfo {
	out := make([]BotInfo, 0, len(bots))
	for _, b := range bots {
		out = append(out, BotInfo{
			ID:        participant.Encode(participant.Bot(b.ID)),
			BotID:     b.ID,
			Username:  b.Username,
			CreatedAt: b.CreatedAt,
		})
	}
	return out
}
