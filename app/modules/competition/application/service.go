package competitionservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	botdb "github.com/Black-And-White-Club/matchday/app/modules/bot/infrastructure/repositories"
	competitiondb "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/repositories"
	matchdb "github.com/Black-And-White-Club/matchday/app/modules/match/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// CompetitionService implements the Service interface.
type CompetitionService struct {
	competitions competitiondb.Repository
	users        userdb.Repository
	bots         botdb.Repository
	matches      matchdb.Repository
	ledger       Ledger
	notifier     Notifier
	runner       *operations.Runner
}

// NewCompetitionService creates a new CompetitionService.
func NewCompetitionService(
	competitions competitiondb.Repository,
	users userdb.Repository,
	bots botdb.Repository,
	matches matchdb.Repository,
	ledger Ledger,
	notifier Notifier,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *CompetitionService {
	return &CompetitionService{
		competitions: competitions,
		users:        users,
		bots:         bots,
		matches:      matches,
		ledger:       ledger,
		notifier:     notifier,
		runner:       operations.NewRunner("CompetitionService", logger, tracer, metrics, db),
	}
}

var _ Service = (*CompetitionService)(nil)

func (s *CompetitionService) loadCompetition(ctx context.Context, db bun.IDB, competitionID int64, lock bool) (*competitiondb.Competition, error) {
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

// describe loads the members of c and renders it.
func (s *CompetitionService) describe(ctx context.Context, db bun.IDB, c *competitiondb.Competition) (*CompetitionInfo, error) {
	ids, err := s.competitions.ListParticipantIDs(ctx, db, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	users, err := s.users.GetByIDs(ctx, db, append(ids, c.CreatorID))
	if err != nil {
		return nil, fmt.Errorf("failed to load participant names: %w", err)
	}
	byID := make(map[int64]*userdb.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	info := &CompetitionInfo{
		ID:           c.ID,
		Title:        c.Title,
		Icon:         c.Icon,
		Creator:      Member{ID: c.CreatorID},
		Participants: make([]Member, 0, len(ids)),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if creator, ok := byID[c.CreatorID]; ok {
		info.Creator.Username = creator.Username
	}
	for _, id := range ids {
		m := Member{ID: id}
		if u, ok := byID[id]; ok {
			m.Username = u.Username
		}
		info.Participants = append(info.Participants, m)
	}
	return info, nil
}
