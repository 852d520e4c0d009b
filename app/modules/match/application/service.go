package matchservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	botdb "github.com/Black-And-White-Club/matchday/app/modules/bot/infrastructure/repositories"
	competitiondb "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/repositories"
	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	matchdb "github.com/Black-And-White-Club/matchday/app/modules/match/infrastructure/repositories"
	scoreservice "github.com/Black-And-White-Club/matchday/app/modules/score/application"
	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// MatchService implements the Service interface.
type MatchService struct {
	matches      matchdb.Repository
	competitions competitiondb.Repository
	users        userdb.Repository
	bots         botdb.Repository
	ledger       Ledger
	notifier     Notifier
	runner       *operations.Runner
	now          func() time.Time
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	matches matchdb.Repository,
	competitions competitiondb.Repository,
	users userdb.Repository,
	bots botdb.Repository,
	ledger Ledger,
	notifier Notifier,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *MatchService {
	return &MatchService{
		matches:      matches,
		competitions: competitions,
		users:        users,
		bots:         bots,
		ledger:       ledger,
		notifier:     notifier,
		runner:       operations.NewRunner("MatchService", logger, tracer, metrics, db),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var _ Service = (*MatchService)(nil)

// loadMatch reads a match, optionally under a row lock, mapping a miss to a domain error.
func (s *MatchService) loadMatch(ctx context.Context, db bun.IDB, matchID int64, lock bool) (*matchdb.Match, error) {
	var (
		m   *matchdb.Match
		err error
	)
	if lock {
		m, err = s.matches.LockByID(ctx, db, matchID)
	} else {
		m, err = s.matches.GetByID(ctx, db, matchID)
	}
	if err != nil {
		if errors.Is(err, matchdb.ErrNotFound) {
			return nil, apperrors.NotFound("match %d not found", matchID)
		}
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	return m, nil
}

func (s *MatchService) loadCompetition(ctx context.Context, db bun.IDB, competitionID int64, lock bool) (*competitiondb.Competition, error) {
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

// startMatch moves m into progress. Callers have checked matchdomain.CanStart.
func startMatch(m *matchdb.Match, at time.Time) {
	m.Status = matchdomain.StatusInProgress
	m.StartedAt = &at
}

// displayNames resolves a name for every ref. Bots removed by a roster regeneration
// keep appearing in old matches under their tagged reference.
func (s *MatchService) displayNames(ctx context.Context, db bun.IDB, refs []participant.Ref) (map[participant.Ref]string, error) {
	userIDs, botIDs := participant.Split(refs)
	names := make(map[participant.Ref]string, len(refs))

	users, err := s.users.GetByIDs(ctx, db, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load user names: %w", err)
	}
	for _, u := range users {
		names[participant.Human(u.ID)] = u.Username
	}

	bots, err := s.bots.GetByIDs(ctx, db, botIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load bot names: %w", err)
	}
	for _, b := range bots {
		names[participant.Bot(b.ID)] = b.Username
	}

	for _, ref := range refs {
		if _, ok := names[ref]; !ok {
			names[ref] = ref.String()
		}
	}
	return names, nil
}

func toMatchInfo(m *matchdb.Match, refs []participant.Ref, entries []scoreservice.Entry, names map[participant.Ref]string) *MatchInfo {
	info := &MatchInfo{
		ID:              m.ID,
		CompetitionID:   m.CompetitionID,
		Title:           m.Title,
		MatchNumber:     m.MatchNumber,
		Status:          m.Status,
		StartedAt:       m.StartedAt,
		ScoresSubmitted: m.ScoresSubmitted,
		Participants:    make([]ParticipantInfo, 0, len(refs)),
		Scores:          make([]ScoreInfo, 0, len(entries)),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	for _, ref := range refs {
		info.Participants = append(info.Participants, ParticipantInfo{
			Ref:  participant.Encode(ref),
			Kind: ref.Kind,
			Name: names[ref],
		})
	}
	for _, e := range entries {
		name, ok := names[e.Participant]
		if !ok {
			name = e.Participant.String()
		}
		info.Scores = append(info.Scores, ScoreInfo{
			Ref:       participant.Encode(e.Participant),
			Name:      name,
			Score:     e.Score,
			Confirmed: e.Confirmed,
		})
	}
	return info
}

// describe loads participants, ledger and names for a single match.
func (s *MatchService) describe(ctx context.Context, db bun.IDB, m *matchdb.Match) (*MatchInfo, error) {
	refs, err := s.matches.ListParticipants(ctx, db, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match participants: %w", err)
	}
	entries, err := s.ledger.ForMatch(ctx, db, m.ID)
	if err != nil {
		return nil, err
	}
	names, err := s.displayNames(ctx, db, refs)
	if err != nil {
		return nil, err
	}
	return toMatchInfo(m, refs, entries, names), nil
}
