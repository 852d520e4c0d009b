package standingsservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	botdb "github.com/Black-And-White-Club/matchday/app/modules/bot/infrastructure/repositories"
	competitiondb "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/repositories"
	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	matchdb "github.com/Black-And-White-Club/matchday/app/modules/match/infrastructure/repositories"
	standingsdomain "github.com/Black-And-White-Club/matchday/app/modules/standings/domain"
	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/Black-And-White-Club/matchday/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// StandingsService implements the Service interface.
type StandingsService struct {
	competitions competitiondb.Repository
	users        userdb.Repository
	bots         botdb.Repository
	matches      matchdb.Repository
	ledger       Ledger
	palette      ChartPalette
	runner       *operations.Runner
}

// NewStandingsService creates a new StandingsService.
func NewStandingsService(
	competitions competitiondb.Repository,
	users userdb.Repository,
	bots botdb.Repository,
	matches matchdb.Repository,
	ledger Ledger,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *StandingsService {
	return &StandingsService{
		competitions: competitions,
		users:        users,
		bots:         bots,
		matches:      matches,
		ledger:       ledger,
		palette:      DefaultPalette,
		runner:       operations.NewRunner("StandingsService", logger, tracer, metrics, db),
	}
}

var _ Service = (*StandingsService)(nil)

// GetStandings recomputes the standings of a competition from its completed matches.
func (s *StandingsService) GetStandings(ctx context.Context, competitionID int64) (*StandingsView, error) {
	standingsTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*StandingsView, error], error) {
		return s.getStandingsLogic(ctx, db, competitionID)
	}
	return operations.Execute(s.runner, ctx, "GetStandings", strconv.FormatInt(competitionID, 10), standingsTx)
}

// StandingsChart renders the standings as a PNG bar chart of wins.
func (s *StandingsService) StandingsChart(ctx context.Context, competitionID int64) ([]byte, error) {
	view, err := s.GetStandings(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	return RenderChart(view, s.palette)
}

// StandingsWorkbook renders the standings as an XLSX workbook.
func (s *StandingsService) StandingsWorkbook(ctx context.Context, competitionID int64) ([]byte, error) {
	view, err := s.GetStandings(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	return RenderWorkbook(view)
}

func (s *StandingsService) getStandingsLogic(ctx context.Context, db bun.IDB, competitionID int64) (results.OperationResult[*StandingsView, error], error) {
	competition, err := s.competitions.GetByID(ctx, db, competitionID)
	if err != nil {
		if errors.Is(err, competitiondb.ErrNotFound) {
			return operations.Fail[*StandingsView](apperrors.NotFound("competition %d not found", competitionID))
		}
		return results.OperationResult[*StandingsView, error]{}, fmt.Errorf("failed to load competition: %w", err)
	}

	seeds, err := s.loadSeeds(ctx, db, competition.ID)
	if err != nil {
		return results.OperationResult[*StandingsView, error]{}, err
	}

	completed, err := s.matches.ListByCompetitionAndStatus(ctx, db, competition.ID, matchdomain.StatusCompleted)
	if err != nil {
		return results.OperationResult[*StandingsView, error]{}, fmt.Errorf("failed to load completed matches: %w", err)
	}
	matchIDs := make([]int64, 0, len(completed))
	for _, m := range completed {
		matchIDs = append(matchIDs, m.ID)
	}
	entries, err := s.ledger.ForMatches(ctx, db, matchIDs)
	if err != nil {
		return results.OperationResult[*StandingsView, error]{}, err
	}

	ledgers := make([]standingsdomain.Ledger, 0, len(matchIDs))
	for _, id := range matchIDs {
		ledger := make(standingsdomain.Ledger, len(entries[id]))
		for _, e := range entries[id] {
			ledger[e.Participant] = e.Score
		}
		ledgers = append(ledgers, ledger)
	}

	standings := standingsdomain.ComputeStandings(seeds, ledgers)
	view := &StandingsView{
		CompetitionID:    competition.ID,
		CompetitionTitle: competition.Title,
		CompletedMatches: len(completed),
		Rows:             make([]StandingRow, 0, len(standings)),
	}
	for i, st := range standings {
		view.Rows = append(view.Rows, StandingRow{
			Rank:          i + 1,
			ParticipantID: participant.Encode(st.Participant),
			Name:          st.Name,
			IsBot:         participant.IsBot(st.Participant),
			Wins:          st.Wins,
			MatchesPlayed: st.MatchesPlayed,
			Draws:         st.Draws,
			Losses:        st.Losses,
			PointsScored:  st.PointsScored,
		})
	}
	return operations.Succeed(view)
}

// loadSeeds returns the current human members followed by the current bots.
func (s *StandingsService) loadSeeds(ctx context.Context, db bun.IDB, competitionID int64) ([]standingsdomain.Seed, error) {
	ids, err := s.competitions.ListParticipantIDs(ctx, db, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	users, err := s.users.GetByIDs(ctx, db, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load participant names: %w", err)
	}
	bots, err := s.bots.ListByCompetition(ctx, db, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bots: %w", err)
	}

	seeds := make([]standingsdomain.Seed, 0, len(users)+len(bots))
	for _, u := range users {
		seeds = append(seeds, standingsdomain.Seed{Participant: participant.Human(u.ID), Name: u.Username})
	}
	for _, b := range bots {
		seeds = append(seeds, standingsdomain.Seed{Participant: participant.Bot(b.ID), Name: b.Username})
	}
	return seeds, nil
}
