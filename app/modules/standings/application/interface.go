package standingsservice

import (
	"context"

	scoreservice "github.com/Black-And-White-Club/matchday/app/modules/score/application"
	"github.com/uptrace/bun"
)

// Service defines the standings read operations of a competition.
type Service interface {
	GetStandings(ctx context.Context, competitionID int64) (*StandingsView, error)
	StandingsChart(ctx context.Context, competitionID int64) ([]byte, error)
	StandingsWorkbook(ctx context.Context, competitionID int64) ([]byte, error)
}

// Ledger is the batch read of the score ledger standings need.
type Ledger interface {
	ForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) (map[int64][]scoreservice.Entry, error)
}
