package matchservice

import (
	"context"

	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
	scoreservice "github.com/Black-And-White-Club/matchday/app/modules/score/application"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/uptrace/bun"
)

// Service defines the match lifecycle operations.
type Service interface {
	CreateMatch(ctx context.Context, actor string, req CreateMatchRequest) (*MatchInfo, error)
	GetMatch(ctx context.Context, matchID int64) (*MatchInfo, error)
	ListMatches(ctx context.Context, competitionID int64) ([]*MatchInfo, error)
	StartMatch(ctx context.Context, matchID int64, actor string) (*MatchInfo, error)
	SubmitScores(ctx context.Context, matchID int64, actor string, scores map[int64]int) (*MatchInfo, error)
	DeleteMatch(ctx context.Context, matchID int64, actor string) error
}

// Ledger is the slice of the score ledger the match lifecycle needs.
type Ledger interface {
	Replace(ctx context.Context, db bun.IDB, matchID int64, scores map[participant.Ref]int) error
	ForMatch(ctx context.Context, db bun.IDB, matchID int64) ([]scoreservice.Entry, error)
	ForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) (map[int64][]scoreservice.Entry, error)
	DeleteForMatch(ctx context.Context, db bun.IDB, matchID int64) error
}

// Notifier receives fire-and-forget notifications.
type Notifier interface {
	Notify(ctx context.Context, recipientID int64, kind notificationdomain.Kind, message string, relatedID int64)
}
