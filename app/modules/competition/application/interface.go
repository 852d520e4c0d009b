package competitionservice

import (
	"context"

	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
	"github.com/uptrace/bun"
)

// Service defines competition and membership operations.
type Service interface {
	CreateCompetition(ctx context.Context, actor string, req CreateCompetitionRequest) (*CompetitionInfo, error)
	GetCompetition(ctx context.Context, competitionID int64) (*CompetitionInfo, error)
	ListForUser(ctx context.Context, actor string) ([]*CompetitionInfo, error)
	ListCreatedBy(ctx context.Context, actor string) ([]*CompetitionInfo, error)
	AddParticipants(ctx context.Context, competitionID int64, userIDs []int64, actor string) (*CompetitionInfo, error)
	LeaveCompetition(ctx context.Context, competitionID int64, actor string) error
	DeleteCompetition(ctx context.Context, competitionID int64, actor string) error
	SelectableParticipants(ctx context.Context, competitionID int64) ([]SelectableParticipant, error)
}

// Ledger removes the scores of a competition's matches during deletion.
type Ledger interface {
	DeleteForCompetition(ctx context.Context, db bun.IDB, competitionID int64) error
}

// Notifier receives fire-and-forget notifications.
type Notifier interface {
	Notify(ctx context.Context, recipientID int64, kind notificationdomain.Kind, message string, relatedID int64)
}
