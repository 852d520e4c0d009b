package competitionservice

import (
	"context"

	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Ledger
// ------------------------

type FakeLedger struct {
	DeleteForCompetitionFunc func(ctx context.Context, db bun.IDB, competitionID int64) error
}

func (f *FakeLedger) DeleteForCompetition(ctx context.Context, db bun.IDB, competitionID int64) error {
	if f.DeleteForCompetitionFunc != nil {
		return f.DeleteForCompetitionFunc(ctx, db, competitionID)
	}
	return nil
}

var _ Ledger = (*FakeLedger)(nil)

// ------------------------
// Fake Notifier
// ------------------------

type sentNotification struct {
	Recipient int64
	Kind      notificationdomain.Kind
	Message   string
	RelatedID int64
}

type FakeNotifier struct {
	sent []sentNotification
}

func (f *FakeNotifier) Notify(ctx context.Context, recipientID int64, kind notificationdomain.Kind, message string, relatedID int64) {
	f.sent = append(f.sent, sentNotification{Recipient: recipientID, Kind: kind, Message: message, RelatedID: relatedID})
}

var _ Notifier = (*FakeNotifier)(nil)
