package matchservice

import (
	"context"
	"sort"

	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
	scoreservice "github.com/Black-And-White-Club/matchday/app/modules/score/application"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Ledger
// ------------------------

type FakeLedger struct {
	trace   []string
	ledgers map[int64]map[participant.Ref]int

	ReplaceErr error
}

func NewFakeLedger() *FakeLedger {
	return &FakeLedger{trace: []string{}, ledgers: map[int64]map[participant.Ref]int{}}
}

func (f *FakeLedger) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeLedger) Replace(ctx context.Context, db bun.IDB, matchID int64, scores map[participant.Ref]int) error {
	f.record("Replace")
	if f.ReplaceErr != nil {
		return f.ReplaceErr
	}
	next := make(map[participant.Ref]int, len(scores))
	for ref, v := range scores {
		next[ref] = v
	}
	f.ledgers[matchID] = next
	return nil
}

func (f *FakeLedger) ForMatch(ctx context.Context, db bun.IDB, matchID int64) ([]scoreservice.Entry, error) {
	f.record("ForMatch")
	return f.entries(matchID), nil
}

func (f *FakeLedger) ForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) (map[int64][]scoreservice.Entry, error) {
	f.record("ForMatches")
	out := map[int64][]scoreservice.Entry{}
	for _, id := range matchIDs {
		if entries := f.entries(id); len(entries) > 0 {
			out[id] = entries
		}
	}
	return out, nil
}

func (f *FakeLedger) DeleteForMatch(ctx context.Context, db bun.IDB, matchID int64) error {
	f.record("DeleteForMatch")
	delete(f.ledgers, matchID)
	return nil
}

func (f *FakeLedger) entries(matchID int64) []scoreservice.Entry {
	out := []scoreservice.Entry{}
	for ref, v := range f.ledgers[matchID] {
		out = append(out, scoreservice.Entry{Participant: ref, Score: v, Confirmed: true})
	}
	sort.Slice(out, func(i, j int) bool {
		return participant.Encode(out[i].Participant) < participant.Encode(out[j].Participant)
	})
	return out
}

func (f *FakeLedger) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
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
