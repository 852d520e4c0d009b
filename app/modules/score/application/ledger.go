// Package scoreservice owns the per-match score ledger. It never opens its own
// transaction: callers pass the transaction their mutation runs in.
package scoreservice

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	scoredb "github.com/Black-And-White-Club/matchday/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/observability/attr"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/uptrace/bun"
)

// Entry is a confirmed score for one participant.
type Entry struct {
	Participant participant.Ref
	Score       int
	Confirmed   bool
}

// Ledger reads and replaces match scores.
type Ledger struct {
	repo   scoredb.Repository
	logger *slog.Logger
}

// NewLedger creates a Ledger.
func NewLedger(repo scoredb.Repository, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{repo: repo, logger: logger}
}

// Replace swaps the whole ledger of matchID for scores. Every stored entry is confirmed.
// Callers have already checked that every key is a participant of the match.
func (l *Ledger) Replace(ctx context.Context, db bun.IDB, matchID int64, scores map[participant.Ref]int) error {
	rows := make([]*scoredb.Score, 0, len(scores))
	for ref, value := range scores {
		rows = append(rows, &scoredb.Score{
			MatchID:         matchID,
			ParticipantKind: ref.Kind,
			ParticipantID:   ref.ID,
			Score:           value,
			Confirmed:       true,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ParticipantKind != rows[j].ParticipantKind {
			return rows[i].ParticipantKind < rows[j].ParticipantKind
		}
		return rows[i].ParticipantID < rows[j].ParticipantID
	})

	if err := l.repo.Replace(ctx, db, matchID, rows); err != nil {
		return fmt.Errorf("failed to replace ledger: %w", err)
	}

	l.logger.DebugContext(ctx, "Match ledger replaced",
		attr.ExtractCorrelationID(ctx),
		attr.Int64("match_id", matchID),
		attr.Int("entries", len(rows)),
	)
	return nil
}

// ForMatch returns the ledger of one match.
func (l *Ledger) ForMatch(ctx context.Context, db bun.IDB, matchID int64) ([]Entry, error) {
	rows, err := l.repo.ListForMatch(ctx, db, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return toEntries(rows), nil
}

// ForMatches returns the ledgers of several matches keyed by match id. Matches
// without scores are absent from the map.
func (l *Ledger) ForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) (map[int64][]Entry, error) {
	rows, err := l.repo.ListForMatches(ctx, db, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledgers: %w", err)
	}
	out := make(map[int64][]Entry, len(matchIDs))
	for _, row := range rows {
		out[row.MatchID] = append(out[row.MatchID], toEntry(row))
	}
	return out, nil
}

// DeleteForMatch removes the ledger of one match.
func (l *Ledger) DeleteForMatch(ctx context.Context, db bun.IDB, matchID int64) error {
	return l.repo.DeleteForMatch(ctx, db, matchID)
}

// DeleteForCompetition removes the ledgers of every match in a competition.
func (l *Ledger) DeleteForCompetition(ctx context.Context, db bun.IDB, competitionID int64) error {
	return l.repo.DeleteForCompetition(ctx, db, competitionID)
}

func toEntries(rows []*scoredb.Score) []Entry {
	out := make([]Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntry(row))
	}
	return out
}

func toEntry(row *scoredb.Score) Entry {
	return Entry{Participant: row.Ref(), Score: row.Score, Confirmed: row.Confirmed}
}
