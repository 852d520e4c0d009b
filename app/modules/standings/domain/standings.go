// Package standingsdomain aggregates completed match ledgers into per-participant
// competition standings.
package standingsdomain

import (
	"sort"

	"github.com/Black-And-White-Club/matchday/app/shared/participant"
)

// Seed is a participant that gets a standings row even without any recorded score.
type Seed struct {
	Participant participant.Ref
	Name        string
}

// Ledger is the score map of one completed match.
type Ledger map[participant.Ref]int

// Standing is one derived row. It is never persisted.
type Standing struct {
	Participant   participant.Ref
	Name          string
	Wins          int
	MatchesPlayed int
	Draws         int
	Losses        int
	PointsScored  int
}

// ComputeStandings seeds one zeroed row per seed and folds every ledger into them.
//
// Within a match the highest score wins; several participants sharing the highest
// score all draw, and everyone below a shared highest score takes a loss.
// Participants scored in a ledger but absent from seeds still take part in deciding
// the winners of that match, they just get no row.
//
// Rows are ordered by wins desc, points desc, humans before bots, then id asc.
func ComputeStandings(seeds []Seed, ledgers []Ledger) []Standing {
	rows := make(map[participant.Ref]*Standing, len(seeds))
	for _, s := range seeds {
		if _, dup := rows[s.Participant]; dup {
			continue
		}
		rows[s.Participant] = &Standing{Participant: s.Participant, Name: s.Name}
	}

	for _, ledger := range ledgers {
		if len(ledger) == 0 {
			continue
		}
		highest, winners := winnersOf(ledger)
		isDraw := winners > 1

		for ref, score := range ledger {
			row, ok := rows[ref]
			if !ok {
				continue
			}
			row.MatchesPlayed++
			row.PointsScored += score
			switch {
			case isDraw && score == highest:
				row.Draws++
			case isDraw:
				row.Losses++
			case score == highest:
				row.Wins++
			default:
				row.Losses++
			}
		}
	}

	out := make([]Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func winnersOf(ledger Ledger) (highest int, winners int) {
	first := true
	for _, score := range ledger {
		switch {
		case first || score > highest:
			highest, winners, first = score, 1, false
		case score == highest:
			winners++
		}
	}
	return highest, winners
}

func less(a, b Standing) bool {
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if a.PointsScored != b.PointsScored {
		return a.PointsScored > b.PointsScored
	}
	if ah, bh := participant.IsHuman(a.Participant), participant.IsHuman(b.Participant); ah != bh {
		return ah
	}
	return a.Participant.ID < b.Participant.ID
}
