// Package participant maps the signed integer reference space used on the wire onto
// the two participant kinds of a match: human users and competition-scoped bots.
//
// Positive references are user ids, negative references are negated bot ids, and zero
// is never valid. Inside the service references are always carried as a tagged Ref.
package participant

import (
	"fmt"

	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
)

// Kind tags a Ref. It carries no behavior of its own.
type Kind string

const (
	KindHuman Kind = "human"
	KindBot   Kind = "bot"
)

// Ref identifies a match participant. ID is always positive.
type Ref struct {
	Kind Kind
	ID   int64
}

// Human returns the reference for a user.
func Human(userID int64) Ref {
	return Ref{Kind: KindHuman, ID: userID}
}

// Bot returns the reference for a bot.
func Bot(botID int64) Ref {
	return Ref{Kind: KindBot, ID: botID}
}

// IsHuman reports whether r refers to a user.
func IsHuman(r Ref) bool { return r.Kind == KindHuman }

// IsBot reports whether r refers to a bot.
func IsBot(r Ref) bool { return r.Kind == KindBot }

func (r Ref) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// Resolve decodes a wire reference.
func Resolve(ref int64) (Ref, error) {
	switch {
	case ref > 0:
		return Human(ref), nil
	case ref < 0:
		return Bot(-ref), nil
	default:
		return Ref{}, apperrors.Validation("participant reference 0 is not valid")
	}
}

// Encode returns the wire reference for r.
func Encode(r Ref) int64 {
	if r.Kind == KindBot {
		return -r.ID
	}
	return r.ID
}

// ResolveAll decodes a list of wire references, dropping duplicates but keeping
// first-seen order. Any zero reference fails the whole list.
func ResolveAll(refs []int64) ([]Ref, error) {
	out := make([]Ref, 0, len(refs))
	seen := make(map[Ref]struct{}, len(refs))
	for _, raw := range refs {
		r, err := Resolve(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}

// Split partitions refs into user ids and bot ids.
func Split(refs []Ref) (userIDs []int64, botIDs []int64) {
	for _, r := range refs {
		if r.Kind == KindBot {
			botIDs = append(botIDs, r.ID)
			continue
		}
		userIDs = append(userIDs, r.ID)
	}
	return userIDs, botIDs
}
