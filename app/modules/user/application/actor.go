// Package userservice resolves the acting principal of a request into a stored user.
package userservice

import (
	"context"
	"errors"
	"fmt"

	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/uptrace/bun"
)

// ResolveActor looks up the user behind username. An unknown username is a
// not-found domain error; anything else is an infrastructure error.
func ResolveActor(ctx context.Context, users userdb.Repository, db bun.IDB, username string) (*userdb.User, error) {
	user, err := users.GetByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return nil, apperrors.NotFound("user %q not found", username)
		}
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}
	return user, nil
}

// RequireAll returns the users with the given ids, failing with a not-found domain
// error naming the first id that does not exist.
func RequireAll(ctx context.Context, users userdb.Repository, db bun.IDB, ids []int64) (map[int64]*userdb.User, error) {
	found, err := users.GetByIDs(ctx, db, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	byID := make(map[int64]*userdb.User, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, apperrors.NotFound("user %d not found", id)
		}
	}
	return byID, nil
}
