package notificationservice

import (
	"context"
	"errors"
	"strconv"

	notificationdb "github.com/Black-And-White-Club/matchday/app/modules/notification/infrastructure/repositories"
	userservice "github.com/Black-And-White-Club/matchday/app/modules/user/application"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/Black-And-White-Club/matchday/app/shared/results"
	"github.com/uptrace/bun"
)

// List returns the newest notifications of actor.
func (s *NotificationService) List(ctx context.Context, actor string, limit int) ([]NotificationInfo, error) {
	return s.list(ctx, "ListNotifications", actor, false, limit)
}

// ListUnread returns the newest unread notifications of actor.
func (s *NotificationService) ListUnread(ctx context.Context, actor string, limit int) ([]NotificationInfo, error) {
	return s.list(ctx, "ListUnreadNotifications", actor, true, limit)
}

func (s *NotificationService) list(ctx context.Context, operationName, actorName string, unreadOnly bool, limit int) ([]NotificationInfo, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]NotificationInfo, error], error) {
		actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
		if err != nil {
			return operations.Classify[[]NotificationInfo](err)
		}
		rows, err := s.repo.ListForRecipient(ctx, db, actor.ID, unreadOnly, limit)
		if err != nil {
			return results.OperationResult[[]NotificationInfo, error]{}, err
		}
		out := make([]NotificationInfo, 0, len(rows))
		for _, n := range rows {
			out = append(out, toInfo(n))
		}
		return operations.Succeed(out)
	}
	return operations.Execute(s.runner, ctx, operationName, actorName, listTx)
}

// UnreadCount returns how many notifications actor has not read.
func (s *NotificationService) UnreadCount(ctx context.Context, actorName string) (int, error) {
	countTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[int, error], error) {
		actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
		if err != nil {
			return operations.Classify[int](err)
		}
		count, err := s.repo.CountUnread(ctx, db, actor.ID)
		if err != nil {
			return results.OperationResult[int, error]{}, err
		}
		return operations.Succeed(count)
	}
	return operations.Execute(s.runner, ctx, "UnreadCount", actorName, countTx)
}

// MarkRead marks one notification read. Only its recipient may do so.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID int64, actorName string) error {
	markTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
		if err != nil {
			return operations.Classify[struct{}](err)
		}
		n, err := s.repo.GetByID(ctx, db, notificationID)
		if err != nil {
			if errors.Is(err, notificationdb.ErrNotFound) {
				return operations.Fail[struct{}](apperrors.NotFound("notification %d not found", notificationID))
			}
			return results.OperationResult[struct{}, error]{}, err
		}
		if n.RecipientID != actor.ID {
			return operations.Fail[struct{}](apperrors.Unauthorized("notification %d belongs to another user", notificationID))
		}
		if n.Read {
			return operations.Succeed(struct{}{})
		}
		if err := s.repo.MarkRead(ctx, db, n.ID); err != nil {
			return results.OperationResult[struct{}, error]{}, err
		}
		return operations.Succeed(struct{}{})
	}
	_, err := operations.Execute(s.runner, ctx, "MarkRead", strconv.FormatInt(notificationID, 10), markTx)
	return err
}

// MarkAllRead marks every notification of actor read and returns how many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, actorName string) (int64, error) {
	markTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[int64, error], error) {
		actor, err := userservice.ResolveActor(ctx, s.users, db, actorName)
		if err != nil {
			return operations.Classify[int64](err)
		}
		changed, err := s.repo.MarkAllRead(ctx, db, actor.ID)
		if err != nil {
			return results.OperationResult[int64, error]{}, err
		}
		return operations.Succeed(changed)
	}
	return operations.Execute(s.runner, ctx, "MarkAllRead", actorName, markTx)
}

func toInfo(n *notificationdb.Notification) NotificationInfo {
	return NotificationInfo{
		ID:        n.ID,
		Kind:      n.Kind,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
