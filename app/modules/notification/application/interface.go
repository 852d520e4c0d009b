package notificationservice

import (
	"context"

	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
)

// Service is the notification sink plus its read side.
type Service interface {
	Notify(ctx context.Context, recipientID int64, kind notificationdomain.Kind, message string, relatedID int64)
	List(ctx context.Context, actor string, limit int) ([]NotificationInfo, error)
	ListUnread(ctx context.Context, actor string, limit int) ([]NotificationInfo, error)
	UnreadCount(ctx context.Context, actor string) (int, error)
	MarkRead(ctx context.Context, notificationID int64, actor string) error
	MarkAllRead(ctx context.Context, actor string) (int64, error)
}
