package notificationdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for notification persistence.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, n *Notification) error
	GetByID(ctx context.Context, db bun.IDB, id int64) (*Notification, error)
	ListForRecipient(ctx context.Context, db bun.IDB, recipientID int64, unreadOnly bool, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, db bun.IDB, recipientID int64) (int, error)
	MarkRead(ctx context.Context, db bun.IDB, id int64) error
	MarkAllRead(ctx context.Context, db bun.IDB, recipientID int64) (int64, error)
}
