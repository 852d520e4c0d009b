package notificationdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a notification is not found.
var ErrNotFound = errors.New("notification not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new notification repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create inserts a notification and fills in its id and creation time.
func (r *Impl) Create(ctx context.Context, db bun.IDB, n *Notification) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(n).Returning("id, created_at").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetByID retrieves a notification by id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*Notification, error) {
	db = r.resolveDB(db)
	n := new(Notification)
	err := db.NewSelect().
		Model(n).
		Where("n.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return n, nil
}

// ListForRecipient returns the newest notifications of a recipient first. A limit of
// zero or less returns all of them.
func (r *Impl) ListForRecipient(ctx context.Context, db bun.IDB, recipientID int64, unreadOnly bool, limit int) ([]*Notification, error) {
	db = r.resolveDB(db)
	var out []*Notification
	q := db.NewSelect().
		Model(&out).
		Where("n.recipient_id = ?", recipientID).
		OrderExpr("n.created_at DESC, n.id DESC")
	if unreadOnly {
		q = q.Where("n.read = FALSE")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return out, nil
}

// CountUnread counts the unread notifications of a recipient.
func (r *Impl) CountUnread(ctx context.Context, db bun.IDB, recipientID int64) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().
		Model((*Notification)(nil)).
		Where("n.recipient_id = ?", recipientID).
		Where("n.read = FALSE").
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead flags one notification as read.
func (r *Impl) MarkRead(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	_, err := db.NewUpdate().
		Model((*Notification)(nil)).
		Set("read = TRUE").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead flags every unread notification of a recipient and returns how many
// changed.
func (r *Impl) MarkAllRead(ctx context.Context, db bun.IDB, recipientID int64) (int64, error) {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model((*Notification)(nil)).
		Set("read = TRUE").
		Where("recipient_id = ?", recipientID).
		Where("read = FALSE").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
