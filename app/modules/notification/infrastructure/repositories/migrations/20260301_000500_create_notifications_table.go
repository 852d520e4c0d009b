package notificationmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating notifications table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS notifications (
				id BIGSERIAL PRIMARY KEY,
				recipient_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				kind VARCHAR(64) NOT NULL,
				message TEXT NOT NULL,
				related_id BIGINT NOT NULL DEFAULT 0,
				read BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_notifications_recipient_unread
				ON notifications (recipient_id, read, created_at DESC);
		`); err != nil {
			return fmt.Errorf("failed to create notifications table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping notifications table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS notifications;`); err != nil {
			return fmt.Errorf("failed to drop notifications table: %w", err)
		}
		return nil
	})
}
