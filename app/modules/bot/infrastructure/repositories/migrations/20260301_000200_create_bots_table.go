package botmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating bots table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS bots (
				id BIGSERIAL PRIMARY KEY,
				competition_id BIGINT NOT NULL REFERENCES competitions(id) ON DELETE CASCADE,
				username VARCHAR(64) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (competition_id, username)
			);
		`); err != nil {
			return fmt.Errorf("failed to create bots table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping bots table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS bots;`); err != nil {
			return fmt.Errorf("failed to drop bots table: %w", err)
		}
		return nil
	})
}
