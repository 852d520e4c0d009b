package competitionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating competitions and competition_participants tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS competitions (
					id BIGSERIAL PRIMARY KEY,
					title VARCHAR(100) NOT NULL,
					icon TEXT NOT NULL DEFAULT '',
					creator_id BIGINT NOT NULL REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_competitions_creator_id ON competitions(creator_id);
			`); err != nil {
				return fmt.Errorf("failed to create competitions table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS competition_participants (
					competition_id BIGINT NOT NULL REFERENCES competitions(id) ON DELETE CASCADE,
					user_id BIGINT NOT NULL REFERENCES users(id),
					joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					PRIMARY KEY (competition_id, user_id)
				);
				CREATE INDEX IF NOT EXISTS idx_competition_participants_user_id ON competition_participants(user_id);
			`); err != nil {
				return fmt.Errorf("failed to create competition_participants table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping competitions tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS competition_participants;`); err != nil {
				return fmt.Errorf("failed to drop competition_participants table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS competitions;`); err != nil {
				return fmt.Errorf("failed to drop competitions table: %w", err)
			}
			return nil
		})
	})
}
