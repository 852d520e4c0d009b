package matchmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating matches and match_participants tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS matches (
					id BIGSERIAL PRIMARY KEY,
					competition_id BIGINT NOT NULL REFERENCES competitions(id) ON DELETE CASCADE,
					title VARCHAR(100) NOT NULL,
					match_number INTEGER NOT NULL,
					status VARCHAR(16) NOT NULL DEFAULT 'PENDING'
						CHECK (status IN ('PENDING', 'IN_PROGRESS', 'COMPLETED')),
					started_at TIMESTAMPTZ,
					scores_submitted BOOLEAN NOT NULL DEFAULT FALSE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_matches_competition_status ON matches(competition_id, status);
			`); err != nil {
				return fmt.Errorf("failed to create matches table: %w", err)
			}

			// Bot references carry no foreign key: a regenerated roster must not rewrite history.
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS match_participants (
					match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
					participant_kind VARCHAR(8) NOT NULL CHECK (participant_kind IN ('human', 'bot')),
					participant_id BIGINT NOT NULL CHECK (participant_id > 0),
					PRIMARY KEY (match_id, participant_kind, participant_id)
				);
			`); err != nil {
				return fmt.Errorf("failed to create match_participants table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping matches tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS match_participants;`); err != nil {
				return fmt.Errorf("failed to drop match_participants table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS matches;`); err != nil {
				return fmt.Errorf("failed to drop matches table: %w", err)
			}
			return nil
		})
	})
}
