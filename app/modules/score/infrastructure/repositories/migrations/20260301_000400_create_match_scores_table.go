package scoremigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating match_scores table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS match_scores (
				match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
				participant_kind VARCHAR(8) NOT NULL CHECK (participant_kind IN ('human', 'bot')),
				participant_id BIGINT NOT NULL CHECK (participant_id > 0),
				score INTEGER NOT NULL,
				confirmed BOOLEAN NOT NULL DEFAULT FALSE,
				PRIMARY KEY (match_id, participant_kind, participant_id)
			);
		`); err != nil {
			return fmt.Errorf("failed to create match_scores table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping match_scores table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS match_scores;`); err != nil {
			return fmt.Errorf("failed to drop match_scores table: %w", err)
		}
		return nil
	})
}
