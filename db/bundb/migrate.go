package bundb

import (
	"context"
	"fmt"

	botmigrations "github.com/Black-And-White-Club/matchday/app/modules/bot/infrastructure/repositories/migrations"
	competitionmigrations "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/repositories/migrations"
	matchmigrations "github.com/Black-And-White-Club/matchday/app/modules/match/infrastructure/repositories/migrations"
	notificationmigrations "github.com/Black-And-White-Club/matchday/app/modules/notification/infrastructure/repositories/migrations"
	scoremigrations "github.com/Black-And-White-Club/matchday/app/modules/score/infrastructure/repositories/migrations"
	usermigrations "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator is the migrator of one module. Each module keeps its own
// bookkeeping table so groups and rollbacks never mix modules.
type ModuleMigrator struct {
	Module   string
	Migrator *migrate.Migrator
}

// Migrators returns the module migrators in foreign key order: a module only
// references tables of modules before it.
func Migrators(db *bun.DB) []ModuleMigrator {
	modules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"user", usermigrations.Migrations},
		{"competition", competitionmigrations.Migrations},
		{"bot", botmigrations.Migrations},
		{"match", matchmigrations.Migrations},
		{"score", scoremigrations.Migrations},
		{"notification", notificationmigrations.Migrations},
	}

	out := make([]ModuleMigrator, 0, len(modules))
	for _, m := range modules {
		out = append(out, ModuleMigrator{
			Module: m.name,
			Migrator: migrate.NewMigrator(db, m.migrations,
				migrate.WithTableName("bun_migrations_"+m.name),
				migrate.WithLocksTableName("bun_migration_locks_"+m.name),
			),
		})
	}
	return out
}

// MigrateAll initializes and applies every module's migrations in order.
func MigrateAll(ctx context.Context, db *bun.DB) error {
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init migrations for %s: %w", m.Module, err)
		}
		if _, err := m.Migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", m.Module, err)
		}
	}
	return nil
}
