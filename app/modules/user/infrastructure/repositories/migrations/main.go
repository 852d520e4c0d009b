package usermigrations

import "github.com/uptrace/bun/migrate"

// Migrations collects the users table migrations in this directory. Every other
// module's migrations reference users, so cmd/bun runs these first.
var Migrations = migrate.NewMigrations()

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
