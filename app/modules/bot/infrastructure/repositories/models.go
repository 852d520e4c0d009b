package botdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Bot is a competition-scoped non-human opponent.
type Bot struct {
	bun.BaseModel `bun:"table:bots,alias:b"`

	ID            int64     `bun:"id,pk,autoincrement"`
	CompetitionID int64     `bun:"competition_id,notnull"`
	Username      string    `bun:"username,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
