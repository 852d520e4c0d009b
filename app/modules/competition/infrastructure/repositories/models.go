package competitiondb

import (
	"time"

	"github.com/uptrace/bun"
)

// Competition is a group of users that play matches against each other and against bots.
type Competition struct {
	bun.BaseModel `bun:"table:competitions,alias:c"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Title     string    `bun:"title,notnull"`
	Icon      string    `bun:"icon,notnull"`
	CreatorID int64     `bun:"creator_id,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Participant is a membership row linking a user to a competition.
type Participant struct {
	bun.BaseModel `bun:"table:competition_participants,alias:cp"`

	CompetitionID int64     `bun:"competition_id,pk"`
	UserID        int64     `bun:"user_id,pk"`
	JoinedAt      time.Time `bun:"joined_at,nullzero,notnull,default:current_timestamp"`
}
