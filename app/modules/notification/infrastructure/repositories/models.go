package notificationdb

import (
	"time"

	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
	"github.com/uptrace/bun"
)

// Notification is a persisted message for one recipient.
type Notification struct {
	bun.BaseModel `bun:"table:notifications,alias:n"`

	ID          int64                   `bun:"id,pk,autoincrement"`
	RecipientID int64                   `bun:"recipient_id,notnull"`
	Kind        notificationdomain.Kind `bun:"kind,notnull"`
	Message     string                  `bun:"message,notnull"`
	RelatedID   int64                   `bun:"related_id,notnull"`
	Read        bool                    `bun:"read,notnull,default:false"`
	CreatedAt   time.Time               `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
