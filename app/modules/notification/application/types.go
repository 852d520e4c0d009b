package notificationservice

import (
	"time"

	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
)

// NotificationInfo is a notification as the API returns it.
type NotificationInfo struct {
	ID        int64                   `json:"id"`
	Kind      notificationdomain.Kind `json:"kind"`
	Message   string                  `json:"message"`
	RelatedID int64                   `json:"related_id"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"created_at"`
}
