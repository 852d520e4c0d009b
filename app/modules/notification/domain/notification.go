package notificationdomain

import (
	"fmt"
	"time"
)

// Kind identifies what a notification is about.
type Kind string

const (
	KindMatchCreated        Kind = "MATCH_CREATED"
	KindUserLeftCompetition Kind = "USER_LEFT_COMPETITION"
)

// CreatedTopicPrefix is the subject prefix for notification events. The recipient
// user id is appended so a client can subscribe to its own stream only.
const CreatedTopicPrefix = "notification.created.v1"

// CreatedTopic returns the subject a notification for recipientID is published on.
func CreatedTopic(recipientID int64) string {
	return fmt.Sprintf("%s.%d", CreatedTopicPrefix, recipientID)
}

// MatchCreatedMessage renders the message sent to match participants.
func MatchCreatedMessage(actor, matchTitle, competitionTitle string) string {
	return fmt.Sprintf("%s created a new match: %s in %s", actor, matchTitle, competitionTitle)
}

// UserLeftMessage renders the message sent to the remaining members of a competition.
func UserLeftMessage(actor, competitionTitle string) string {
	return fmt.Sprintf("%s has left the competition %s", actor, competitionTitle)
}

// CreatedPayload is the body of a notification.created.v1 event.
type CreatedPayload struct {
	ID          int64     `json:"id"`
	RecipientID int64     `json:"recipient_id"`
	Kind        Kind      `json:"kind"`
	Message     string    `json:"message"`
	RelatedID   int64     `json:"related_id"`
	CreatedAt   time.Time `json:"created_at"`
}
