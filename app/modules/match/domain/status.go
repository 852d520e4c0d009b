// Package matchdomain holds the match lifecycle rules. Status is a plain tag; the
// transition rules are free functions over it.
package matchdomain

import "fmt"

// Status is the lifecycle state of a match.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// IsValid reports whether s is one of the known statuses.
func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// CanStart reports whether a match in status s may be started.
func CanStart(s Status) bool {
	return s == StatusPending
}

// CanSubmitScores reports whether scores may be (re)submitted for a match in status s.
// Completed matches accept resubmission; the ledger is replaced each time.
func CanSubmitScores(s Status) bool {
	return s == StatusInProgress || s == StatusCompleted
}

// DefaultTitle is the title used when a match is created without one.
func DefaultTitle(number int) string {
	return fmt.Sprintf("Match %d", number)
}
