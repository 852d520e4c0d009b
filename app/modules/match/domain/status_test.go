package matchdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitions(t *testing.T) {
	tests := []struct {
		status     Status
		canStart   bool
		canSubmit  bool
		validState bool
	}{
		{status: StatusPending, canStart: true, canSubmit: false, validState: true},
		{status: StatusInProgress, canStart: false, canSubmit: true, validState: true},
		{status: StatusCompleted, canStart: false, canSubmit: true, validState: true},
		{status: Status("ARCHIVED"), canStart: false, canSubmit: false, validState: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.canStart, CanStart(tt.status))
			assert.Equal(t, tt.canSubmit, CanSubmitScores(tt.status))
			assert.Equal(t, tt.validState, IsValid(tt.status))
		})
	}
}

func TestDefaultTitle(t *testing.T) {
	assert.Equal(t, "Match 3", DefaultTitle(3))
}
