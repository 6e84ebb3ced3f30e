package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status TaskStatus
		want   bool
	}{
		{"pending is valid", TaskStatusPending, true},
		{"in_progress is valid", TaskStatusInProgress, true},
		{"completed is valid", TaskStatusCompleted, true},
		{"blocked is valid", TaskStatusBlocked, true},
		{"empty is invalid", TaskStatus(""), false},
		{"unknown is invalid", TaskStatus("running"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestTaskStatus_String(t *testing.T) {
	assert.Equal(t, "in_progress", TaskStatusInProgress.String())
}

func TestValidTaskStatuses(t *testing.T) {
	statuses := ValidTaskStatuses()
	assert.Len(t, statuses, 4)
	for _, s := range statuses {
		assert.True(t, s.IsValid())
	}
}

func TestScoreAction_String(t *testing.T) {
	assert.Equal(t, "accept", ScoreActionAccept.String())
	assert.Equal(t, "fill_gaps", ScoreActionFillGaps.String())
	assert.Equal(t, "regenerate", ScoreActionRegenerate.String())
}

func TestConfidenceThresholds(t *testing.T) {
	assert.Greater(t, ConfidenceAcceptThreshold, ConfidenceFillGapsThreshold)
	assert.InDelta(t, 1.0, 5*CriterionWeight, 1e-9, "five criteria should sum to full confidence")
}
