package backlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHumanDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"hours plural", "2 hours", 2 * time.Hour},
		{"hour singular", "1 hour", time.Hour},
		{"minutes", "30 minutes", 30 * time.Minute},
		{"min abbreviation", "45 mins", 45 * time.Minute},
		{"working day", "1 day", 8 * time.Hour},
		{"working week", "2 weeks", 80 * time.Hour},
		{"fractional hours", "1.5 hours", 90 * time.Minute},
		{"go style", "2h30m", 2*time.Hour + 30*time.Minute},
		{"go style minutes", "90m", 90 * time.Minute},
		{"mixed case", "2 Hours", 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHumanDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHumanDuration_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unknown unit", "3 fortnights"},
		{"no amount", "hours"},
		{"too many fields", "2 long hours"},
		{"non-numeric amount", "two hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHumanDuration(tt.input)
			assert.Error(t, err)
		})
	}
}
