package backlog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/preflylabs/prefly/internal/errors"
)

// unitDurations maps human duration unit names to their base duration.
// Days are working days (8 hours) since sprint estimates describe effort,
// not wall-clock time.
var unitDurations = map[string]time.Duration{ //nolint:gochecknoglobals // Static lookup table
	"minute": time.Minute,
	"min":    time.Minute,
	"hour":   time.Hour,
	"hr":     time.Hour,
	"day":    8 * time.Hour,
	"week":   5 * 8 * time.Hour,
}

// ParseHumanDuration parses the human-readable duration strings used in
// sprint plans ("2 hours", "30 minutes", "1 day", "1.5 hours"). Go-style
// durations ("90m", "2h30m") are accepted as well. An empty string is an
// error so callers can apply their own default.
func ParseHumanDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, errors.Wrap(errors.ErrEmptyValue, "duration")
	}

	// Go-style durations first ("2h", "90m", "2h30m").
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("unrecognized duration %q", s)
	}

	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("unrecognized duration amount %q", fields[0])
	}

	unit := strings.TrimSuffix(fields[1], "s")
	base, ok := unitDurations[unit]
	if !ok {
		return 0, fmt.Errorf("unrecognized duration unit %q", fields[1])
	}

	return time.Duration(amount * float64(base)), nil
}
