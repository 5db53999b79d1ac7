package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// MinuteOfDay is a wall-clock time as minutes since midnight. Intervals and
// window bounds are all normalized to minutes internally, so there is a
// single unit everywhere regardless of how the wire contract expressed it.
type MinuteOfDay int16

const MinutesPerDay = 24 * 60

// ParseMinuteOfDay parses "HH:MM" (24h).
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}

	return MinuteOfDay(h*60 + m), nil
}

func (t MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// DiffAbs returns the absolute distance to another time, in minutes.
func (t MinuteOfDay) DiffAbs(o MinuteOfDay) int {
	d := int(t) - int(o)
	if d < 0 {
		d = -d
	}
	return d
}
