package watch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a time of day expressed as minutes since midnight.
// Comparisons between values are plain integer comparisons, which keeps
// the M4/M6 boundaries free of wraparound ambiguity within one day.
type ClockTime int

// minutesPerHour and minutesPerDay bound valid ClockTime values.
const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// errInvalidClock is returned when a clock string cannot be parsed.
var errInvalidClock = errors.New("invalid clock time")

// ParseClock parses a "HH:MM" string on a 24-hour clock.
func ParseClock(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", errInvalidClock, s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", errInvalidClock, s)
	}

	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", errInvalidClock, s)
	}

	return ClockTime(hour*minutesPerHour + minute), nil
}

// ClockOf extracts the time of day from a timestamp.
func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*minutesPerHour + t.Minute())
}

// String formats the value as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/minutesPerHour, int(c)%minutesPerHour)
}

// Valid reports whether the value lies within a single day.
func (c ClockTime) Valid() bool {
	return c >= 0 && c < minutesPerDay
}
