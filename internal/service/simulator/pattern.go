package simulator

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Step is one segment of a scripted activity pattern.
type Step struct {
	// Moving reports whether the segment represents movement or stillness.
	Moving bool
	// Duration is the length of the segment in simulated time.
	Duration time.Duration
}

// errInvalidPattern is returned when a pattern string cannot be parsed.
var errInvalidPattern = errors.New("invalid pattern")

// ParsePattern parses a comma-separated pattern such as "still:40m,move:5m".
// Each segment is "<kind>:<duration>" where kind is "still" or "move" and
// duration uses Go duration syntax.
func ParsePattern(s string) ([]Step, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: pattern must not be empty", errInvalidPattern)
	}

	segments := strings.Split(s, ",")
	steps := make([]Step, 0, len(segments))

	for _, segment := range segments {
		kind, value, ok := strings.Cut(strings.TrimSpace(segment), ":")
		if !ok {
			return nil, fmt.Errorf("%w: segment %q must look like still:40m or move:5m", errInvalidPattern, segment)
		}

		var moving bool

		switch strings.TrimSpace(kind) {
		case "still":
			moving = false
		case "move":
			moving = true
		default:
			return nil, fmt.Errorf("%w: unknown kind %q, want still or move", errInvalidPattern, kind)
		}

		duration, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil || duration <= 0 {
			return nil, fmt.Errorf("%w: segment %q needs a positive duration", errInvalidPattern, segment)
		}

		steps = append(steps, Step{Moving: moving, Duration: duration})
	}

	return steps, nil
}
