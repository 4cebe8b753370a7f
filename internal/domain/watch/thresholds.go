package watch

import (
	"errors"
	"fmt"
	"time"
)

// Thresholds holds the configurable boundaries of the signal deriver.
// All four are plain configuration so tests and real sensor adapters can
// override them; defaults match the classroom rule (10/30 min, 04:00/06:00).
type Thresholds struct {
	// ShortStillness is the continuous stillness duration that raises Q10.
	ShortStillness time.Duration
	// LongStillness is the continuous stillness duration that raises Q30.
	LongStillness time.Duration
	// GraceStart is the time of day that raises M4.
	GraceStart ClockTime
	// GraceEnd is the time of day that raises M6.
	GraceEnd ClockTime
}

// Default threshold values.
const (
	DefaultShortStillness = 10 * time.Minute
	DefaultLongStillness  = 30 * time.Minute
	DefaultGraceStart     = ClockTime(4 * minutesPerHour)
	DefaultGraceEnd       = ClockTime(6 * minutesPerHour)
)

// ErrInvalidThresholds is returned when threshold values cannot form a
// consistent rule. It is fatal at configuration load time.
var ErrInvalidThresholds = errors.New("invalid thresholds")

// DefaultThresholds returns the standard rule boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ShortStillness: DefaultShortStillness,
		LongStillness:  DefaultLongStillness,
		GraceStart:     DefaultGraceStart,
		GraceEnd:       DefaultGraceEnd,
	}
}

// Validate checks that the thresholds preserve the Q30⇒Q10 and M6⇒M4
// implications the rule evaluator relies on.
func (t Thresholds) Validate() error {
	if t.ShortStillness <= 0 {
		return fmt.Errorf("%w: short stillness must be positive, got %s", ErrInvalidThresholds, t.ShortStillness)
	}

	if t.LongStillness <= 0 {
		return fmt.Errorf("%w: long stillness must be positive, got %s", ErrInvalidThresholds, t.LongStillness)
	}

	if t.ShortStillness >= t.LongStillness {
		return fmt.Errorf(
			"%w: short stillness %s must be below long stillness %s",
			ErrInvalidThresholds, t.ShortStillness, t.LongStillness,
		)
	}

	if !t.GraceStart.Valid() || !t.GraceEnd.Valid() {
		return fmt.Errorf("%w: grace boundaries must lie within one day", ErrInvalidThresholds)
	}

	if t.GraceStart >= t.GraceEnd {
		return fmt.Errorf(
			"%w: grace start %s must precede grace end %s",
			ErrInvalidThresholds, t.GraceStart, t.GraceEnd,
		)
	}

	return nil
}
