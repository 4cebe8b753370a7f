package watch

import (
	"time"
)

// Tick is one discrete observation of motion state at a timestamp.
type Tick struct {
	// Timestamp is when the observation was made.
	Timestamp time.Time
	// Moving reports whether the student was moving during this observation.
	Moving bool
}

// State tracks the continuous stillness run for one monitoring session.
type State struct {
	// StillFor is the length of the current uninterrupted stillness run.
	StillFor time.Duration
	// LastTick is the timestamp of the previous accepted tick.
	// Zero means no tick has been accepted yet.
	LastTick time.Time
}

// Signals is the derived boolean input vector of the alarm rule.
type Signals struct {
	// Q10 reports continuous stillness at or above the short threshold.
	Q10 bool
	// Q30 reports continuous stillness at or above the long threshold.
	Q30 bool
	// M4 reports a time of day at or past the grace window start.
	M4 bool
	// M6 reports a time of day at or past the grace window end.
	M6 bool
}

// Reason explains a verdict in terms of the rule term that produced it.
type Reason string

const (
	// ReasonNone means no alarm: stillness below threshold or recent movement.
	ReasonNone Reason = "-"
	// ReasonLongStillness means the long stillness threshold fired regardless of time.
	ReasonLongStillness Reason = "Q30"
	// ReasonEarlyStillness means short stillness fired before the grace window.
	ReasonEarlyStillness Reason = "Q10&~M4"
	// ReasonLateStillness means short stillness fired after the grace window.
	ReasonLateStillness Reason = "Q10&M6"
	// ReasonGraceWindow means short stillness was tolerated inside the grace window.
	ReasonGraceWindow Reason = "grace"
)

// Result is the outcome of processing a single tick.
type Result struct {
	// State is the stillness state after the tick was applied.
	State State
	// Signals is the derived signal vector for this tick.
	Signals Signals
	// Alarm is the verdict of the rule evaluator.
	Alarm bool
	// Reason identifies the rule term behind the verdict.
	Reason Reason
}

// Message returns a human-readable description of the verdict,
// suitable for CLI output.
func (r Result) Message() string {
	switch r.Reason {
	case ReasonLongStillness:
		return "ALARM: long stillness, the student is definitely asleep"
	case ReasonEarlyStillness:
		return "ALARM: short stillness before the grace window"
	case ReasonLateStillness:
		return "ALARM: short stillness after the grace window"
	case ReasonGraceWindow:
		return "grace window: short stillness tolerated for now"
	default:
		return "all good: movement seen or stillness below threshold"
	}
}
