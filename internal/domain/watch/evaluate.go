package watch

import (
	"errors"
	"fmt"
)

// ErrInconsistentSignals is returned when a signal vector violates the
// Q30⇒Q10 or M6⇒M4 implication. Vectors derived from a single duration and
// a single clock cannot reach these combinations; seeing one means the
// vector was constructed from malformed external input.
var ErrInconsistentSignals = errors.New("inconsistent signals")

// Check verifies the derivation invariants of the vector.
func (s Signals) Check() error {
	if s.Q30 && !s.Q10 {
		return fmt.Errorf("%w: Q30 set without Q10", ErrInconsistentSignals)
	}

	if s.M6 && !s.M4 {
		return fmt.Errorf("%w: M6 set without M4", ErrInconsistentSignals)
	}

	return nil
}

// Evaluate applies the alarm rule A = Q30 OR (Q10 AND (NOT M4 OR M6)).
//
// Inconsistent vectors are rejected before the formula is applied rather
// than silently mapped to a truth-table row.
func Evaluate(s Signals) (bool, error) {
	if err := s.Check(); err != nil {
		return false, err
	}

	return s.Q30 || (s.Q10 && (!s.M4 || s.M6)), nil
}

// Explain names the rule term behind a verdict for a given vector.
func Explain(s Signals, alarm bool) Reason {
	switch {
	case !alarm && s.Q10 && s.M4 && !s.M6:
		return ReasonGraceWindow
	case !alarm:
		return ReasonNone
	case s.Q30:
		return ReasonLongStillness
	case !s.M4:
		return ReasonEarlyStillness
	default:
		return ReasonLateStillness
	}
}

// Process is the convenience combination of Derive and Evaluate for one
// tick. On error the returned state equals the previous state.
func Process(prev State, tick Tick, th Thresholds) (State, Result, error) {
	next, signals, err := Derive(prev, tick, th)
	if err != nil {
		return prev, Result{}, err
	}

	alarm, err := Evaluate(signals)
	if err != nil {
		// Unreachable for derived signals, kept as the safety net
		// against a derivation bug.
		return prev, Result{}, err
	}

	result := Result{
		State:   next,
		Signals: signals,
		Alarm:   alarm,
		Reason:  Explain(signals, alarm),
	}

	return next, result, nil
}
