package watch

import (
	"errors"
	"fmt"
)

// ErrTickOutOfOrder is returned when a tick's timestamp precedes the
// previous tick of the same session. The tick is rejected and the state
// is left unchanged; the session itself stays usable.
var ErrTickOutOfOrder = errors.New("tick out of order")

// Derive applies one activity tick to the stillness state and computes the
// signal vector for it.
//
// Movement resets the stillness run to zero. Stillness extends the run by
// the delta between this tick's timestamp and the previous one, so irregular
// tick intervals are handled naturally. The first tick of a session has no
// predecessor and only anchors the run.
func Derive(prev State, tick Tick, th Thresholds) (State, Signals, error) {
	if !prev.LastTick.IsZero() && tick.Timestamp.Before(prev.LastTick) {
		return prev, Signals{}, fmt.Errorf(
			"%w: %s precedes %s",
			ErrTickOutOfOrder,
			tick.Timestamp.Format("15:04:05"),
			prev.LastTick.Format("15:04:05"),
		)
	}

	next := State{LastTick: tick.Timestamp}
	if !tick.Moving {
		next.StillFor = prev.StillFor
		if !prev.LastTick.IsZero() {
			next.StillFor += tick.Timestamp.Sub(prev.LastTick)
		}
	}

	clock := ClockOf(tick.Timestamp)
	signals := Signals{
		Q10: next.StillFor >= th.ShortStillness,
		Q30: next.StillFor >= th.LongStillness,
		M4:  clock >= th.GraceStart,
		M6:  clock >= th.GraceEnd,
	}

	return next, signals, nil
}
