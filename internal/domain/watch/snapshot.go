package watch

import (
	"errors"
	"time"
)

// ErrSessionNotFound is returned when a snapshot is requested for a session
// that has never processed a tick.
var ErrSessionNotFound = errors.New("session not found")

// Snapshot is a read-only view of one monitoring session, used by pollers
// and for restart recovery. It deliberately carries no history: only the
// current run and the latest verdict are preserved.
type Snapshot struct {
	// SessionID identifies the monitoring session.
	SessionID string
	// StillFor is the current uninterrupted stillness run.
	StillFor time.Duration
	// LastTick is the timestamp of the last accepted tick.
	LastTick time.Time
	// Alarm is the verdict of the last processed tick.
	Alarm bool
}

// Clone returns a copy of the snapshot to avoid leaking internal references.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	cloned := *s

	return &cloned
}

// State reconstructs the stillness state the snapshot was taken from.
func (s *Snapshot) State() State {
	return State{
		StillFor: s.StillFor,
		LastTick: s.LastTick,
	}
}
