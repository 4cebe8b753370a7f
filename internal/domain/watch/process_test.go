package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestProcess_Scenarios covers the canonical verdicts at default thresholds.
func TestProcess_Scenarios(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		clock    time.Time
		stillFor time.Duration
		signals  Signals
		alarm    bool
		reason   Reason
	}{
		{
			name:     "02:30 after 12 min of stillness",
			clock:    at(2, 30),
			stillFor: 12 * time.Minute,
			signals:  Signals{Q10: true},
			alarm:    true,
			reason:   ReasonEarlyStillness,
		},
		{
			name:     "05:10 after 12 min of stillness",
			clock:    at(5, 10),
			stillFor: 12 * time.Minute,
			signals:  Signals{Q10: true, M4: true},
			alarm:    false,
			reason:   ReasonGraceWindow,
		},
		{
			name:     "05:20 after 31 min of stillness",
			clock:    at(5, 20),
			stillFor: 31 * time.Minute,
			signals:  Signals{Q10: true, Q30: true, M4: true},
			alarm:    true,
			reason:   ReasonLongStillness,
		},
		{
			name:     "06:30 after 12 min of stillness",
			clock:    at(6, 30),
			stillFor: 12 * time.Minute,
			signals:  Signals{Q10: true, M4: true, M6: true},
			alarm:    true,
			reason:   ReasonLateStillness,
		},
		{
			name:     "03:00 after 5 min of stillness",
			clock:    at(3, 0),
			stillFor: 5 * time.Minute,
			signals:  Signals{},
			alarm:    false,
			reason:   ReasonNone,
		},
	}

	th := DefaultThresholds()

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// The run started stillFor before the tick's timestamp.
			prev := State{
				StillFor: tc.stillFor - time.Minute,
				LastTick: tc.clock.Add(-time.Minute),
			}

			next, result, err := Process(prev, Tick{Timestamp: tc.clock}, th)

			require.NoError(t, err)
			require.Equal(t, tc.stillFor, next.StillFor)
			require.Equal(t, tc.signals, result.Signals)
			require.Equal(t, tc.alarm, result.Alarm)
			require.Equal(t, tc.reason, result.Reason)
			require.NotEmpty(t, result.Message())
		})
	}
}

// TestProcess_OutOfOrderKeepsState verifies a rejected tick leaves the
// previous state intact so the session can continue.
func TestProcess_OutOfOrderKeepsState(t *testing.T) {
	t.Parallel()

	prev := State{
		StillFor: 20 * time.Minute,
		LastTick: at(5, 0),
	}

	next, _, err := Process(prev, Tick{Timestamp: at(4, 59)}, DefaultThresholds())

	require.ErrorIs(t, err, ErrTickOutOfOrder)
	require.Equal(t, prev, next)

	// The session accepts correctly ordered ticks afterwards.
	next, result, err := Process(next, Tick{Timestamp: at(5, 1)}, DefaultThresholds())
	require.NoError(t, err)
	require.Equal(t, 21*time.Minute, next.StillFor)
	require.True(t, result.Signals.Q10)
}
