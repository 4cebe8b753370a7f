package watch

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestDerive_InvariantsOverRandomSequences feeds random tick sequences through
// the deriver and checks that the Q30⇒Q10 and M6⇒M4 implications never break.
func TestDerive_InvariantsOverRandomSequences(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	th := DefaultThresholds()

	for run := 0; run < 200; run++ {
		state := State{}
		clock := at(rng.Intn(8), rng.Intn(60))

		for i := 0; i < 100; i++ {
			// Irregular intervals between 0 and 5 minutes.
			clock = clock.Add(time.Duration(rng.Intn(6)) * time.Minute)

			tick := Tick{
				Timestamp: clock,
				Moving:    rng.Intn(3) == 0,
			}

			next, signals, err := Derive(state, tick, th)
			require.NoError(t, err)
			require.NoError(t, signals.Check(), "run %d tick %d: %+v", run, i, signals)

			// Evaluate never errors on derived vectors.
			_, err = Evaluate(signals)
			require.NoError(t, err)

			state = next
		}
	}
}

// TestDerive_StillnessNeverNegative checks the run length stays non-negative
// across resets and zero-length intervals.
func TestDerive_StillnessNeverNegative(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	th := DefaultThresholds()
	state := State{}
	clock := at(1, 0)

	for i := 0; i < 500; i++ {
		clock = clock.Add(time.Duration(rng.Intn(3)) * time.Minute)

		next, _, err := Derive(state, Tick{Timestamp: clock, Moving: rng.Intn(2) == 0}, th)
		require.NoError(t, err)
		require.GreaterOrEqual(t, next.StillFor, time.Duration(0))

		state = next
	}
}
