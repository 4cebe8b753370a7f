package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParseClock covers valid and malformed clock strings.
func TestParseClock(t *testing.T) {
	t.Parallel()

	c, err := ParseClock("04:00")
	require.NoError(t, err)
	require.Equal(t, ClockTime(240), c)
	require.Equal(t, "04:00", c.String())

	c, err = ParseClock("23:59")
	require.NoError(t, err)
	require.Equal(t, ClockTime(1439), c)

	c, err = ParseClock(" 06:30 ")
	require.NoError(t, err)
	require.Equal(t, "06:30", c.String())

	for _, bad := range []string{"", "6", "24:00", "12:60", "aa:bb", "-1:00"} {
		_, err = ParseClock(bad)
		require.Error(t, err, "input %q", bad)
	}
}

// TestClockOf verifies extraction of the time of day from a timestamp.
func TestClockOf(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 12, 5, 20, 45, 0, time.UTC)
	require.Equal(t, ClockTime(5*60+20), ClockOf(ts))
}

// TestThresholds_Validate rejects non-positive and inverted boundaries.
func TestThresholds_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultThresholds().Validate())

	bad := DefaultThresholds()
	bad.ShortStillness = 0
	require.ErrorIs(t, bad.Validate(), ErrInvalidThresholds)

	bad = DefaultThresholds()
	bad.LongStillness = -time.Minute
	require.ErrorIs(t, bad.Validate(), ErrInvalidThresholds)

	bad = DefaultThresholds()
	bad.ShortStillness = bad.LongStillness
	require.ErrorIs(t, bad.Validate(), ErrInvalidThresholds)

	bad = DefaultThresholds()
	bad.GraceStart = bad.GraceEnd
	require.ErrorIs(t, bad.Validate(), ErrInvalidThresholds)

	bad = DefaultThresholds()
	bad.GraceEnd = ClockTime(minutesPerDay)
	require.ErrorIs(t, bad.Validate(), ErrInvalidThresholds)
}
