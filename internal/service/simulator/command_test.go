package simulator

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cafe-electronico/wake-monitor/internal/domain/watch"
)

// recordedTick captures one processTick call made against the recording engine.
type recordedTick struct {
	at     time.Time
	moving bool
}

// recordingEngine stores every tick it receives and returns empty verdicts.
type recordingEngine struct {
	ticks []recordedTick
}

func (e *recordingEngine) processTick(_ context.Context, at time.Time, moving bool) (watch.Result, error) {
	e.ticks = append(e.ticks, recordedTick{at: at, moving: moving})

	return watch.Result{Reason: watch.ReasonNone}, nil
}

// day returns a timestamp on a fixed reference day.
func day(hour, minute int) time.Time {
	return time.Date(2024, time.March, 12, hour, minute, 0, 0, time.UTC)
}

// TestRunScripted_EmitsOneTickPerInterval checks step expansion on the
// simulated clock.
func TestRunScripted_EmitsOneTickPerInterval(t *testing.T) {
	t.Parallel()

	eng := new(recordingEngine)
	steps := []Step{
		{Moving: false, Duration: 3 * time.Minute},
		{Moving: true, Duration: time.Minute},
	}

	err := runScripted(context.Background(), eng, steps, day(2, 0), time.Minute)
	require.NoError(t, err)

	require.Equal(t, []recordedTick{
		{at: day(2, 0), moving: false},
		{at: day(2, 1), moving: false},
		{at: day(2, 2), moving: false},
		{at: day(2, 3), moving: true},
	}, eng.ticks)
}

// TestRunScripted_ShortStepStillTicksOnce guards the at-least-one-tick rule
// for steps shorter than the interval.
func TestRunScripted_ShortStepStillTicksOnce(t *testing.T) {
	t.Parallel()

	eng := new(recordingEngine)
	steps := []Step{{Moving: true, Duration: 10 * time.Second}}

	err := runScripted(context.Background(), eng, steps, day(2, 0), time.Minute)
	require.NoError(t, err)
	require.Len(t, eng.ticks, 1)
	require.True(t, eng.ticks[0].moving)
}

// TestRunInteractive_Protocol exercises the keyboard commands end to end.
func TestRunInteractive_Protocol(t *testing.T) {
	t.Parallel()

	eng := new(recordingEngine)
	input := strings.NewReader(strings.Join([]string{
		"still",
		"2",
		"at 03:30 still",
		"rapid 2 03:45",
		"gibberish",
		"quit",
	}, "\n"))

	err := runInteractive(context.Background(), eng, input, day(2, 0), time.Minute)
	require.NoError(t, err)

	require.Equal(t, []recordedTick{
		{at: day(2, 1), moving: false},
		{at: day(2, 2), moving: true},
		{at: day(3, 30), moving: false},
		{at: day(3, 45), moving: false},
		{at: day(3, 46), moving: false},
	}, eng.ticks)
}

// TestRunInteractive_EndsOnEOF finishes cleanly when input runs dry.
func TestRunInteractive_EndsOnEOF(t *testing.T) {
	t.Parallel()

	eng := new(recordingEngine)

	err := runInteractive(context.Background(), eng, strings.NewReader("move\n"), day(2, 0), time.Minute)
	require.NoError(t, err)
	require.Len(t, eng.ticks, 1)
}

// TestLocalEngine_ThreadsState verifies the in-process engine accumulates the
// stillness run across ticks.
func TestLocalEngine_ThreadsState(t *testing.T) {
	t.Parallel()

	eng := &localEngine{thresholds: watch.DefaultThresholds()}
	ctx := context.Background()

	_, err := eng.processTick(ctx, day(2, 0), false)
	require.NoError(t, err)

	result, err := eng.processTick(ctx, day(2, 12), false)
	require.NoError(t, err)
	require.Equal(t, 12*time.Minute, result.State.StillFor)
	require.True(t, result.Alarm)

	// Rejected ticks leave the run untouched.
	_, err = eng.processTick(ctx, day(1, 0), false)
	require.ErrorIs(t, err, watch.ErrTickOutOfOrder)

	result, err = eng.processTick(ctx, day(2, 13), false)
	require.NoError(t, err)
	require.Equal(t, 13*time.Minute, result.State.StillFor)
}

// TestClockOnDay pins HH:MM values to the reference calendar day.
func TestClockOnDay(t *testing.T) {
	t.Parallel()

	at, err := clockOnDay(day(14, 0), "04:30")
	require.NoError(t, err)
	require.Equal(t, day(4, 30), at)

	_, err = clockOnDay(day(14, 0), "25:00")
	require.Error(t, err)
}
