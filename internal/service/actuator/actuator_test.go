package actuator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTrigger_RequiresCommand rejects empty and blank hook commands.
func TestTrigger_RequiresCommand(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Trigger(context.Background(), ""), ErrNoCommand)
	require.ErrorIs(t, Trigger(context.Background(), "   "), ErrNoCommand)
}

// TestTrigger_ReportsMissingExecutable surfaces start failures to the caller.
func TestTrigger_ReportsMissingExecutable(t *testing.T) {
	t.Parallel()

	err := Trigger(context.Background(), "definitely-not-an-existing-binary-42")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoCommand)
}
