package integration

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cafe-electronico/wake-monitor/internal/config"
	"github.com/cafe-electronico/wake-monitor/internal/service/common"
	"github.com/cafe-electronico/wake-monitor/internal/service/server"
)

// startGRPC starts a gRPC server with temporary config and snapshot directory.
// Returns a stop function to gracefully shutdown the server.
func startGRPC(t *testing.T, addr string, stateDir string) (stop func()) {
	t.Helper()

	// Create cancellable context for server lifecycle.
	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	// Create temporary configuration file.
	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			ServerAddress: addr,
			Timeout:       5 * time.Second,
		}),
	)

	// Start server in background goroutine.
	go func() {
		options := &server.Options{
			ConfigPath:    cfgPath,
			ListenAddress: "",
			StateDir:      stateDir,
		}

		_ = server.Run(ctx, options) //nolint:errcheck // Server exit is asserted through client calls.
	}()

	// Wait briefly for server to start listening.
	time.Sleep(150 * time.Millisecond)

	return func() {
		cancel()
		time.Sleep(100 * time.Millisecond)
	}
}

// TestGRPC_Roundtrip starts the real server and walks one session from first
// tick to a raised alarm with on-disk snapshots.
func TestGRPC_Roundtrip(t *testing.T) {
	t.Parallel()

	// Reserve a free port for the test server.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	// Setup temporary snapshot directory for persistence testing.
	stateDir := filepath.Join(t.TempDir(), "state")

	// Start test gRPC server.
	stop := startGRPC(t, addr, stateDir)
	defer stop()

	ctx := context.Background()

	// Connect to the test server with timeout.
	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	// Unknown sessions are reported as NotFound before the first tick.
	_, err = c.GetSessionState(ctx, "dorm-101")
	require.Equal(t, codes.NotFound, status.Code(err))

	// First still tick anchors the run, no verdict yet.
	first := time.Date(2024, time.March, 12, 2, 0, 0, 0, time.UTC)

	resp, err := c.ProcessTick(ctx, "dorm-101", first, false)
	require.NoError(t, err)
	require.False(t, resp.GetAlarm())

	// Forty still minutes later the long threshold fires.
	resp, err = c.ProcessTick(ctx, "dorm-101", first.Add(40*time.Minute), false)
	require.NoError(t, err)
	require.True(t, resp.GetAlarm())
	require.Equal(t, "Q30", resp.GetReason())
	require.EqualValues(t, 40*60, resp.GetStillSeconds())

	// Out-of-order ticks are rejected as precondition failures.
	_, err = c.ProcessTick(ctx, "dorm-101", first.Add(-time.Minute), false)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	// The snapshot reflects the raised alarm.
	snapshot, err := c.GetSessionState(ctx, "dorm-101")
	require.NoError(t, err)
	require.True(t, snapshot.GetAlarm())
	require.EqualValues(t, 40*60, snapshot.GetStillSeconds())

	// Snapshot was persisted to disk.
	_, err = os.Stat(filepath.Join(stateDir, "dorm-101.json"))
	require.NoError(t, err)
}

// TestGRPC_SessionIsolation verifies two sessions never share a stillness run.
func TestGRPC_SessionIsolation(t *testing.T) {
	t.Parallel()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	stop := startGRPC(t, addr, filepath.Join(t.TempDir(), "state"))
	defer stop()

	ctx := context.Background()

	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	first := time.Date(2024, time.March, 12, 2, 0, 0, 0, time.UTC)

	_, err = c.ProcessTick(ctx, "room-a", first, false)
	require.NoError(t, err)

	_, err = c.ProcessTick(ctx, "room-a", first.Add(20*time.Minute), false)
	require.NoError(t, err)

	// A fresh session starts from zero even while room-a is mid-run.
	resp, err := c.ProcessTick(ctx, "room-b", first.Add(20*time.Minute), false)
	require.NoError(t, err)
	require.Zero(t, resp.GetStillSeconds())
	require.False(t, resp.GetAlarm())
}
