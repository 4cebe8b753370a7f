package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cafe-electronico/wake-monitor/internal/domain/watch"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for a missing snapshot.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(t.TempDir())

	s, err := repo.Load(context.Background(), "dorm-101")
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, s)
}

// TestFileRepository_RejectsBadSessionIDs keeps snapshots inside the state directory.
func TestFileRepository_RejectsBadSessionIDs(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(t.TempDir())

	for _, id := range []string{"", ".", "..", "a/b", "../escape"} {
		_, err := repo.Load(context.Background(), id)
		require.ErrorIs(t, err, ErrBadSessionID, "id %q", id)
	}
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns an equal snapshot.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo := NewFileRepository(dir)

	ts := time.Now().UTC().Truncate(time.Second)
	want := &watch.Snapshot{
		SessionID: "dorm-101",
		StillFor:  17 * time.Minute,
		LastTick:  ts,
		Alarm:     true,
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background(), "dorm-101")
	require.NoError(t, err)
	require.Equal(t, want.SessionID, got.SessionID)
	require.Equal(t, want.StillFor, got.StillFor)
	require.Equal(t, want.LastTick.Unix(), got.LastTick.Unix())
	require.Equal(t, want.Alarm, got.Alarm)

	_, err = os.Stat(filepath.Join(dir, "dorm-101.json"))
	require.NoError(t, err)
}

// TestFileRepository_SessionsAreIsolated checks that snapshots of different
// sessions never overwrite each other.
func TestFileRepository_SessionsAreIsolated(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &watch.Snapshot{SessionID: "room-a", StillFor: time.Minute}))
	require.NoError(t, repo.Save(ctx, &watch.Snapshot{SessionID: "room-b", StillFor: time.Hour}))

	a, err := repo.Load(ctx, "room-a")
	require.NoError(t, err)
	require.Equal(t, time.Minute, a.StillFor)

	b, err := repo.Load(ctx, "room-b")
	require.NoError(t, err)
	require.Equal(t, time.Hour, b.StillFor)
}
