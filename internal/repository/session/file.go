package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/cafe-electronico/wake-monitor/internal/config"
	"github.com/cafe-electronico/wake-monitor/internal/domain/watch"
	pb "github.com/cafe-electronico/wake-monitor/internal/pb/v1"
)

// Repository defines persistence operations for session snapshots.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*watch.Snapshot, error)
	Save(ctx context.Context, snapshot *watch.Snapshot) error
}

// FileRepository persists session snapshots as JSON files on disk, one file
// per session under a state directory. JSON is produced and consumed via
// protobuf JSON (protojson) to stay compatible with the generated API types.
type FileRepository struct {
	// dir is the filesystem location of the snapshot files.
	dir string
	// mu protects concurrent access to the snapshot files.
	mu sync.Mutex
}

var (
	// ErrNotFound is returned when no snapshot exists for a session yet.
	ErrNotFound = errors.New("snapshot not found")
	// ErrBadSessionID is returned when a session ID cannot name a file safely.
	ErrBadSessionID = errors.New("session id is not usable as a file name")
)

// NewFileRepository creates a repository that reads/writes JSON under the
// provided directory.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{
		dir: filepath.Clean(dir),
	}
}

// Load reads the snapshot of one session from disk.
func (r *FileRepository) Load(_ context.Context, sessionID string) (*watch.Snapshot, error) {
	path, err := r.snapshotPath(sessionID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var protoSnapshot pb.SessionSnapshot
	if err = protojson.Unmarshal(contents, &protoSnapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot file: %w", err)
	}

	return fromProto(&protoSnapshot), nil
}

// Save writes the snapshot of one session to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, snapshot *watch.Snapshot) error {
	path, err := r.snapshotPath(snapshot.SessionID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err = os.MkdirAll(r.dir, config.DefaultDirPermissions); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	var (
		protoSnapshot  = toProto(snapshot)
		marshalOptions = protojson.MarshalOptions{
			EmitUnpopulated: true,
		}
	)

	data, err := marshalOptions.Marshal(protoSnapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err = os.WriteFile(path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}

	return nil
}

// snapshotPath maps a session ID onto a file path, rejecting IDs that would
// escape the state directory.
func (r *FileRepository) snapshotPath(sessionID string) (string, error) {
	if sessionID == "" || filepath.Base(sessionID) != sessionID || sessionID == "." || sessionID == ".." {
		return "", fmt.Errorf("%w: %q", ErrBadSessionID, sessionID)
	}

	return filepath.Join(r.dir, sessionID+".json"), nil
}

// fromProto converts protobuf SessionSnapshot into the domain model.
func fromProto(protoSnapshot *pb.SessionSnapshot) *watch.Snapshot {
	var lastTick time.Time
	if ts := protoSnapshot.GetLastTick(); ts != nil {
		lastTick = ts.AsTime()
	}

	return &watch.Snapshot{
		SessionID: protoSnapshot.GetSessionId(),
		StillFor:  time.Duration(protoSnapshot.GetStillSeconds()) * time.Second,
		LastTick:  lastTick,
		Alarm:     protoSnapshot.GetAlarm(),
	}
}

// toProto converts the domain snapshot into protobuf SessionSnapshot.
func toProto(snapshot *watch.Snapshot) *pb.SessionSnapshot {
	var lastTick *timestamppb.Timestamp
	if !snapshot.LastTick.IsZero() {
		lastTick = timestamppb.New(snapshot.LastTick)
	}

	return &pb.SessionSnapshot{
		SessionId:    snapshot.SessionID,
		StillSeconds: int64(snapshot.StillFor / time.Second),
		LastTick:     lastTick,
		Alarm:        snapshot.Alarm,
	}
}
