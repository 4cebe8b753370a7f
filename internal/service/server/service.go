package server

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cafe-electronico/wake-monitor/internal/domain/watch"
	"github.com/cafe-electronico/wake-monitor/internal/logger"
	repo "github.com/cafe-electronico/wake-monitor/internal/repository/session"
)

// service encapsulates the monitoring business logic and persistence
// orchestration. It is unexported to keep the transport decoupled from the
// implementation.
type service struct {
	// repo handles persistent storage of session snapshots.
	repo repo.Repository
	// thresholds configure the signal deriver for every session.
	thresholds watch.Thresholds
	// sessions maps session IDs to their isolated monitoring state.
	sessions map[string]*session
	// mu protects concurrent access to the session registry. Ticks for one
	// session are strictly sequential; the lock only serialises sessions
	// that happen to share the server.
	mu sync.Mutex
}

// session is the per-session state. Each session owns exactly one stillness
// run; nothing is shared across sessions.
type session struct {
	// state is the current stillness state of the session.
	state watch.State
	// alarm is the verdict of the last processed tick.
	alarm bool
}

// errSessionIDRequired is returned when a request carries no session ID.
var errSessionIDRequired = errors.New("session id must be provided")

// newService creates a service backed by the provided repository.
func newService(thresholds watch.Thresholds, repository repo.Repository) (*service, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	return &service{
		repo:       repository,
		thresholds: thresholds,
		sessions:   make(map[string]*session),
	}, nil
}

// ProcessTick applies one activity tick to a session, creating the session on
// first use. The new verdict is persisted before it is returned.
func (s *service) ProcessTick(ctx context.Context, sessionID string, tick watch.Tick) (watch.Result, error) {
	if sessionID == "" {
		return watch.Result{}, errSessionIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lockedSession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, watch.ErrSessionNotFound) {
			return watch.Result{}, err
		}

		// First tick of a brand-new session.
		sess = &session{}
		s.sessions[sessionID] = sess
	}

	next, result, err := watch.Process(sess.state, tick, s.thresholds)
	if err != nil {
		logger.WarnKV(ctx, "Tick rejected",
			"session_id", sessionID,
			"timestamp", tick.Timestamp,
			"error", err,
		)

		return watch.Result{}, err
	}

	sess.state = next
	sess.alarm = result.Alarm

	if s.repo != nil {
		if err := s.repo.Save(ctx, s.snapshotOf(sessionID, sess)); err != nil {
			logger.Errorf(ctx, "Failed to persist session snapshot: %v", err)

			return watch.Result{}, fmt.Errorf("persist snapshot: %w", err)
		}
	}

	logger.InfoKV(ctx, "Tick processed",
		"session_id", sessionID,
		"timestamp", tick.Timestamp,
		"moving", tick.Moving,
		"still_for", next.StillFor,
		"alarm", result.Alarm,
		"reason", result.Reason,
	)

	return result, nil
}

// SessionSnapshot returns a read-only view of one session. Sessions that
// never processed a tick are reported as watch.ErrSessionNotFound.
func (s *service) SessionSnapshot(ctx context.Context, sessionID string) (*watch.Snapshot, error) {
	if sessionID == "" {
		return nil, errSessionIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lockedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.snapshotOf(sessionID, sess), nil
}

// lockedSession returns the in-memory session, recovering it from the
// repository after a restart. Unknown sessions yield watch.ErrSessionNotFound.
// Callers must hold s.mu.
func (s *service) lockedSession(ctx context.Context, sessionID string) (*session, error) {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}

	if s.repo == nil {
		return nil, fmt.Errorf("%w: %q", watch.ErrSessionNotFound, sessionID)
	}

	snapshot, err := s.repo.Load(ctx, sessionID)
	switch {
	case err == nil:
		sess := &session{
			state: snapshot.State(),
			alarm: snapshot.Alarm,
		}
		s.sessions[sessionID] = sess

		logger.InfoKV(ctx, "Session recovered from snapshot",
			"session_id", sessionID,
			"still_for", sess.state.StillFor,
		)

		return sess, nil
	case errors.Is(err, repo.ErrNotFound):
		return nil, fmt.Errorf("%w: %q", watch.ErrSessionNotFound, sessionID)
	default:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
}

// snapshotOf builds the external view of a session. Callers must hold s.mu.
func (s *service) snapshotOf(sessionID string, sess *session) *watch.Snapshot {
	return &watch.Snapshot{
		SessionID: sessionID,
		StillFor:  sess.state.StillFor,
		LastTick:  sess.state.LastTick,
		Alarm:     sess.alarm,
	}
}
