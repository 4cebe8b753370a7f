package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/cafe-electronico/wake-monitor/internal/domain/watch"
	pb "github.com/cafe-electronico/wake-monitor/internal/pb/v1"
)

var errTestInternal = errors.New("test internal error")

// fakeService is a Service stub recording the last call and returning canned
// answers.
type fakeService struct {
	// lastSessionID records the session ID of the last call.
	lastSessionID string
	// lastTick records the tick of the last ProcessTick call.
	lastTick watch.Tick
	// result is the canned answer for ProcessTick.
	result watch.Result
	// snapshot is the canned answer for SessionSnapshot.
	snapshot *watch.Snapshot
	// err is returned from both operations when set.
	err error
}

func (f *fakeService) ProcessTick(_ context.Context, sessionID string, tick watch.Tick) (watch.Result, error) {
	f.lastSessionID = sessionID
	f.lastTick = tick

	if f.err != nil {
		return watch.Result{}, f.err
	}

	return f.result, nil
}

func (f *fakeService) SessionSnapshot(_ context.Context, sessionID string) (*watch.Snapshot, error) {
	f.lastSessionID = sessionID

	if f.err != nil {
		return nil, f.err
	}

	return f.snapshot, nil
}

// requireStatusCode asserts that err is a gRPC status with the given code.
func requireStatusCode(t *testing.T, err error, code codes.Code) {
	t.Helper()

	st, ok := status.FromError(err)
	require.True(t, ok, "expected a gRPC status error, got %v", err)
	require.Equal(t, code, st.Code())
}

// TestServer_ProcessTick_ValidatesRequest rejects malformed requests before
// they reach the service.
func TestServer_ProcessTick_ValidatesRequest(t *testing.T) {
	t.Parallel()

	server := NewServer(new(fakeService))
	ctx := context.Background()

	testCases := []struct {
		name string
		req  *pb.ProcessTickRequest
	}{
		{
			name: "nil request",
			req:  nil,
		},
		{
			name: "missing session id",
			req: &pb.ProcessTickRequest{
				Tick: &pb.ActivityTick{Timestamp: timestamppb.Now()},
			},
		},
		{
			name: "missing tick",
			req:  &pb.ProcessTickRequest{SessionId: "dorm-101"},
		},
		{
			name: "tick without timestamp",
			req: &pb.ProcessTickRequest{
				SessionId: "dorm-101",
				Tick:      &pb.ActivityTick{},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := server.ProcessTick(ctx, tc.req)
			requireStatusCode(t, err, codes.InvalidArgument)
		})
	}
}

// TestServer_ProcessTick_RoundTrip converts the request and response between
// wire and domain representations.
func TestServer_ProcessTick_RoundTrip(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, time.March, 12, 4, 30, 0, 0, time.UTC)

	fake := &fakeService{
		result: watch.Result{
			State:   watch.State{StillFor: 35 * time.Minute, LastTick: when},
			Signals: watch.Signals{Q10: true, Q30: true, M4: true},
			Alarm:   true,
			Reason:  watch.ReasonLongStillness,
		},
	}
	server := NewServer(fake)

	resp, err := server.ProcessTick(context.Background(), &pb.ProcessTickRequest{
		SessionId: "dorm-101",
		Tick: &pb.ActivityTick{
			Timestamp: timestamppb.New(when),
			Moving:    false,
		},
	})
	require.NoError(t, err)

	require.Equal(t, "dorm-101", fake.lastSessionID)
	require.Equal(t, when, fake.lastTick.Timestamp)
	require.False(t, fake.lastTick.Moving)

	require.EqualValues(t, 35*60, resp.GetStillSeconds())
	require.True(t, resp.GetSignals().GetQ10())
	require.True(t, resp.GetSignals().GetQ30())
	require.True(t, resp.GetSignals().GetM4())
	require.False(t, resp.GetSignals().GetM6())
	require.True(t, resp.GetAlarm())
	require.Equal(t, string(watch.ReasonLongStillness), resp.GetReason())
}

// TestServer_ProcessTick_MapsDomainErrors translates domain failures onto
// status codes.
func TestServer_ProcessTick_MapsDomainErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{
			name: "out of order tick",
			err:  watch.ErrTickOutOfOrder,
			code: codes.FailedPrecondition,
		},
		{
			name: "inconsistent signals",
			err:  watch.ErrInconsistentSignals,
			code: codes.FailedPrecondition,
		},
		{
			name: "unknown session",
			err:  watch.ErrSessionNotFound,
			code: codes.NotFound,
		},
		{
			name: "opaque failure",
			err:  errTestInternal,
			code: codes.Internal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := NewServer(&fakeService{err: tc.err})

			_, err := server.ProcessTick(context.Background(), &pb.ProcessTickRequest{
				SessionId: "dorm-101",
				Tick:      &pb.ActivityTick{Timestamp: timestamppb.Now()},
			})
			requireStatusCode(t, err, tc.code)
		})
	}
}

// TestServer_GetSessionState covers validation, conversion, and the missing
// session case.
func TestServer_GetSessionState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("requires session id", func(t *testing.T) {
		t.Parallel()

		server := NewServer(new(fakeService))

		_, err := server.GetSessionState(ctx, &pb.GetSessionStateRequest{})
		requireStatusCode(t, err, codes.InvalidArgument)
	})

	t.Run("returns snapshot", func(t *testing.T) {
		t.Parallel()

		when := time.Date(2024, time.March, 12, 5, 0, 0, 0, time.UTC)
		server := NewServer(&fakeService{
			snapshot: &watch.Snapshot{
				SessionID: "dorm-101",
				StillFor:  14 * time.Minute,
				LastTick:  when,
				Alarm:     true,
			},
		})

		resp, err := server.GetSessionState(ctx, &pb.GetSessionStateRequest{SessionId: "dorm-101"})
		require.NoError(t, err)

		require.Equal(t, "dorm-101", resp.GetSessionId())
		require.EqualValues(t, 14*60, resp.GetStillSeconds())
		require.Equal(t, when, resp.GetLastTick().AsTime())
		require.True(t, resp.GetAlarm())
	})

	t.Run("reports missing session", func(t *testing.T) {
		t.Parallel()

		server := NewServer(&fakeService{err: watch.ErrSessionNotFound})

		_, err := server.GetSessionState(ctx, &pb.GetSessionStateRequest{SessionId: "unknown"})
		requireStatusCode(t, err, codes.NotFound)
	})
}
