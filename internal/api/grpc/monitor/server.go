package monitor

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/cafe-electronico/wake-monitor/internal/domain/watch"
	pb "github.com/cafe-electronico/wake-monitor/internal/pb/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	ProcessTick(ctx context.Context, sessionID string, tick watch.Tick) (watch.Result, error)
	SessionSnapshot(ctx context.Context, sessionID string) (*watch.Snapshot, error)
}

// Server implements the MonitorService gRPC API.
type Server struct {
	pb.UnimplementedMonitorServiceServer

	// service provides the business logic for monitoring operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// ProcessTick applies one activity tick to a session and returns the verdict.
func (s *Server) ProcessTick(ctx context.Context, req *pb.ProcessTickRequest) (*pb.ProcessTickResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	tick := req.GetTick()
	if tick == nil || tick.GetTimestamp() == nil {
		return nil, status.Error(codes.InvalidArgument, "tick with timestamp is required")
	}

	result, err := s.service.ProcessTick(ctx, req.GetSessionId(), toDomainTick(tick))
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoResult(result), nil
}

// GetSessionState returns the current snapshot of a session.
func (s *Server) GetSessionState(ctx context.Context, req *pb.GetSessionStateRequest) (*pb.SessionSnapshot, error) {
	if req == nil || req.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	snapshot, err := s.service.SessionSnapshot(ctx, req.GetSessionId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoSnapshot(snapshot), nil
}

// toStatusError maps domain errors onto gRPC status codes. Ordering and
// consistency violations are precondition failures the caller can act on,
// not internal faults.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, watch.ErrTickOutOfOrder),
		errors.Is(err, watch.ErrInconsistentSignals):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, watch.ErrSessionNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, "unable to process request")
	}
}

// toDomainTick converts a protobuf ActivityTick to a domain Tick.
func toDomainTick(tick *pb.ActivityTick) watch.Tick {
	return watch.Tick{
		Timestamp: tick.GetTimestamp().AsTime(),
		Moving:    tick.GetMoving(),
	}
}

// toProtoResult converts a domain Result to a pb.ProcessTickResponse message.
func toProtoResult(result watch.Result) *pb.ProcessTickResponse {
	return &pb.ProcessTickResponse{
		StillSeconds: int64(result.State.StillFor.Seconds()),
		Signals: &pb.SignalVector{
			Q10: result.Signals.Q10,
			Q30: result.Signals.Q30,
			M4:  result.Signals.M4,
			M6:  result.Signals.M6,
		},
		Alarm:  result.Alarm,
		Reason: string(result.Reason),
	}
}

// toProtoSnapshot converts a domain Snapshot to a pb.SessionSnapshot message.
func toProtoSnapshot(snapshot *watch.Snapshot) *pb.SessionSnapshot {
	if snapshot == nil {
		return &pb.SessionSnapshot{}
	}

	var lastTick *timestamppb.Timestamp
	if !snapshot.LastTick.IsZero() {
		lastTick = timestamppb.New(snapshot.LastTick)
	}

	return &pb.SessionSnapshot{
		SessionId:    snapshot.SessionID,
		StillSeconds: int64(snapshot.StillFor.Seconds()),
		LastTick:     lastTick,
		Alarm:        snapshot.Alarm,
	}
}
