//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/cafe-electronico/wake-monitor/internal/config"
	pb "github.com/cafe-electronico/wake-monitor/internal/pb/v1"
)

// Client wraps the gRPC MonitorService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the monitor server.
	conn *grpc.ClientConn
	// api is the generated MonitorService client interface.
	api pb.MonitorServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errSessionRequired is returned when a session ID is not provided.
	errSessionRequired = errors.New("session id must be provided")
)

// Dial establishes a gRPC connection to the monitor server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial monitor server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewMonitorServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// ProcessTick submits one activity observation for a session.
func (c *Client) ProcessTick(
	ctx context.Context,
	sessionID string,
	timestamp time.Time,
	moving bool,
) (*pb.ProcessTickResponse, error) {
	if sessionID == "" {
		return nil, errSessionRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.ProcessTickRequest{
		SessionId: sessionID,
		Tick: &pb.ActivityTick{
			Timestamp: timestamppb.New(timestamp),
			Moving:    moving,
		},
	}

	response, err := c.api.ProcessTick(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("process tick: %w", err)
	}

	return response, nil
}

// GetSessionState retrieves the current snapshot of a session.
func (c *Client) GetSessionState(ctx context.Context, sessionID string) (*pb.SessionSnapshot, error) {
	if sessionID == "" {
		return nil, errSessionRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.GetSessionState(callCtx, &pb.GetSessionStateRequest{SessionId: sessionID})
	if err != nil {
		return nil, fmt.Errorf("get session state: %w", err)
	}

	return response, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
