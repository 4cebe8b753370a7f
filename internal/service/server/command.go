package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	api "github.com/cafe-electronico/wake-monitor/internal/api/grpc/monitor"
	"github.com/cafe-electronico/wake-monitor/internal/config"
	"github.com/cafe-electronico/wake-monitor/internal/logger"
	pb "github.com/cafe-electronico/wake-monitor/internal/pb/v1"
	repository "github.com/cafe-electronico/wake-monitor/internal/repository/session"
)

// Options controls the wake-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// StateDir specifies the directory to persist session snapshots.
	StateDir string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the gRPC server and blocks until context is canceled or server stops.
// Loads configuration first, then determines listen address from config or override.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "wake-server")

	// Load configuration first to get server settings and thresholds.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Broken thresholds must never reach the decision engine.
	thresholds, err := settings.WatchThresholds()
	if err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}

	// Use StateDir from config unless overridden by command line option.
	stateDir := settings.StateDir
	if opts.StateDir != "" {
		stateDir = opts.StateDir
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	// Initialize snapshot repository for session recovery.
	repo := repository.NewFileRepository(stateDir)

	// Create monitor service with session management.
	svc, err := newService(thresholds, repo)
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	// Create and configure gRPC server with monitor service.
	grpcServer := grpc.NewServer()
	pb.RegisterMonitorServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(ctx, "Wake monitor server listening",
		"listen_address", listenAddress,
		"state_dir", stateDir,
		"q10", thresholds.ShortStillness.String(),
		"q30", thresholds.LongStillness.String(),
		"grace", thresholds.GraceStart.String()+"-"+thresholds.GraceEnd.String(),
	)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":50051" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:50051").
	if override != "" {
		return override, nil
	}

	// Extract port from config address (e.g., "monitor.example.com:50051" -> ":50051").
	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// Parse the address to extract port.
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}
