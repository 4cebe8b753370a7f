package watcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cafe-electronico/wake-monitor/internal/config"
	"github.com/cafe-electronico/wake-monitor/internal/logger"
	pb "github.com/cafe-electronico/wake-monitor/internal/pb/v1"
	"github.com/cafe-electronico/wake-monitor/internal/service/actuator"
	"github.com/cafe-electronico/wake-monitor/internal/service/common"
)

// Options controls the watcher polling behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// SessionID identifies the monitoring session to watch.
	SessionID string
	// PollInterval defines the interval between session state probes.
	PollInterval time.Duration
	// OnAlarm is an optional hook command started when the alarm fires.
	OnAlarm string
	// Once performs a single probe and exits instead of polling.
	Once bool
}

// DefaultPollInterval defines the polling interval for session state probes.
const DefaultPollInterval = 5 * time.Second

// errSessionRequired is returned when no session ID was provided.
var errSessionRequired = errors.New("session id must be provided")

// errAlarmRaised signals the polling loop that the verdict turned positive.
var errAlarmRaised = errors.New("alarm raised")

// Run polls the session state and reacts when the alarm verdict turns
// positive: the hook command is started, then the watcher exits.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "wake-watcher")

	if opts.SessionID == "" {
		return errSessionRequired
	}

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Establish gRPC connection with timeout from configuration.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Watching session",
		"server_address", serverAddress,
		"session_id", opts.SessionID,
		"interval", opts.PollInterval.String(),
	)

	if opts.Once {
		if err = probe(ctx, client, opts); err != nil && !errors.Is(err, errAlarmRaised) {
			return err
		}

		return nil
	}

	// Setup polling ticker with fixed interval.
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	// Main polling loop until context cancellation or a raised alarm.
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			if err = probe(ctx, client, opts); err != nil {
				if errors.Is(err, errAlarmRaised) {
					return nil
				}

				logger.ErrorKV(ctx, "Probe failed", "error", err)
			}
		}
	}
}

// probe retrieves one session snapshot, logs it, and starts the hook when the
// alarm verdict is positive. Returns errAlarmRaised after the hook fired.
func probe(ctx context.Context, client *common.Client, opts *Options) error {
	snapshot, err := client.GetSessionState(ctx, opts.SessionID)
	if err != nil {
		// A session that has not ticked yet is not a failure.
		if status.Code(err) == codes.NotFound {
			logger.InfoKV(ctx, "Session has no ticks yet", "session_id", opts.SessionID)
			return nil
		}

		return err
	}

	logger.InfoKV(ctx, "Session state",
		"session_id", snapshot.GetSessionId(),
		"still_for", formatStillness(snapshot),
		"last_tick", formatLastTick(snapshot),
		"alarm", snapshot.GetAlarm(),
	)

	if !snapshot.GetAlarm() {
		return nil
	}

	logger.Info(ctx, "Alarm raised, time to wake the student")

	if opts.OnAlarm != "" {
		if err = actuator.Trigger(ctx, opts.OnAlarm); err != nil {
			return fmt.Errorf("alarm hook: %w", err)
		}

		logger.InfoKV(ctx, "Alarm hook started", "command", opts.OnAlarm)
	}

	return errAlarmRaised
}

// formatStillness renders the stillness run of a snapshot for logging.
func formatStillness(snapshot *pb.SessionSnapshot) string {
	return (time.Duration(snapshot.GetStillSeconds()) * time.Second).String()
}

// formatLastTick renders the last tick timestamp with a fallback.
func formatLastTick(snapshot *pb.SessionSnapshot) string {
	if ts := snapshot.GetLastTick(); ts != nil {
		return ts.AsTime().Format(time.RFC3339)
	}

	return "<never>"
}
