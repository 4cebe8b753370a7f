package simulator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cafe-electronico/wake-monitor/internal/config"
	"github.com/cafe-electronico/wake-monitor/internal/domain/watch"
	"github.com/cafe-electronico/wake-monitor/internal/logger"
	"github.com/cafe-electronico/wake-monitor/internal/service/common"
)

// Options configures simulator behavior for scripted and interactive runs.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress, when set, sends ticks to a running wake-server over gRPC
	// instead of evaluating them in process.
	ServerAddress string
	// SessionID identifies the simulated monitoring session.
	SessionID string
	// Start is the simulated clock at the first tick, as "HH:MM".
	// Empty means the current wall-clock time.
	Start string
	// Interval is the simulated time between consecutive ticks.
	Interval time.Duration
	// Pattern describes the scripted activity, e.g. "still:40m,move:5m".
	Pattern string
	// Interactive switches to the stdin command protocol instead of a pattern.
	Interactive bool
	// Input is the interactive command source. Nil means os.Stdin is wired in
	// by the command layer.
	Input io.Reader
}

// errPatternRequired is returned when neither a pattern nor interactive mode
// was requested.
var errPatternRequired = errors.New("either a pattern or interactive mode must be provided")

// engine evaluates one tick and returns the verdict. Implemented in process
// and over gRPC.
type engine interface {
	processTick(ctx context.Context, timestamp time.Time, moving bool) (watch.Result, error)
}

// localEngine runs the decision engine in process without a server.
type localEngine struct {
	// state carries the stillness run between ticks.
	state watch.State
	// thresholds configure the signal deriver.
	thresholds watch.Thresholds
}

func (e *localEngine) processTick(_ context.Context, timestamp time.Time, moving bool) (watch.Result, error) {
	next, result, err := watch.Process(e.state, watch.Tick{Timestamp: timestamp, Moving: moving}, e.thresholds)
	if err != nil {
		return watch.Result{}, err
	}

	e.state = next

	return result, nil
}

// remoteEngine forwards ticks to a wake-server and converts the response back.
type remoteEngine struct {
	// client is the shared gRPC client wrapper.
	client *common.Client
	// sessionID identifies the remote session receiving the ticks.
	sessionID string
}

func (e *remoteEngine) processTick(ctx context.Context, timestamp time.Time, moving bool) (watch.Result, error) {
	resp, err := e.client.ProcessTick(ctx, e.sessionID, timestamp, moving)
	if err != nil {
		return watch.Result{}, err
	}

	return watch.Result{
		State: watch.State{
			StillFor: time.Duration(resp.GetStillSeconds()) * time.Second,
			LastTick: timestamp,
		},
		Signals: watch.Signals{
			Q10: resp.GetSignals().GetQ10(),
			Q30: resp.GetSignals().GetQ30(),
			M4:  resp.GetSignals().GetM4(),
			M6:  resp.GetSignals().GetM6(),
		},
		Alarm:  resp.GetAlarm(),
		Reason: watch.Reason(resp.GetReason()),
	}, nil
}

// Run drives the simulator in scripted or interactive mode.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "wake-sim")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Fill defaults not provided on the command line.
	interval := opts.Interval
	if interval <= 0 {
		interval = cfg.TickInterval
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = config.DefaultSessionID
	}

	startAt, err := resolveStart(opts.Start)
	if err != nil {
		return err
	}

	// Pick the engine: remote when a server address is given, local otherwise.
	var eng engine

	if opts.ServerAddress != "" {
		client, err := common.Dial(ctx, opts.ServerAddress, common.WithCallTimeout(cfg.Timeout))
		if err != nil {
			return fmt.Errorf("dial server: %w", err)
		}

		defer func() {
			_ = client.Close()
		}()

		eng = &remoteEngine{client: client, sessionID: sessionID}

		logger.InfoKV(ctx, "Sending ticks to remote server",
			"server_address", opts.ServerAddress,
			"session_id", sessionID,
		)
	} else {
		thresholds, err := cfg.WatchThresholds()
		if err != nil {
			return fmt.Errorf("thresholds: %w", err)
		}

		eng = &localEngine{thresholds: thresholds}
	}

	if opts.Interactive {
		input := opts.Input
		if input == nil {
			input = os.Stdin
		}

		return runInteractive(ctx, eng, input, startAt, interval)
	}

	if opts.Pattern == "" {
		return errPatternRequired
	}

	steps, err := ParsePattern(opts.Pattern)
	if err != nil {
		return err
	}

	return runScripted(ctx, eng, steps, startAt, interval)
}

// runScripted replays the pattern steps as evenly spaced ticks on the
// simulated clock. The replay is instantaneous; no real time passes.
func runScripted(ctx context.Context, eng engine, steps []Step, startAt time.Time, interval time.Duration) error {
	clock := startAt

	for _, step := range steps {
		// One tick per interval, at least one per step.
		count := int(step.Duration / interval)
		if count < 1 {
			count = 1
		}

		for i := 0; i < count; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			emit(ctx, eng, clock, step.Moving)
			clock = clock.Add(interval)
		}
	}

	return nil
}

// runInteractive reads the keyboard protocol from input until quit or EOF.
//
// Commands:
//
//	still | 1          advance the clock one interval, report stillness
//	move  | 2          advance the clock one interval, report movement
//	rapid N HH:MM      jump to HH:MM and emit N still ticks
//	at HH:MM still|move  jump to HH:MM and emit one tick
//	quit | q           exit
func runInteractive(ctx context.Context, eng engine, input io.Reader, startAt time.Time, interval time.Duration) error {
	clock := startAt

	logger.Infof(ctx, "Interactive mode, clock at %s. Commands: still/1, move/2, rapid N HH:MM, at HH:MM still|move, quit",
		clock.Format("15:04"))

	scanner := bufio.NewScanner(input)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "still", "1":
			clock = clock.Add(interval)
			emit(ctx, eng, clock, false)
		case "move", "2":
			clock = clock.Add(interval)
			emit(ctx, eng, clock, true)
		case "rapid":
			next, ok := handleRapid(ctx, eng, fields, clock, interval)
			if ok {
				clock = next
			}
		case "at":
			next, ok := handleAt(ctx, eng, fields, clock)
			if ok {
				clock = next
			}
		case "quit", "exit", "q":
			logger.Info(ctx, "Leaving interactive mode")
			return nil
		default:
			logger.Warnf(ctx, "Unknown command %q, try: still, move, rapid N HH:MM, at HH:MM still|move, quit", fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}

	return nil
}

// handleRapid parses "rapid N HH:MM" and emits N still ticks from that time.
// Returns the advanced clock and whether the command was valid.
func handleRapid(ctx context.Context, eng engine, fields []string, clock time.Time, interval time.Duration) (time.Time, bool) {
	if len(fields) != 3 {
		logger.Warnf(ctx, "Usage: rapid N HH:MM")
		return clock, false
	}

	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 1 {
		logger.Warnf(ctx, "Rapid count %q must be a positive number", fields[1])
		return clock, false
	}

	at, err := clockOnDay(clock, fields[2])
	if err != nil {
		logger.Warnf(ctx, "Bad clock value: %v", err)
		return clock, false
	}

	for i := 0; i < count; i++ {
		emit(ctx, eng, at, false)
		at = at.Add(interval)
	}

	return at.Add(-interval), true
}

// handleAt parses "at HH:MM still|move" and emits one tick at that time.
// Returns the new clock and whether the command was valid.
func handleAt(ctx context.Context, eng engine, fields []string, clock time.Time) (time.Time, bool) {
	if len(fields) != 3 {
		logger.Warnf(ctx, "Usage: at HH:MM still|move")
		return clock, false
	}

	at, err := clockOnDay(clock, fields[1])
	if err != nil {
		logger.Warnf(ctx, "Bad clock value: %v", err)
		return clock, false
	}

	var moving bool

	switch fields[2] {
	case "still", "1":
		moving = false
	case "move", "2":
		moving = true
	default:
		logger.Warnf(ctx, "Unknown event %q, want still or move", fields[2])
		return clock, false
	}

	emit(ctx, eng, at, moving)

	return at, true
}

// emit processes one tick and logs the verdict. Rejected ticks are reported
// and the session continues unchanged.
func emit(ctx context.Context, eng engine, at time.Time, moving bool) {
	result, err := eng.processTick(ctx, at, moving)
	if err != nil {
		logger.WarnKV(ctx, "Tick rejected",
			"time", at.Format("15:04"),
			"error", err,
		)

		return
	}

	event := "still"
	if moving {
		event = "move"
	}

	logger.InfoKV(ctx, "Tick",
		"time", at.Format("15:04"),
		"event", event,
		"still_for", result.State.StillFor,
		"q10", result.Signals.Q10,
		"q30", result.Signals.Q30,
		"m4", result.Signals.M4,
		"m6", result.Signals.M6,
		"alarm", result.Alarm,
		"reason", result.Reason,
	)

	if result.Alarm || result.Reason == watch.ReasonGraceWindow {
		logger.Infof(ctx, "%s", result.Message())
	}
}

// resolveStart turns an optional "HH:MM" flag into the first tick timestamp
// on today's date. Empty means the current minute.
func resolveStart(start string) (time.Time, error) {
	now := time.Now()

	if start == "" {
		return now.Truncate(time.Minute), nil
	}

	return clockOnDay(now, start)
}

// clockOnDay places an "HH:MM" value on the calendar day of the reference.
func clockOnDay(reference time.Time, clock string) (time.Time, error) {
	parsed, err := watch.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	year, month, day := reference.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, reference.Location())

	return midnight.Add(time.Duration(parsed) * time.Minute), nil
}
