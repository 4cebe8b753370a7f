package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cafe-electronico/wake-monitor/internal/config"
	"github.com/cafe-electronico/wake-monitor/internal/service/simulator"
	"github.com/cafe-electronico/wake-monitor/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// serverAddress sends ticks to a remote wake-server when set.
	serverAddress string
	// sessionID names the simulated monitoring session.
	sessionID string
	// start is the simulated clock at the first tick.
	start string
	// interval is the simulated time between ticks.
	interval time.Duration
	// pattern describes the scripted activity.
	pattern string
	// interactive switches to the stdin command protocol.
	interactive bool

	// rootCmd represents the base command for running the simulator.
	rootCmd = &cobra.Command{
		Use:   "wake-sim",
		Short: "Feed synthetic activity ticks into the wake monitor.",
		Long: `Simulates a motion sensor for the wake monitor.

Scripted mode replays a pattern such as "still:40m,move:5m" as evenly spaced
ticks on a simulated clock starting at --start. Interactive mode reads commands
from stdin: still/1, move/2, rapid N HH:MM, at HH:MM still|move, quit.

Ticks are evaluated in process by default. With --server they are sent to a
running wake-server over gRPC instead.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &simulator.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				SessionID:     sessionID,
				Start:         start,
				Interval:      interval,
				Pattern:       pattern,
				Interactive:   interactive,
				Input:         os.Stdin,
			}

			return simulator.Run(ctx, options)
		},
	}
)

// Execute runs the wake-sim CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVar(&serverAddress, "server", "", "send ticks to this wake-server address over gRPC")
	rootCmd.Flags().StringVar(&sessionID, "session", config.DefaultSessionID, "session identifier")
	rootCmd.Flags().StringVar(&start, "start", "", "simulated clock at the first tick, HH:MM (default: now)")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "simulated time between ticks (default from config)")
	rootCmd.Flags().StringVarP(&pattern, "pattern", "p", "", `scripted activity, e.g. "still:40m,move:5m"`)
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read commands from stdin")
}
