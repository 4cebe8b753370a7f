package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cafe-electronico/wake-monitor/internal/config"
	"github.com/cafe-electronico/wake-monitor/internal/service/watcher"
	"github.com/cafe-electronico/wake-monitor/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// sessionID names the monitoring session to watch.
	sessionID string
	// pollInterval is the time between session state probes.
	pollInterval time.Duration
	// onAlarm is the hook command started when the alarm fires.
	onAlarm string
	// once performs a single probe instead of polling.
	once bool

	// rootCmd represents the base command for watching a session.
	rootCmd = &cobra.Command{
		Use:   "wake-watcher [server-address]",
		Short: "Watch a monitoring session and react to the alarm.",
		Long: `Polls a wake-server for the state of one monitoring session.

Each probe logs the current stillness run and verdict. When the alarm verdict
turns positive the configured --on-alarm hook command is started and the
watcher exits. A session without ticks is reported and polling continues.
Server address can be provided as argument or loaded from configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use server address argument if provided, otherwise rely on config.
			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			options := &watcher.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				SessionID:     sessionID,
				PollInterval:  pollInterval,
				OnAlarm:       onAlarm,
				Once:          once,
			}

			return watcher.Run(ctx, options)
		},
	}
)

// Execute runs the wake-watcher CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVar(&sessionID, "session", config.DefaultSessionID, "session identifier")
	rootCmd.Flags().
		DurationVar(&pollInterval, "interval", watcher.DefaultPollInterval, "time between session state probes")
	rootCmd.Flags().StringVar(&onAlarm, "on-alarm", "", "command to start when the alarm fires")
	rootCmd.Flags().BoolVar(&once, "once", false, "probe once and exit")
}
