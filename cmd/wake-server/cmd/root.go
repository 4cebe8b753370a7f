package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cafe-electronico/wake-monitor/internal/config"
	"github.com/cafe-electronico/wake-monitor/internal/service/server"
	"github.com/cafe-electronico/wake-monitor/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// stateDir path where session snapshots are persisted.
	stateDir string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "wake-server [listen-address]",
		Short: "Run the wake monitor gRPC server.",
		Long: `Starts the gRPC server that evaluates activity ticks and decides when to sound the alarm.

The server listens on the specified address or uses settings from configuration file.
Only the port from ServerAddress config is used for listening (e.g., :50051).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:50051).
Session snapshots are persisted to JSON files for recovery across restarts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				StateDir:      stateDir,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the wake-server CLI and exits with non-zero status on error.
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
	rootCmd.Flags().
		StringVarP(&stateDir, "state-dir", "s", "", "directory to persist session snapshots (default from config)")
}
