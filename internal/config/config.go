package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cafe-electronico/wake-monitor/internal/domain/watch"
)

// Thresholds holds the rule boundaries as they appear in the settings file.
// Durations use Go notation ("10m"), grace boundaries use "HH:MM".
type Thresholds struct {
	// ShortStillness is the continuous stillness that raises Q10.
	ShortStillness time.Duration `yaml:"q10"`
	// LongStillness is the continuous stillness that raises Q30.
	LongStillness time.Duration `yaml:"q30"`
	// GraceStart is the time of day that raises M4.
	GraceStart string `yaml:"grace_start"`
	// GraceEnd is the time of day that raises M6.
	GraceEnd string `yaml:"grace_end"`
}

// Config holds settings shared by the wake-monitor binaries.
type Config struct {
	// ServerAddress is the gRPC server address for monitor service connections.
	ServerAddress string `yaml:"server_addr"`
	// StateDir is the directory where session snapshots are persisted.
	StateDir string `yaml:"state_dir"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// TickInterval is the simulated time between synthetic ticks.
	TickInterval time.Duration `yaml:"tick_interval"`
	// Thresholds configures the signal deriver.
	Thresholds Thresholds `yaml:"thresholds"`
}

const (
	// DefaultConfigFilename is the default filename for monitor settings.
	DefaultConfigFilename = "wake-monitor-settings.yaml"

	// DefaultStateDirname is the default directory for session snapshots.
	DefaultStateDirname = "wake-monitor-state"

	// DefaultServerAddress is the default monitor server socket.
	DefaultServerAddress = "127.0.0.1:50051"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultTickInterval is the default simulated tick spacing.
	DefaultTickInterval = time.Minute

	// DefaultSessionID names the monitoring session when no override is given.
	DefaultSessionID = "wake-sim"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// DefaultDirPermissions is the default permission for state directories.
	DefaultDirPermissions = 0o700
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
)

// Default returns a configuration populated with every default value.
func Default() *Config {
	return &Config{
		ServerAddress: DefaultServerAddress,
		StateDir:      DefaultStateDirname,
		Timeout:       DefaultTimeout,
		TickInterval:  DefaultTickInterval,
		Thresholds: Thresholds{
			ShortStillness: watch.DefaultShortStillness,
			LongStillness:  watch.DefaultLongStillness,
			GraceStart:     watch.DefaultGraceStart.String(),
			GraceEnd:       watch.DefaultGraceEnd.String(),
		},
	}
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting,
// filling defaults for optional ones. Invalid thresholds are fatal here so a
// misconfigured rule never reaches the decision engine.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	// Set default timeout if not specified.
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	// Set default tick interval if not specified.
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	// Set default state directory if not specified.
	if cfg.StateDir == "" {
		cfg.StateDir = DefaultStateDirname
	}

	fillThresholdDefaults(&cfg.Thresholds)

	if _, err := cfg.WatchThresholds(); err != nil {
		return err
	}

	return nil
}

// WatchThresholds converts the settings block into domain thresholds,
// validating them in the process.
func (c *Config) WatchThresholds() (watch.Thresholds, error) {
	graceStart, err := watch.ParseClock(c.Thresholds.GraceStart)
	if err != nil {
		return watch.Thresholds{}, fmt.Errorf("grace start: %w", err)
	}

	graceEnd, err := watch.ParseClock(c.Thresholds.GraceEnd)
	if err != nil {
		return watch.Thresholds{}, fmt.Errorf("grace end: %w", err)
	}

	th := watch.Thresholds{
		ShortStillness: c.Thresholds.ShortStillness,
		LongStillness:  c.Thresholds.LongStillness,
		GraceStart:     graceStart,
		GraceEnd:       graceEnd,
	}

	if err := th.Validate(); err != nil {
		return watch.Thresholds{}, err
	}

	return th, nil
}

// fillThresholdDefaults completes an empty or partial thresholds block.
func fillThresholdDefaults(t *Thresholds) {
	if t.ShortStillness == 0 {
		t.ShortStillness = watch.DefaultShortStillness
	}

	if t.LongStillness == 0 {
		t.LongStillness = watch.DefaultLongStillness
	}

	if t.GraceStart == "" {
		t.GraceStart = watch.DefaultGraceStart.String()
	}

	if t.GraceEnd == "" {
		t.GraceEnd = watch.DefaultGraceEnd.String()
	}
}
