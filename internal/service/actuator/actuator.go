// Package actuator fires an external command when the alarm verdict turns
// positive. Sound playback and other hardware effects live behind this
// boundary; the monitor only starts the configured hook.
package actuator

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoCommand indicates that no hook command was configured.
var ErrNoCommand = errors.New("no actuator command configured")

// Trigger starts the configured hook command asynchronously. The command line
// is split on whitespace; the first field is the executable. The hook keeps
// running after Trigger returns, the OS takes over the rest.
func Trigger(ctx context.Context, command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ErrNoCommand
	}

	if err := exec.CommandContext(ctx, fields[0], fields[1:]...).Start(); err != nil {
		return fmt.Errorf("start actuator hook: %w", err)
	}

	return nil
}
