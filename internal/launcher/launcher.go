// Package launcher starts the external Python interpreter on generated
// scripts, either fire-and-forget (quiz viewers) or awaited with captured
// streams (PDF rendering).
package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// ErrRenderFailed wraps a non-zero exit from an awaited script run.
var ErrRenderFailed = errors.New("external renderer failed")

// ProcessLauncher runs scripts through a local Python interpreter.
type ProcessLauncher struct {
	python string
	log    zerolog.Logger
}

// New creates a ProcessLauncher using the given interpreter binary.
func New(python string, log zerolog.Logger) *ProcessLauncher {
	return &ProcessLauncher{
		python: python,
		log:    log.With().Str("component", "launcher").Logger(),
	}
}

// LaunchDetached starts the viewer on scriptPath and returns without
// waiting. The process outlives this call; only a failure to start is
// reported, anything after that is lost by contract.
func (l *ProcessLauncher) LaunchDetached(scriptPath string) error {
	cmd := exec.Command(l.python, scriptPath)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start viewer: %w", err)
	}

	l.log.Debug().Int("pid", cmd.Process.Pid).Str("script", scriptPath).Msg("viewer launched")

	// Reap the child so it never lingers as a zombie. Its exit status is
	// deliberately discarded.
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Run executes scriptPath and waits for it to finish, returning captured
// stdout. A non-zero exit yields ErrRenderFailed carrying trimmed stderr.
func (l *ProcessLauncher) Run(ctx context.Context, scriptPath string) (string, error) {
	cmd := exec.CommandContext(ctx, l.python, scriptPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%w: %s", ErrRenderFailed, detail)
	}
	return strings.TrimSpace(stdout.String()), nil
}
