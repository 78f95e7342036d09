// pkg/platform/runner.go
package platform

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ExecRunner runs commands with os/exec and waits for them to exit
type ExecRunner struct {
	logger *zap.Logger
}

// NewExecRunner creates a runner that logs command output at debug level
func NewExecRunner(logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{logger: logger}
}

// Run executes name with args. A non-zero exit status is returned as an error
// carrying the tail of stderr.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("exec", zap.String("cmd", name), zap.Strings("args", args))

	err := cmd.Run()

	r.logger.Debug("exec finished",
		zap.String("cmd", name),
		zap.Int("stdout_bytes", stdout.Len()),
		zap.String("stderr", lastLines(stderr.String(), 5)),
		zap.Error(err),
	)

	if err != nil {
		if tail := lastLines(stderr.String(), 1); tail != "" {
			return fmt.Errorf("%s %s: %w (%s)", name, strings.Join(args, " "), err, tail)
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
