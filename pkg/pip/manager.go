// pkg/pip/manager.go
package pip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dj-ai/djfix/pkg/core"
	"github.com/dj-ai/djfix/pkg/platform"
	"go.uber.org/zap"
)

// ErrInstallFailed marks a requirement pip could not install
var ErrInstallFailed = errors.New("install failed")

// Installer installs the fixed package list through pip
type Installer struct {
	config *Config
	runner core.Runner
	logger *zap.Logger
}

// NewInstaller creates an installer, filling unset config with defaults
func NewInstaller(cfg *Config) *Installer {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.Packages == nil {
		cfg.Packages = CorePackages
	}
	if cfg.Optional == "" {
		cfg.Optional = OptionalPackage
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	runner := cfg.Runner
	if runner == nil {
		runner = platform.NewExecRunner(logger)
	}

	return &Installer{
		config: cfg,
		runner: runner,
		logger: logger.With(zap.String("step", StepName)),
	}
}

// Name returns the step name
func (in *Installer) Name() string {
	return StepName
}

// Install runs `<python> -m pip install <requirement>` and waits for it
func (in *Installer) Install(ctx context.Context, requirement string) error {
	if requirement == "" {
		return fmt.Errorf("requirement is required")
	}
	if err := in.runner.Run(ctx, in.config.Python, "-m", "pip", "install", requirement); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInstallFailed, requirement, err)
	}
	return nil
}

// InstallAll installs each core package in order and then the optional one.
// Failures are recorded and never stop the loop.
func (in *Installer) InstallAll(ctx context.Context, out io.Writer) []Outcome {
	outcomes := make([]Outcome, 0, len(in.config.Packages)+1)

	for _, req := range in.config.Packages {
		err := in.Install(ctx, req)
		if err != nil {
			in.logger.Warn("package install failed", zap.String("requirement", req), zap.Error(err))
			fmt.Fprintf(out, "❌ Failed to install %s\n", req)
		} else {
			in.logger.Debug("package installed", zap.String("requirement", req))
			fmt.Fprintf(out, "✅ %s installed successfully\n", req)
		}
		outcomes = append(outcomes, Outcome{Requirement: req, Err: err})
	}

	label := displayName(in.config.Optional)
	err := in.Install(ctx, in.config.Optional)
	if err != nil {
		in.logger.Warn("optional package install failed", zap.String("requirement", in.config.Optional), zap.Error(err))
		fmt.Fprintf(out, "⚠️ %s installation failed - using fallback methods\n", label)
	} else {
		fmt.Fprintf(out, "✅ %s installed successfully\n", label)
	}
	outcomes = append(outcomes, Outcome{Requirement: in.config.Optional, Optional: true, Err: err})

	return outcomes
}

// Run implements core.Step
func (in *Installer) Run(ctx context.Context, out io.Writer) core.Result {
	fmt.Fprintln(out, "🔧 Installing compatible dependencies...")

	if in.config.Python == "" {
		fmt.Fprintln(out, "⚠️ No Python interpreter found - skipping dependency installation")
		return core.Skipped(StepName, "no python interpreter found")
	}

	outcomes := in.InstallAll(ctx, out)

	var failed []string
	for _, o := range outcomes {
		if !o.OK() && !o.Optional {
			failed = append(failed, o.Requirement)
		}
	}
	if len(failed) > 0 {
		return core.Failed(StepName, fmt.Errorf("%w: %s", ErrInstallFailed, strings.Join(failed, ", ")))
	}

	detail := fmt.Sprintf("%d packages", len(in.config.Packages))
	if !outcomes[len(outcomes)-1].OK() {
		detail += ", optional " + in.config.Optional + " unavailable"
	}
	return core.Success(StepName, detail)
}

// displayName capitalizes the first letter for narration
func displayName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
