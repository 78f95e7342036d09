// djfix.go
package djfix

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dj-ai/djfix/pkg/audio"
	"github.com/dj-ai/djfix/pkg/core"
	"github.com/dj-ai/djfix/pkg/logging"
	"github.com/dj-ai/djfix/pkg/manifest"
	"github.com/dj-ai/djfix/pkg/pip"
	"github.com/dj-ai/djfix/pkg/platform"
	"github.com/dj-ai/djfix/pkg/probe"
	"go.uber.org/zap"
)

// Re-export core types for convenience
type (
	Config = core.Config
	Step   = core.Step
	Result = core.Result
	Report = core.Report
	Status = core.Status
)

// Re-export core constants
const (
	StatusSuccess = core.StatusSuccess
	StatusSkipped = core.StatusSkipped
	StatusFailed  = core.StatusFailed
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Fixer runs the repair steps in a fixed order
type Fixer struct {
	config *Config
	steps  []core.Step
	logger *zap.Logger
}

// New creates a Fixer with the default steps: install, audio, manifest,
// endpoints. Outputs are written into config.WorkDir.
func New(config *Config, logger *zap.Logger) (*Fixer, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	logger = logging.OrNop(logger)

	dir, err := resolveWorkDir(config.WorkDir)
	if err != nil {
		return nil, err
	}
	config.WorkDir = dir

	plat := platform.Detect()
	logger.Debug("platform detected", zap.Stringer("platform", plat))

	python, err := platform.ResolvePython(plat, config.Python)
	if err != nil {
		logger.Warn("python interpreter unavailable", zap.Error(err))
		python = ""
	}

	runner := platform.NewExecRunner(logger)

	steps := []core.Step{
		pip.NewInstaller(&pip.Config{
			Python: python,
			Runner: runner,
			Logger: logger,
		}),
		audio.NewGenerator(dir, &audio.MP3Converter{
			Available: plat.FFmpeg,
			Runner:    runner,
		}, logger),
		manifest.NewWriter(dir, logger),
		probe.NewVerifier(logger),
	}

	return NewWithSteps(config, logger, steps...), nil
}

// NewWithSteps creates a Fixer running the given steps in order
func NewWithSteps(config *Config, logger *zap.Logger, steps ...core.Step) *Fixer {
	if config == nil {
		config = core.DefaultConfig()
	}
	return &Fixer{
		config: config,
		steps:  steps,
		logger: logging.OrNop(logger),
	}
}

// Steps returns the step names in run order
func (f *Fixer) Steps() []string {
	names := make([]string, 0, len(f.steps))
	for _, s := range f.steps {
		names = append(names, s.Name())
	}
	return names
}

// Run executes every step regardless of earlier failures and returns the
// collected report. Step failures are never returned as errors.
func (f *Fixer) Run(ctx context.Context, out io.Writer) *Report {
	fmt.Fprintln(out, "🔧 DJ AI Backend Integration Fix Script")
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintf(out, "📁 Working directory: %s\n", f.config.WorkDir)
	fmt.Fprintln(out)

	report := &Report{}
	for _, step := range f.steps {
		res := f.runStep(ctx, step, out)
		report.Add(res)
		f.logger.Info("step finished",
			zap.String("step", res.Step),
			zap.Stringer("status", res.Status),
			zap.String("reason", res.Reason),
		)
		fmt.Fprintln(out)
	}

	report.Print(out)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "✅ Fix script completed!")
	fmt.Fprintln(out, "🚀 Backend should now be ready for integration testing")
	fmt.Fprintln(out, "📝 Next steps:")
	fmt.Fprintln(out, "   1. Start the backend: uvicorn app.main:app --reload --port 8000")
	fmt.Fprintln(out, "   2. Start the frontend in another terminal")
	fmt.Fprintf(out, "   3. Test file upload with %s or %s\n", audio.WAVFile, audio.MP3File)

	return report
}

// runStep shields the run from a panicking step
func (f *Fixer) runStep(ctx context.Context, step core.Step, out io.Writer) (res core.Result) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("step panicked", zap.String("step", step.Name()), zap.Any("panic", r))
			fmt.Fprintf(out, "❌ %s step crashed: %v\n", step.Name(), r)
			res = core.Failed(step.Name(), &Error{Op: "run", Target: step.Name(), Err: fmt.Errorf("panic: %v", r)})
		}
	}()
	res = step.Run(ctx, out)
	if res.Step == "" {
		res.Step = step.Name()
	}
	return res
}

func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &Error{Op: "resolve work dir", Target: dir, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", &Error{Op: "resolve work dir", Target: abs, Err: fmt.Errorf("%w: %v", ErrWorkDirNotFound, err)}
	}
	if !info.IsDir() {
		return "", &Error{Op: "resolve work dir", Target: abs, Err: ErrWorkDirNotFound}
	}
	return abs, nil
}
