// pkg/audio/generator.go
package audio

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dj-ai/djfix/pkg/core"
	"go.uber.org/zap"
)

// Generator writes the test tone and its best-effort MP3 copy
type Generator struct {
	dir    string
	mp3    *MP3Converter
	logger *zap.Logger
}

// NewGenerator creates a generator writing into dir. A nil converter
// disables the MP3 step.
func NewGenerator(dir string, mp3 *MP3Converter, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mp3 == nil {
		mp3 = &MP3Converter{}
	}
	return &Generator{
		dir:    dir,
		mp3:    mp3,
		logger: logger.With(zap.String("step", StepName)),
	}
}

// Name returns the step name
func (g *Generator) Name() string {
	return StepName
}

// WAVPath returns the primary output path
func (g *Generator) WAVPath() string {
	return filepath.Join(g.dir, WAVFile)
}

// MP3Path returns the secondary output path
func (g *Generator) MP3Path() string {
	return filepath.Join(g.dir, MP3File)
}

// Run implements core.Step
func (g *Generator) Run(ctx context.Context, out io.Writer) core.Result {
	fmt.Fprintln(out, "🎵 Creating test audio file...")

	samples := Synthesize()
	g.logger.Debug("synthesized tone",
		zap.Int("samples", len(samples)),
		zap.Float64("peak", Peak(samples)),
	)

	if err := WriteWAV(g.WAVPath(), samples, SampleRate); err != nil {
		g.logger.Error("writing wav failed", zap.Error(err))
		fmt.Fprintf(out, "❌ Error creating test audio: %v\n", err)
		return core.Failed(StepName, err)
	}
	fmt.Fprintf(out, "✅ Test audio file created: %s\n", WAVFile)

	if err := g.mp3.Convert(ctx, g.WAVPath(), g.MP3Path()); err != nil {
		g.logger.Warn("mp3 conversion failed", zap.Error(err))
		fmt.Fprintln(out, "⚠️ Could not create MP3 version")
		return core.Success(StepName, fmt.Sprintf("%d samples, %s only", len(samples), WAVFile))
	}
	fmt.Fprintf(out, "✅ Test MP3 file created: %s\n", MP3File)

	return core.Success(StepName, fmt.Sprintf("%d samples, %s + %s", len(samples), WAVFile, MP3File))
}
