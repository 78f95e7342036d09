// Package manifest writes the pinned dependency list for the backend.
package manifest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dj-ai/djfix/pkg/core"
	"go.uber.org/zap"
)

// FileName is the manifest written into the working directory
const FileName = "requirements_fixed.txt"

// StepName identifies the writer in run reports
const StepName = "manifest"

var requirements = []string{
	"fastapi==0.104.1",
	"uvicorn[standard]==0.24.0",
	"python-multipart==0.0.6",
	"librosa",
	"numpy",
	"pandas",
	"scikit-learn",
	"pydub",
	"soundfile",
	"python-dotenv",
	"requests",
}

// Lines returns a copy of the pinned requirement lines
func Lines() []string {
	out := make([]string, len(requirements))
	copy(out, requirements)
	return out
}

// Content returns the exact file body. There is no trailing newline.
func Content() string {
	return strings.Join(requirements, "\n")
}

// Writer writes the manifest into a directory
type Writer struct {
	dir    string
	logger *zap.Logger
}

// NewWriter creates a manifest writer for dir
func NewWriter(dir string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{dir: dir, logger: logger.With(zap.String("step", StepName))}
}

// Name returns the step name
func (w *Writer) Name() string {
	return StepName
}

// Path returns the manifest path
func (w *Writer) Path() string {
	return filepath.Join(w.dir, FileName)
}

// Write replaces the manifest file
func (w *Writer) Write() error {
	if err := os.WriteFile(w.Path(), []byte(Content()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	return nil
}

// Run implements core.Step
func (w *Writer) Run(_ context.Context, out io.Writer) core.Result {
	if err := w.Write(); err != nil {
		w.logger.Error("manifest write failed", zap.Error(err))
		fmt.Fprintf(out, "❌ Error creating requirements file: %v\n", err)
		return core.Failed(StepName, err)
	}

	w.logger.Debug("manifest written", zap.String("path", w.Path()), zap.Int("lines", len(requirements)))
	fmt.Fprintf(out, "✅ Created %s with compatible versions\n", FileName)
	return core.Success(StepName, fmt.Sprintf("%d lines", len(requirements)))
}
