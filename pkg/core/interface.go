// pkg/core/interface.go
package core

import (
	"context"
	"io"
)

// Step is one best-effort stage of a fix run. Implementations report every
// failure through the returned Result and never return early out of the run.
type Step interface {
	// Name returns the step name shown in the summary (e.g., "install")
	Name() string

	// Run executes the step, writing human-readable narration to out
	Run(ctx context.Context, out io.Writer) Result
}

// Runner executes an external command synchronously
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}
