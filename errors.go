// errors.go
package djfix

import (
	"errors"
	"fmt"

	"github.com/dj-ai/djfix/pkg/audio"
	"github.com/dj-ai/djfix/pkg/pip"
	"github.com/dj-ai/djfix/pkg/platform"
	"github.com/dj-ai/djfix/pkg/probe"
)

var (
	// ErrWorkDirNotFound indicates the output directory does not exist
	ErrWorkDirNotFound = errors.New("work directory not found")

	// ErrInstallFailed indicates pip could not install a requirement
	ErrInstallFailed = pip.ErrInstallFailed

	// ErrInterpreterNotFound indicates no Python interpreter is available
	ErrInterpreterNotFound = platform.ErrNoInterpreter

	// ErrEncoderNotFound indicates no MP3 encoder is available
	ErrEncoderNotFound = audio.ErrEncoderNotFound

	// ErrUnexpectedStatus indicates a probe got a non-200 response
	ErrUnexpectedStatus = probe.ErrUnexpectedStatus

	// ErrInvalidBaseURL indicates the probe target cannot be used
	ErrInvalidBaseURL = probe.ErrInvalidBaseURL
)

// Error wraps an error with additional context
type Error struct {
	Op     string // Operation that failed
	Target string // Directory or step name if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
