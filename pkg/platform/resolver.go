// pkg/platform/resolver.go
package platform

import (
	"errors"
	"fmt"
)

// ErrNoInterpreter is returned when no Python interpreter can be used
var ErrNoInterpreter = errors.New("no python interpreter found")

// ResolvePython picks the interpreter used to run pip.
//
// Priority:
//  1. configured interpreter, which must exist on PATH or as a file
//  2. platform preferred interpreter
func ResolvePython(p *Platform, configured string) (string, error) {
	if configured != "" {
		if !commandExists(configured) {
			return "", fmt.Errorf("configured interpreter %q: %w", configured, ErrNoInterpreter)
		}
		return configured, nil
	}

	if p != nil && p.Preferred != "" {
		return p.Preferred, nil
	}

	return "", ErrNoInterpreter
}
