// pkg/pip/types.go
package pip

import (
	"github.com/dj-ai/djfix/pkg/core"
	"go.uber.org/zap"
)

// Config configures the installer
type Config struct {
	Python   string      // Interpreter used as `<python> -m pip`
	Packages []string    // Default: CorePackages
	Optional string      // Default: OptionalPackage
	Runner   core.Runner // Default: ExecRunner
	Logger   *zap.Logger // Custom logger (optional)
}

// Outcome records what happened to one requirement
type Outcome struct {
	Requirement string
	Optional    bool
	Err         error
}

// OK reports whether the requirement installed cleanly
func (o Outcome) OK() bool {
	return o.Err == nil
}
