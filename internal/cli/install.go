// internal/cli/install.go
package cli

import (
	"fmt"

	"github.com/dj-ai/djfix/pkg/logging"
	"github.com/dj-ai/djfix/pkg/pip"
	"github.com/dj-ai/djfix/pkg/platform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Only install the backend's Python dependencies",
	Long: `Install the pinned backend dependencies with pip, one package at a time,
followed by the optional essentia package.

Examples:
  djfix install
  djfix install --python=/usr/local/bin/python3.11`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(config.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	plat := platform.Detect()
	if config.Debug {
		fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", plat)
	}

	interp, err := platform.ResolvePython(plat, config.Python)
	if err != nil {
		logger.Warn("python interpreter unavailable", zap.Error(err))
	}

	runSingle(cmd.OutOrStdout(), pip.NewInstaller(&pip.Config{
		Python: interp,
		Logger: logger,
	}))
	return nil
}
