package cli

import (
	"github.com/dj-ai/djfix/pkg/logging"
	"github.com/dj-ai/djfix/pkg/probe"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Only check the backend endpoints",
	Long:  `Wait briefly, then GET /health and /supported-formats on http://localhost:8000.`,
	Args:  cobra.NoArgs,
	RunE:  runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(config.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	runSingle(cmd.OutOrStdout(), probe.NewVerifier(logger))
	return nil
}
