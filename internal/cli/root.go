// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dj-ai/djfix"
	"github.com/dj-ai/djfix/pkg/core"
	"github.com/dj-ai/djfix/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	workDir string
	python  string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "djfix",
	Short: "Repair the DJ AI backend development environment",
	Long: `djfix - DJ AI Backend Integration Fix

Installs the backend's Python dependencies, writes a test tone
(test_audio.wav, test_audio.mp3), writes requirements_fixed.txt and
checks that the backend on localhost:8000 answers.

Every step is best-effort: failures are reported and the run continues.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFix,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/djfix/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&workDir, "dir", "", "directory to write outputs to (default is the executable's directory)")
	rootCmd.PersistentFlags().StringVar(&python, "python", "", "python interpreter used to run pip")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if workDir != "" {
		config.WorkDir = workDir
	}
	if python != "" {
		config.Python = python
	}
	if debug {
		config.Debug = true
	}
}

// newFixer builds the logger and fixer and moves into the work directory
func newFixer() (*djfix.Fixer, *zap.Logger, error) {
	logger, err := logging.New(config.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	f, err := djfix.New(config, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := os.Chdir(config.WorkDir); err != nil {
		return nil, nil, &djfix.Error{Op: "chdir", Target: config.WorkDir, Err: err}
	}

	return f, logger, nil
}

func runFix(cmd *cobra.Command, args []string) error {
	f, logger, err := newFixer()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// The run always completes; step failures are in the report only.
	report := f.Run(context.Background(), cmd.OutOrStdout())
	logger.Debug("run finished",
		zap.Int("succeeded", report.Count(core.StatusSuccess)),
		zap.Int("skipped", report.Count(core.StatusSkipped)),
		zap.Int("failed", report.Count(core.StatusFailed)),
	)
	return nil
}

// runSingle runs one step with the same narration and report semantics
func runSingle(out io.Writer, step core.Step) {
	res := step.Run(context.Background(), out)
	report := &core.Report{}
	report.Add(res)
	fmt.Fprintln(out)
	report.Print(out)
}
