// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/dj-ai/djfix/pkg/manifest"
	"github.com/dj-ai/djfix/pkg/pip"
	"github.com/dj-ai/djfix/pkg/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List detected tools and the packages djfix manages",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	plat := platform.Detect()

	fmt.Fprintf(out, "Platform: %s/%s\n\n", plat.OS, plat.Arch)
	fmt.Fprintf(out, "Python interpreters:\n")
	for _, p := range plat.Pythons {
		marker := " "
		if p == plat.Preferred {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s\n", marker, p)
	}
	if plat.Preferred != "" {
		fmt.Fprintf(out, "\n* = preferred interpreter\n")
	}
	fmt.Fprintf(out, "ffmpeg available: %v\n", plat.FFmpeg)

	fmt.Fprintf(out, "\nInstalled packages:\n")
	for _, req := range pip.CorePackages {
		fmt.Fprintf(out, "  %s\n", req)
	}
	fmt.Fprintf(out, "  %s (optional)\n", pip.OptionalPackage)

	fmt.Fprintf(out, "\n%s:\n", manifest.FileName)
	for _, line := range manifest.Lines() {
		fmt.Fprintf(out, "  %s\n", line)
	}

	return nil
}
