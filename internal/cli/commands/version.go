package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

const buildLine = "Built with Go and gonum/plot"

// VersionTemplate is the root command's --version template.
const VersionTemplate = "{{.Name}} {{.Version}}\n" + buildLine + "\n"

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display shoptrends version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "shoptrends v%s\n", version)
			_, _ = fmt.Fprintln(out, buildLine)
			_, _ = fmt.Fprintf(out, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
