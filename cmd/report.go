package cmd

import (
	"github.com/spf13/cobra"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the report of the last build",
		Long: `Show the build report written by the last build: version, compile strategy,
per-unit outcome and the produced artifact. The report location follows
report.path (--report).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := pipeline.Report(cmd.Context(), reportArgsFromConfig())
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
