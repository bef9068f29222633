package cmd

import (
	"github.com/spf13/cobra"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the compile and link flags for this platform",
		Long: `Show the compiler arguments, include directories and link configuration a
build would use, without building. Dependency locations are looked up with the
configured interpreter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := pipeline.Plan(cmd.Context(), buildArgsFromConfig())
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
