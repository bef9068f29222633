package cmd

import (
	"github.com/spf13/cobra"
)

// sourcesCmd represents the sources command.
var sourcesCmd = newSourcesCmd()

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the files the extension is compiled from",
		Long: `List the source set selected by the source layout without generating
bindings or compiling anything. Generated files appear only after a build
has run code generation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := pipeline.Sources(cmd.Context(), sourcesArgsFromConfig())
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
